// Package filter implements the per-layer adjustment pipeline.
//
// The pipeline runs on non-premultiplied RGBA8 buffers in place. Stages run
// in a fixed order (brightness, contrast, saturation, filter) and every stage
// rounds and clamps its output to [0, 255] before the next one reads it.
// Alpha is never modified.
//
// # Filters
//
// Grayscale, sepia and invert are 4x5 colour matrices. Blur is a running
// 3-tap box average over the flat pixel stream: rows wrap into each other and
// each pixel averages its already-blurred predecessor. It is a coarse
// approximation and is kept that way so saved projects render the same.
package filter
