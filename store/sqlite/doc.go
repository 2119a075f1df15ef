// Package sqlite provides a SQLite-backed project store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Every value is one row keyed by its store key; rows also
// carry a random UUID so they can be referenced independently of their key.
package sqlite
