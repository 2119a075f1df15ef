// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, float64](256)
//	w := c.GetOrCreate("hello", func() float64 { return measure("hello") })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
