// Package cache provides a small generic LRU cache.
//
// The renderer keeps one laid-out line per (string, size) pair so a frame
// does not repeat the layout pass when nothing changed:
//
//	c := cache.New[Key, text.Layout](16)
//	l := c.GetOrCreate(key, func() text.Layout { return text.LayoutString(a, s, size) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
