// Package utils provides loose-typed conversion helpers.
//
// The item additional-info blob is an open map decoded from JSON, so values
// arrive as any (strings, float64 numbers, bools). These helpers normalize
// them for display and comparison.
package utils
