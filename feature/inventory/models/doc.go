// Package models defines the four entity types of the inventory graph:
// locations, items, inventory entries, and scan history.
//
// The structs carry both GORM column tags and JSON tags because they are
// simultaneously the Record Store schema and the export bundle wire format.
// Column names and JSON keys must stay compatible with existing exports.
//
// # Timestamps
//
// All timestamps are ISO-8601 strings (TEXT columns). Ordering is defined by
// lexicographic comparison, which holds for this layout and allows date-only
// filter values.
//
// # Additional info
//
// Item.AdditionalInfo is a JSON-encoded string holding an open map of
// metadata keys. It is treated as one atomic unit together with the
// description during merges.
package models
