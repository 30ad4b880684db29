// Package report provides read-only aggregation over a Record Store.
//
// It computes total unique items, total locations, total quantity in stock,
// a per-location breakdown, and a top-N items-by-quantity ranking. The
// aggregates render as a text report file (the report subcommand) or as
// JSON over HTTP (the serve subcommand). No merge logic lives here.
package report
