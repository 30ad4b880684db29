// Package sync implements the multi-workstation synchronization engine:
// export, import, and consolidation of Record Stores.
//
// Workstations operate offline and independently; reconciliation is a batch
// process over export bundles moved out-of-band (USB drive, file share).
// There is no network transport and no live conflict resolution.
//
// # Export bundle
//
// A bundle is a directory of five JSON artifacts: metadata.json (export
// date, workstation, recency filter) plus full snapshots of locations and
// items and optionally-filtered snapshots of inventory and scan history.
// The manifest's presence is what marks a directory as a valid bundle.
//
// # Merge model
//
// Importing in merge mode reconciles rather than overwrites: reference data
// is last-write-wins, quantities accumulate additively, history appends.
// Consolidation builds a fresh master store, backs up anything already at
// the output path, and applies each source with skip-and-continue so one
// broken export never blocks the rest of the fleet.
package sync
