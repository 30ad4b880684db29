// Package store implements the Record Store: the durable local database
// holding locations, items, inventory, and scan history.
//
// The store is an explicit handle passed to each component; there is no
// process-wide connection state. Open acquires the handle and migrates the
// schema, Close releases it, and Transaction scopes a group of writes so an
// import is either fully applied or not visible at all.
//
// # Merge semantics
//
// The write API encodes the per-collection merge policies:
//   - locations: insert-if-absent (merge) or overwrite (replace); an
//     existing id is never an error
//   - items: last-write-wins by updated_at, description and additional_info
//     replaced together as one unit
//   - inventory: additive quantity accumulation with the later last_scanned
//     (merge), or plain overwrite (replace)
//   - scan history: pure append in every mode
//
// Foreign references stay soft; CheckIntegrity reports dangling rows.
package store
