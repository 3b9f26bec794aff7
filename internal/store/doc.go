// Package store provides SQLite-backed persistence for saved queries.
//
// A saved query is a named, reusable query definition: dataset, variable,
// range bounds formatted at the dataset resolution, and the normalized
// filter serialized as canonical JSON. Saving under an existing name
// replaces the definition; names are the user-facing identity.
//
// Listings order by name, never by row id or wall time, so output is stable
// across databases holding the same queries.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// Schema migrations run automatically on Open, tracked via PRAGMA
// user_version.
package store
