// Package sqlite implements the flagging store and the knowledge store
// on a single SQLite database. Schema changes are applied from embedded
// migrations at startup; the knowledge upsert is a single
// INSERT ... ON CONFLICT statement so re-processing never duplicates an
// entry or tears a write.
package sqlite
