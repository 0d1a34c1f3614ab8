// Package engine owns the scoreboard state for one play session.
//
// An Engine is created around a storage.SnapshotStore and must be loaded
// exactly once before it accepts actions. Each Dispatch runs the reducer,
// commits the result, notifies subscribers, and hands the new snapshot to a
// background saver. The saver keeps only the latest unsaved snapshot, so the
// store always converges on the most recent committed state. Save failures
// are logged and otherwise ignored; the in-memory state stays authoritative.
package engine
