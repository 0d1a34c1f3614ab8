// Package timeouts defines shared timeout constants used across the process.
package timeouts

import "time"

// SaveFlush caps how long shutdown waits for the last pending snapshot write.
const SaveFlush = 3 * time.Second

// StoreSave caps a single snapshot write against the store.
const StoreSave = 2 * time.Second

// Shutdown limits how long the health server waits for in-flight calls
// during graceful shutdown.
const Shutdown = 5 * time.Second
