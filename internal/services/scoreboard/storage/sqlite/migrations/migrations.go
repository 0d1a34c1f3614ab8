// Package migrations embeds the scoreboard SQLite schema.
package migrations

import "embed"

// FS holds the scoreboard migration files.
//
//go:embed *.sql
var FS embed.FS
