package migrations

import "embed"

// FS contains embedded SQLite migrations for the flag store.
//
//go:embed *.sql
var FS embed.FS
