// Package migrations holds the goose SQL migrations of the case store.
package migrations

import "embed"

// FS contains every migration file at its root.
//
//go:embed *.sql
var FS embed.FS
