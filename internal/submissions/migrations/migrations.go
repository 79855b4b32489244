// Package migrations embeds the goose SQL migrations of the submission index.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
