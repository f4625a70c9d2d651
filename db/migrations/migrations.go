// Package migrations embeds the SQL migrations that create the membership
// tables and stored functions.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
