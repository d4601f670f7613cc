// Package migrations embeds the server's SQL schema migrations so that the
// repository manager can apply them with goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
