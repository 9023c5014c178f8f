// Package migrations embeds the SQL schema so tests and tooling can apply it
// without relying on the working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
