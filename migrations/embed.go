// Package migrations embeds the goose SQL migrations so that binaries and
// tests apply exactly the schema that ships with the code.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
