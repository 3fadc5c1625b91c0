// Package migrations embeds the SQL schema of both SQLite stores.
package migrations

import "embed"

//go:embed league/*.sql
var League embed.FS

//go:embed fantasy/*.sql
var Fantasy embed.FS
