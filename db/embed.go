// Package db embeds the PostgreSQL migrations.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
