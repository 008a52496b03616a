// Package migrations содержит SQL-миграции для всех поддерживаемых хранилищ
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)
