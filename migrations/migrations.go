package migrations

import "embed"

// MigrationFiles goose-миграции, встраиваются в бинарник
//
//go:embed *.sql
var MigrationFiles embed.FS
