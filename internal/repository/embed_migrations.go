package repository

import "embed"

// MigrationFS содержит встроенные SQL-миграции из internal/repository/migrations.
// Используется раннером миграций (cmd/migrate).
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
