package migrations

import "embed"

// MigrationsFS holds the goose SQL migrations applied by internal.RunMigrations.
//
//go:embed *.sql
var MigrationsFS embed.FS
