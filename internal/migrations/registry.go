// Package migrations holds the docbase schema history.
package migrations

import "github.com/amirhossein-jamali/docbase-migrator/internal/domain/migration"

// Units returns every migration unit of the docbase schema
func Units() []migration.Unit {
	return []migration.Unit{
		CreateSchemaMigrations(),
		CreateTable(),
	}
}

// Registry returns the ordered docbase history
func Registry() (*migration.Registry, error) {
	return migration.NewRegistry(Units()...)
}
