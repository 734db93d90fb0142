package migrations

import (
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/migration"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/schema"
)

// CreateSchemaMigrationsName always sorts first, so the record table exists
// before any other unit claims its row.
const CreateSchemaMigrationsName = "m20220101_000000_create_schema_migrations"

// CreateSchemaMigrations creates the migration record table
func CreateSchemaMigrations() migration.Unit {
	return migration.Unit{
		Name: CreateSchemaMigrationsName,
		Up: func() ([]schema.Operation, error) {
			var p schema.Plan
			p.Add(schema.CreateTable(entity.MigrationRecordTable).
				Column(schema.String("name").NotNull().PrimaryKey()).
				Column(schema.TimestampTZ("applied_at").NotNull().DefaultNow()).
				Build())
			return p.Operations()
		},
		Down: func() ([]schema.Operation, error) {
			var p schema.Plan
			p.Add(schema.DropTable(entity.MigrationRecordTable))
			return p.Operations()
		},
	}
}
