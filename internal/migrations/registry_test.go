package migrations

import (
	"testing"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrder(t *testing.T) {
	registry, err := Registry()
	require.NoError(t, err)

	assert.Equal(t, []string{CreateSchemaMigrationsName, CreateTableName}, registry.Names())
	assert.Equal(t, CreateTableName, registry.Latest())
}

func TestCreateTablePlan(t *testing.T) {
	ops, err := CreateTable().Plan(entity.DirectionUp)
	require.NoError(t, err)
	require.Len(t, ops, len(ApplicationTables)+3)

	for i, table := range ApplicationTables {
		create, ok := ops[i].(schema.CreateTableOp)
		require.True(t, ok, "operation %d should create a table", i)
		assert.Equal(t, table, create.Table.Name)
	}

	for _, op := range ops[len(ApplicationTables):] {
		assert.Equal(t, schema.KindBulkInsert, op.Kind(), "seeds follow the table creations")
	}

	docInfo := ops[7].(schema.CreateTableOp).Table
	assert.Equal(t, "doc|folder", docInfo.Comment)

	dialogInfo := ops[8].(schema.CreateTableOp).Table
	history, ok := dialogInfo.Column("history")
	require.True(t, ok)
	assert.Equal(t, "json", history.Comment)
	assert.True(t, history.Nullable)
}

func TestRevertPlansOnlyDropTables(t *testing.T) {
	for _, u := range Units() {
		ops, err := u.Plan(entity.DirectionDown)
		require.NoError(t, err)
		require.NotEmpty(t, ops)

		for _, op := range ops {
			assert.Equal(t, schema.KindDropTable, op.Kind(), "%s reverts with %s", u.Name, schema.Describe(op))
		}
	}
}

func TestSeedOperations(t *testing.T) {
	ops, err := SeedOperations()
	require.NoError(t, err)
	require.Len(t, ops, 3)

	user := ops[0].(schema.InsertOp)
	assert.Equal(t, TableUserInfo, user.Table)
	assert.Equal(t, [][]any{{RootEmail, RootNickname, RootPassword}}, user.Rows)

	folder := ops[1].(schema.InsertOp)
	assert.Equal(t, TableDocInfo, folder.Table)
	assert.Equal(t, [][]any{{RootUID, "/", 0, "folder", ""}}, folder.Rows)

	tags := ops[2].(schema.InsertOp)
	assert.Equal(t, TableTagInfo, tags.Table)
	require.Len(t, tags.Rows, 4, "tags go in one statement")
	assert.Equal(t, "视频", tags.Rows[0][1])
	assert.Equal(t, 2, tags.Rows[1][3])
}
