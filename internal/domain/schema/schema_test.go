package schema

import (
	"testing"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTable(t *testing.T) {
	t.Run("Columns keep declaration order", func(t *testing.T) {
		op, err := CreateTable("kb_info").
			Column(BigInteger("kb_id").NotNull().AutoIncrement().PrimaryKey()).
			Column(BigInteger("uid").NotNull()).
			Column(String("kb_name").NotNull()).
			Column(TinyUnsigned("icon").Default(1)).
			Column(TimestampTZ("created_at").DefaultNow().NotNull()).
			Column(Boolean("is_deleted").Default(false)).
			Build()
		require.NoError(t, err)

		create, ok := op.(CreateTableOp)
		require.True(t, ok)
		assert.Equal(t, KindCreateTable, op.Kind())
		assert.Equal(t, "kb_info", op.Target())

		names := make([]string, 0, len(create.Table.Columns))
		for _, c := range create.Table.Columns {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"kb_id", "uid", "kb_name", "icon", "created_at", "is_deleted"}, names)
		assert.Equal(t, []string{"kb_id"}, create.Table.PrimaryKey())

		icon, ok := create.Table.Column("icon")
		require.True(t, ok)
		assert.True(t, icon.Nullable)
		assert.Equal(t, Default{Kind: DefaultLiteral, Value: 1}, icon.Default)

		created, _ := create.Table.Column("created_at")
		assert.Equal(t, DefaultCurrentTimestamp, created.Default.Kind)
		assert.False(t, created.Nullable)
	})

	t.Run("Table and column comments", func(t *testing.T) {
		op, err := CreateTable("dialog_info").
			Column(BigInteger("dialog_id").NotNull().AutoIncrement().PrimaryKey()).
			Column(String("history").Comment("json")).
			Comment("chat sessions").
			Build()
		require.NoError(t, err)

		def := op.(CreateTableOp).Table
		assert.Equal(t, "chat sessions", def.Comment)
		history, _ := def.Column("history")
		assert.Equal(t, "json", history.Comment)
	})

	t.Run("Builder is not aliased by the operation", func(t *testing.T) {
		b := CreateTable("tag2_doc").Column(BigInteger("id").NotNull().AutoIncrement().PrimaryKey())
		op, err := b.Build()
		require.NoError(t, err)
		b.Column(BigInteger("did"))

		assert.Len(t, op.(CreateTableOp).Table.Columns, 1)
	})
}

func TestCreateTableValidation(t *testing.T) {
	testCases := []struct {
		name    string
		builder *TableBuilder
	}{
		{"Empty table name", CreateTable(" ").Column(BigInteger("id"))},
		{"No columns", CreateTable("user_info")},
		{"Empty column name", CreateTable("user_info").Column(String(""))},
		{"Duplicate column", CreateTable("user_info").Column(String("email")).Column(String("email"))},
		{"Two auto-increment keys", CreateTable("t").
			Column(BigInteger("a").AutoIncrement().PrimaryKey()).
			Column(BigInteger("b").AutoIncrement().PrimaryKey())},
		{"Auto-increment without primary key", CreateTable("t").Column(BigInteger("id").AutoIncrement())},
		{"Auto-increment on string", CreateTable("t").Column(String("id").AutoIncrement().PrimaryKey())},
		{"Auto-increment on tiny", CreateTable("t").Column(TinyUnsigned("id").AutoIncrement().PrimaryKey())},
		{"Auto-increment in composite key", CreateTable("t").
			Column(BigInteger("a").AutoIncrement().PrimaryKey()).
			Column(BigInteger("b").PrimaryKey())},
		{"Default type mismatch", CreateTable("t").Column(Boolean("is_deleted").Default("no"))},
		{"Tiny default out of range", CreateTable("t").Column(TinyUnsigned("color").Default(300))},
		{"Now default on string", CreateTable("t").Column(String("at").DefaultNow())},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := tc.builder.Build()
			assert.Nil(t, op)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)

			var schemaErr *domainerr.SchemaError
			assert.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestDefaultsAccepted(t *testing.T) {
	_, err := CreateTable("kb2_doc").
		Column(BigInteger("id").NotNull().AutoIncrement().PrimaryKey()).
		Column(Float("kb_progress").Default(0)).
		Column(Float("ratio").Default(0.5)).
		Column(String("kb_progress_msg").Default("")).
		Column(TinyUnsigned("color").Default(uint8(3))).
		Build()
	assert.NoError(t, err)
}

func TestInsert(t *testing.T) {
	t.Run("Multiple rows in one operation", func(t *testing.T) {
		op, err := Insert("tag_info").
			Columns("uid", "tag_name", "color").
			Values(1, "a", 1).
			Values(1, "b", 2).
			Build()
		require.NoError(t, err)

		insert := op.(InsertOp)
		assert.Equal(t, KindBulkInsert, insert.Kind())
		assert.Equal(t, []string{"uid", "tag_name", "color"}, insert.Columns)
		assert.Equal(t, [][]any{{1, "a", 1}, {1, "b", 2}}, insert.Rows)
	})

	t.Run("Arity mismatch", func(t *testing.T) {
		_, err := Insert("tag_info").Columns("uid", "tag_name").Values(1).Build()
		assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)
		assert.Contains(t, err.Error(), "row 1 has 1 values, expected 2")
	})

	t.Run("No rows", func(t *testing.T) {
		_, err := Insert("tag_info").Columns("uid").Build()
		assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)
	})

	t.Run("No columns", func(t *testing.T) {
		_, err := Insert("tag_info").Values().Build()
		assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)
	})

	t.Run("Duplicate column", func(t *testing.T) {
		_, err := Insert("tag_info").Columns("uid", "uid").Values(1, 1).Build()
		assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)
	})
}

func TestColumnOperations(t *testing.T) {
	op, err := AddColumn("user_info", String("timezone").Default("UTC"))
	require.NoError(t, err)
	assert.Equal(t, "user_info.timezone", op.Target())
	assert.Equal(t, "add_column user_info.timezone", Describe(op))

	_, err = AddColumn("user_info", String("timezone").NotNull())
	assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)

	_, err = AddColumn("user_info", BigInteger("id").PrimaryKey())
	assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)

	_, err = AddColumn("user_info", nil)
	assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)

	op, err = DropColumn("user_info", "timezone")
	require.NoError(t, err)
	assert.Equal(t, DropColumnOp{Table: "user_info", Column: "timezone"}, op)

	_, err = DropColumn("user_info", "")
	assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)

	op, err = DropTable("user_info")
	require.NoError(t, err)
	assert.Equal(t, KindDropTable, op.Kind())

	_, err = DropTable("")
	assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)
}

func TestPlan(t *testing.T) {
	var p Plan
	p.Add(DropTable("a"))
	p.Add(DropTable("b"))
	ops, err := p.Operations()
	require.NoError(t, err)
	assert.Len(t, ops, 2)

	var failing Plan
	failing.Add(DropTable("a"))
	failing.Add(DropTable(""))
	failing.Add(DropTable("c"))
	ops, err = failing.Operations()
	assert.Nil(t, ops)
	assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)
}
