package database

import (
	"testing"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docTable(t *testing.T) schema.TableDef {
	t.Helper()
	op, err := schema.CreateTable("doc_info").
		Column(schema.BigInteger("did").NotNull().AutoIncrement().PrimaryKey()).
		Column(schema.String("doc_name").NotNull()).
		Column(schema.String("type").NotNull().Comment("doc|folder")).
		Column(schema.Boolean("is_deleted").Default(false)).
		Column(schema.TimestampTZ("created_at").NotNull().DefaultNow()).
		Comment("doc|folder").
		Build()
	require.NoError(t, err)
	return op.(schema.CreateTableOp).Table
}

func mustDialect(t *testing.T, driver string) *Dialect {
	t.Helper()
	d, err := NewDialect(driver)
	require.NoError(t, err)
	return d
}

func TestNewDialectUnknownDriver(t *testing.T) {
	_, err := NewDialect("oracle")
	assert.Error(t, err)
}

func TestCreateTablePostgres(t *testing.T) {
	d := mustDialect(t, DriverPostgres)

	stmts, err := d.CreateTable(docTable(t))
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "doc_info" (`+
			`"did" bigserial NOT NULL PRIMARY KEY, `+
			`"doc_name" varchar NOT NULL, `+
			`"type" varchar NOT NULL, `+
			`"is_deleted" boolean DEFAULT FALSE, `+
			`"created_at" timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP)`,
		stmts[0])
	assert.Equal(t, `COMMENT ON TABLE "doc_info" IS 'doc|folder'`, stmts[1])
	assert.Equal(t, `COMMENT ON COLUMN "doc_info"."type" IS 'doc|folder'`, stmts[2])
	assert.True(t, d.TransactionalDDL())
}

func TestCreateTableMySQL(t *testing.T) {
	d := mustDialect(t, DriverMySQL)

	stmts, err := d.CreateTable(docTable(t))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS `doc_info` ("+
			"`did` bigint NOT NULL PRIMARY KEY AUTO_INCREMENT, "+
			"`doc_name` varchar(255) NOT NULL, "+
			"`type` varchar(255) NOT NULL COMMENT 'doc|folder', "+
			"`is_deleted` bool DEFAULT FALSE, "+
			"`created_at` timestamp NOT NULL DEFAULT CURRENT_TIMESTAMP) COMMENT='doc|folder'",
		stmts[0])
	assert.False(t, d.TransactionalDDL())
}

func TestCreateTableSQLite(t *testing.T) {
	d := mustDialect(t, DriverSQLite)

	stmts, err := d.CreateTable(docTable(t))
	require.NoError(t, err)
	require.Len(t, stmts, 1, "sqlite has no comment statements")

	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS `doc_info` ("+
			"`did` integer PRIMARY KEY AUTOINCREMENT, "+
			"`doc_name` varchar NOT NULL, "+
			"`type` varchar NOT NULL, "+
			"`is_deleted` boolean DEFAULT FALSE, "+
			"`created_at` datetime NOT NULL DEFAULT CURRENT_TIMESTAMP)",
		stmts[0])
}

func TestCreateTableCompositeKey(t *testing.T) {
	op, err := schema.CreateTable("tag2_doc").
		Column(schema.BigInteger("tag_id").PrimaryKey()).
		Column(schema.BigInteger("did").PrimaryKey()).
		Build()
	require.NoError(t, err)

	stmts, err := mustDialect(t, DriverPostgres).CreateTable(op.(schema.CreateTableOp).Table)
	require.NoError(t, err)
	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "tag2_doc" ("tag_id" bigint NOT NULL, "did" bigint NOT NULL, PRIMARY KEY ("tag_id", "did"))`,
		stmts[0])
}

func TestRenderDefaults(t *testing.T) {
	op, err := schema.CreateTable("user_info").
		Column(schema.String("color_scheme").NotNull().Default("dark")).
		Column(schema.String("quote").Default("it's")).
		Column(schema.TinyUnsigned("color").Default(1)).
		Column(schema.Float("kb_progress").Default(0.5)).
		Build()
	require.NoError(t, err)

	stmts, err := mustDialect(t, DriverPostgres).CreateTable(op.(schema.CreateTableOp).Table)
	require.NoError(t, err)
	assert.Contains(t, stmts[0], `"color_scheme" varchar NOT NULL DEFAULT 'dark'`)
	assert.Contains(t, stmts[0], `"quote" varchar DEFAULT 'it''s'`)
	assert.Contains(t, stmts[0], `"color" smallint DEFAULT 1`)
	assert.Contains(t, stmts[0], `"kb_progress" real DEFAULT 0.5`)
}

func TestUnsupportedDefaultIsSchemaError(t *testing.T) {
	def := schema.TableDef{
		Name: "broken",
		Columns: []schema.ColumnDef{{
			Name:     "x",
			Type:     schema.TypeString,
			Nullable: true,
			Default:  schema.Default{Kind: schema.DefaultLiteral, Value: []byte("raw")},
		}},
	}

	_, err := mustDialect(t, DriverSQLite).CreateTable(def)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerr.ErrInvalidSchema)
}

func TestAlterStatements(t *testing.T) {
	d := mustDialect(t, DriverPostgres)

	op, err := schema.AddColumn("dialog_info", schema.String("history").Comment("json"))
	require.NoError(t, err)
	add := op.(schema.AddColumnOp)

	stmts, err := d.AddColumn(add.Table, add.Column)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`ALTER TABLE "dialog_info" ADD COLUMN "history" varchar`,
		`COMMENT ON COLUMN "dialog_info"."history" IS 'json'`,
	}, stmts)

	assert.Equal(t, `ALTER TABLE "dialog_info" DROP COLUMN "history"`, d.DropColumn("dialog_info", "history"))
	assert.Equal(t, `DROP TABLE IF EXISTS "dialog_info"`, d.DropTable("dialog_info"))
}

func TestInsertUsesBindVariables(t *testing.T) {
	op, err := schema.Insert("tag_info").
		Columns("uid", "tag_name", "regx").
		Values(1, "视频", `.*\.(mpg|mpeg)`).
		Values(1, "图片", `.*\.(png|gif)`).
		Build()
	require.NoError(t, err)

	stmt, args := mustDialect(t, DriverSQLite).Insert(op.(schema.InsertOp))
	assert.Equal(t, "INSERT INTO `tag_info` (`uid`, `tag_name`, `regx`) VALUES (?, ?, ?), (?, ?, ?)", stmt)
	assert.Equal(t, []any{1, "视频", `.*\.(mpg|mpeg)`, 1, "图片", `.*\.(png|gif)`}, args)
}

func TestHistoryLockStatements(t *testing.T) {
	stmt, args := mustDialect(t, DriverPostgres).LockHistory()
	assert.Equal(t, "SELECT pg_advisory_xact_lock(hashtext(?))", stmt)
	assert.Equal(t, []any{historyLock}, args)
	stmt, _ = mustDialect(t, DriverPostgres).UnlockHistory()
	assert.Empty(t, stmt, "advisory transaction locks end with the transaction")

	stmt, args = mustDialect(t, DriverMySQL).LockHistory()
	assert.Equal(t, "SELECT GET_LOCK(?, ?)", stmt)
	assert.Equal(t, []any{historyLock, historyLockWait}, args)
	stmt, args = mustDialect(t, DriverMySQL).UnlockHistory()
	assert.Equal(t, "SELECT RELEASE_LOCK(?)", stmt)
	assert.Equal(t, []any{historyLock}, args)

	stmt, _ = mustDialect(t, DriverSQLite).LockHistory()
	assert.Empty(t, stmt)
}
