package migrations

import (
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/migration"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/schema"
)

// CreateTableName is the unit creating the application tables
const CreateTableName = "m20220101_000001_create_table"

// Application tables
const (
	TableUserInfo   = "user_info"
	TableTagInfo    = "tag_info"
	TableTag2Doc    = "tag2_doc"
	TableKb2Doc     = "kb2_doc"
	TableDialog2Kb  = "dialog2_kb"
	TableDoc2Doc    = "doc2_doc"
	TableKbInfo     = "kb_info"
	TableDocInfo    = "doc_info"
	TableDialogInfo = "dialog_info"
)

// ApplicationTables lists the tables in creation order
var ApplicationTables = []string{
	TableUserInfo,
	TableTagInfo,
	TableTag2Doc,
	TableKb2Doc,
	TableDialog2Kb,
	TableDoc2Doc,
	TableKbInfo,
	TableDocInfo,
	TableDialogInfo,
}

// CreateTable creates the nine application tables and seeds them.
// Down drops the tables and nothing else.
func CreateTable() migration.Unit {
	return migration.Unit{
		Name: CreateTableName,
		Up:   createTableUp,
		Down: createTableDown,
	}
}

func createTableUp() ([]schema.Operation, error) {
	var p schema.Plan

	p.Add(schema.CreateTable(TableUserInfo).
		Column(id("uid")).
		Column(schema.String("email").NotNull()).
		Column(schema.String("nickname").NotNull()).
		Column(schema.String("avatar_base64")).
		Column(schema.String("color_scheme").Default("dark")).
		Column(schema.String("list_style").Default("list")).
		Column(schema.String("language").Default("chinese")).
		Column(schema.String("password").NotNull()).
		Column(schema.TimestampTZ("last_login_at").DefaultNow()).
		Column(createdAt()).
		Column(updatedAt()).
		Column(isDeleted()).
		Build())

	p.Add(schema.CreateTable(TableTagInfo).
		Column(id("tid")).
		Column(schema.BigInteger("uid").NotNull()).
		Column(schema.String("tag_name").NotNull()).
		Column(schema.String("regx")).
		Column(schema.TinyUnsigned("color").Default(1)).
		Column(schema.TinyUnsigned("icon").Default(1)).
		Column(schema.BigInteger("folder_id")).
		Column(createdAt()).
		Column(updatedAt()).
		Column(isDeleted()).
		Build())

	p.Add(schema.CreateTable(TableTag2Doc).
		Column(id("id")).
		Column(schema.BigInteger("tag_id")).
		Column(schema.BigInteger("did")).
		Build())

	p.Add(schema.CreateTable(TableKb2Doc).
		Column(id("id")).
		Column(schema.BigInteger("kb_id")).
		Column(schema.BigInteger("did")).
		Column(schema.Float("kb_progress").Default(0)).
		Column(schema.String("kb_progress_msg").Default("")).
		Column(updatedAt()).
		Column(isDeleted()).
		Build())

	p.Add(schema.CreateTable(TableDialog2Kb).
		Column(id("id")).
		Column(schema.BigInteger("dialog_id")).
		Column(schema.BigInteger("kb_id")).
		Build())

	p.Add(schema.CreateTable(TableDoc2Doc).
		Column(id("id")).
		Column(schema.BigInteger("parent_id")).
		Column(schema.BigInteger("did")).
		Build())

	p.Add(schema.CreateTable(TableKbInfo).
		Column(id("kb_id")).
		Column(schema.BigInteger("uid").NotNull()).
		Column(schema.String("kb_name").NotNull()).
		Column(schema.TinyUnsigned("icon").Default(1)).
		Column(createdAt()).
		Column(updatedAt()).
		Column(isDeleted()).
		Build())

	p.Add(schema.CreateTable(TableDocInfo).
		Column(id("did")).
		Column(schema.BigInteger("uid").NotNull()).
		Column(schema.String("doc_name").NotNull()).
		Column(schema.String("location").NotNull()).
		Column(schema.BigInteger("size").NotNull()).
		Column(schema.String("type").NotNull()).
		Column(createdAt()).
		Column(updatedAt()).
		Column(isDeleted()).
		Comment("doc|folder").
		Build())

	p.Add(schema.CreateTable(TableDialogInfo).
		Column(id("dialog_id")).
		Column(schema.BigInteger("uid").NotNull()).
		Column(schema.BigInteger("kb_id").NotNull()).
		Column(schema.String("dialog_name").NotNull()).
		Column(schema.String("history").Comment("json")).
		Column(createdAt()).
		Column(updatedAt()).
		Column(isDeleted()).
		Build())

	seeds, err := SeedOperations()
	if err != nil {
		return nil, err
	}
	p.Append(seeds...)

	return p.Operations()
}

func createTableDown() ([]schema.Operation, error) {
	var p schema.Plan
	for _, table := range ApplicationTables {
		p.Add(schema.DropTable(table))
	}
	return p.Operations()
}

func id(name string) *schema.Column {
	return schema.BigInteger(name).NotNull().AutoIncrement().PrimaryKey()
}

func createdAt() *schema.Column {
	return schema.TimestampTZ("created_at").NotNull().DefaultNow()
}

func updatedAt() *schema.Column {
	return schema.TimestampTZ("updated_at").NotNull().DefaultNow()
}

func isDeleted() *schema.Column {
	return schema.Boolean("is_deleted").Default(false)
}
