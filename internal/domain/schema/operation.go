package schema

import "fmt"

// OperationKind names the kind of a schema operation
type OperationKind string

const (
	KindCreateTable OperationKind = "create_table"
	KindDropTable   OperationKind = "drop_table"
	KindAddColumn   OperationKind = "add_column"
	KindDropColumn  OperationKind = "drop_column"
	KindBulkInsert  OperationKind = "bulk_insert"
)

// Operation is a single schema or seed statement. The set of operations is
// closed; executors switch on the concrete type.
type Operation interface {
	Kind() OperationKind
	Target() string
	sealed()
}

// Describe renders an operation as "<kind> <target>" for logs and errors
func Describe(op Operation) string {
	if op == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s", op.Kind(), op.Target())
}

// CreateTableOp creates a table unless it already exists
type CreateTableOp struct {
	Table TableDef
}

func (o CreateTableOp) Kind() OperationKind { return KindCreateTable }
func (o CreateTableOp) Target() string      { return o.Table.Name }
func (CreateTableOp) sealed()               {}

// DropTableOp drops a table if it exists
type DropTableOp struct {
	Table string
}

func (o DropTableOp) Kind() OperationKind { return KindDropTable }
func (o DropTableOp) Target() string      { return o.Table }
func (DropTableOp) sealed()               {}

// AddColumnOp adds a column unless the table already has it
type AddColumnOp struct {
	Table  string
	Column ColumnDef
}

func (o AddColumnOp) Kind() OperationKind { return KindAddColumn }
func (o AddColumnOp) Target() string      { return o.Table + "." + o.Column.Name }
func (AddColumnOp) sealed()               {}

// DropColumnOp removes a column if present
type DropColumnOp struct {
	Table  string
	Column string
}

func (o DropColumnOp) Kind() OperationKind { return KindDropColumn }
func (o DropColumnOp) Target() string      { return o.Table + "." + o.Column }
func (DropColumnOp) sealed()               {}

// InsertOp inserts one or more rows in a single statement
type InsertOp struct {
	Table   string
	Columns []string
	Rows    [][]any
}

func (o InsertOp) Kind() OperationKind { return KindBulkInsert }
func (o InsertOp) Target() string      { return o.Table }
func (InsertOp) sealed()               {}

// DropTable builds a drop-table-if-exists operation
func DropTable(name string) (Operation, error) {
	if err := validateName("", name, "table"); err != nil {
		return nil, err
	}
	return DropTableOp{Table: name}, nil
}

// AddColumn builds an add-column-if-missing operation
func AddColumn(table string, column *Column) (Operation, error) {
	if err := validateName("", table, "table"); err != nil {
		return nil, err
	}
	if column == nil {
		return nil, schemaErr(table, "column is nil")
	}
	def := column.Def()
	if err := validateColumn(table, def); err != nil {
		return nil, err
	}
	if def.PrimaryKey || def.AutoIncrement {
		return nil, schemaErr(table, "column %q cannot be added as a primary key", def.Name)
	}
	if !def.Nullable && !def.HasDefault() {
		return nil, schemaErr(table, "added column %q must be nullable or declare a default", def.Name)
	}
	return AddColumnOp{Table: table, Column: def}, nil
}

// DropColumn builds a drop-column-if-present operation
func DropColumn(table, column string) (Operation, error) {
	if err := validateName("", table, "table"); err != nil {
		return nil, err
	}
	if err := validateName(table, column, "column"); err != nil {
		return nil, err
	}
	return DropColumnOp{Table: table, Column: column}, nil
}
