package database

import (
	"fmt"
	"strconv"
	"strings"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/schema"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Dialect renders schema operations as SQL for one driver
type Dialect struct {
	driver string
	quoter gorm.Dialector
}

// NewDialect returns the renderer for driver
func NewDialect(driver string) (*Dialect, error) {
	var quoter gorm.Dialector
	switch driver {
	case DriverPostgres:
		quoter = postgres.New(postgres.Config{})
	case DriverMySQL:
		quoter = mysql.New(mysql.Config{})
	case DriverSQLite:
		quoter = sqlite.Open("")
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
	return &Dialect{driver: driver, quoter: quoter}, nil
}

// Driver returns the driver name
func (d *Dialect) Driver() string {
	return d.driver
}

// TransactionalDDL reports whether DDL rolls back with the surrounding transaction.
// MySQL commits implicitly before and after every DDL statement.
func (d *Dialect) TransactionalDDL() bool {
	return d.driver != DriverMySQL
}

// historyLock names the lock serializing migration runners
const historyLock = "docbase_schema_migrations"

// historyLockWait bounds how long a mysql runner waits for the history lock, in seconds
const historyLockWait = 600

// LockHistory returns the statement taking the history lock inside the current
// transaction. SQLite returns an empty statement: BEGIN IMMEDIATE already
// serializes writers.
func (d *Dialect) LockHistory() (string, []any) {
	switch d.driver {
	case DriverPostgres:
		return "SELECT pg_advisory_xact_lock(hashtext(?))", []any{historyLock}
	case DriverMySQL:
		return "SELECT GET_LOCK(?, ?)", []any{historyLock, historyLockWait}
	default:
		return "", nil
	}
}

// UnlockHistory returns the statement releasing a session level history lock.
// Only mysql needs one; postgres drops the advisory lock at transaction end.
func (d *Dialect) UnlockHistory() (string, []any) {
	if d.driver == DriverMySQL {
		return "SELECT RELEASE_LOCK(?)", []any{historyLock}
	}
	return "", nil
}

// Quote quotes an identifier
func (d *Dialect) Quote(name string) string {
	var b strings.Builder
	d.quoter.QuoteTo(&b, name)
	return b.String()
}

// CreateTable renders a create-table-if-not-exists statement followed by any
// comment statements the driver needs
func (d *Dialect) CreateTable(t schema.TableDef) ([]string, error) {
	pk := t.PrimaryKey()

	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(d.Quote(t.Name))
	b.WriteString(" (")
	for i, col := range t.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		decl, err := d.columnDecl(t.Name, col, len(pk) == 1)
		if err != nil {
			return nil, err
		}
		b.WriteString(decl)
	}
	if len(pk) > 1 {
		quoted := make([]string, len(pk))
		for i, name := range pk {
			quoted[i] = d.Quote(name)
		}
		b.WriteString(", PRIMARY KEY (")
		b.WriteString(strings.Join(quoted, ", "))
		b.WriteString(")")
	}
	b.WriteString(")")
	if d.driver == DriverMySQL && t.Comment != "" {
		b.WriteString(" COMMENT=")
		b.WriteString(quoteLiteral(t.Comment))
	}

	stmts := []string{b.String()}
	if d.driver == DriverPostgres {
		if t.Comment != "" {
			stmts = append(stmts, fmt.Sprintf("COMMENT ON TABLE %s IS %s", d.Quote(t.Name), quoteLiteral(t.Comment)))
		}
		for _, col := range t.Columns {
			if col.Comment != "" {
				stmts = append(stmts, d.columnComment(t.Name, col))
			}
		}
	}
	return stmts, nil
}

// DropTable renders a drop-table-if-exists statement
func (d *Dialect) DropTable(table string) string {
	return "DROP TABLE IF EXISTS " + d.Quote(table)
}

// AddColumn renders the statements adding col to table
func (d *Dialect) AddColumn(table string, col schema.ColumnDef) ([]string, error) {
	decl, err := d.columnDecl(table, col, false)
	if err != nil {
		return nil, err
	}
	stmts := []string{fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", d.Quote(table), decl)}
	if d.driver == DriverPostgres && col.Comment != "" {
		stmts = append(stmts, d.columnComment(table, col))
	}
	return stmts, nil
}

// DropColumn renders a drop-column statement
func (d *Dialect) DropColumn(table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", d.Quote(table), d.Quote(column))
}

// Insert renders one multi-row insert with bind variables
func (d *Dialect) Insert(op schema.InsertOp) (string, []any) {
	cols := make([]string, len(op.Columns))
	for i, c := range op.Columns {
		cols[i] = d.Quote(c)
	}
	row := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(op.Columns)), ", ") + ")"

	tuples := make([]string, len(op.Rows))
	args := make([]any, 0, len(op.Rows)*len(op.Columns))
	for i, r := range op.Rows {
		tuples[i] = row
		args = append(args, r...)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		d.Quote(op.Table), strings.Join(cols, ", "), strings.Join(tuples, ", ")), args
}

func (d *Dialect) columnDecl(table string, col schema.ColumnDef, inlinePK bool) (string, error) {
	if col.AutoIncrement && d.driver == DriverSQLite {
		// sqlite only accepts AUTOINCREMENT on an INTEGER PRIMARY KEY
		return d.Quote(col.Name) + " integer PRIMARY KEY AUTOINCREMENT", nil
	}

	typ, err := d.columnType(col)
	if err != nil {
		return "", domainerr.NewSchemaError(table, "%v", err)
	}

	parts := []string{d.Quote(col.Name), typ}
	if !col.Nullable {
		parts = append(parts, "NOT NULL")
	}
	if col.HasDefault() {
		def, err := renderDefault(col)
		if err != nil {
			return "", domainerr.NewSchemaError(table, "%v", err)
		}
		parts = append(parts, "DEFAULT "+def)
	}
	if col.PrimaryKey && inlinePK {
		parts = append(parts, "PRIMARY KEY")
	}
	if col.AutoIncrement && d.driver == DriverMySQL {
		parts = append(parts, "AUTO_INCREMENT")
	}
	if col.Comment != "" && d.driver == DriverMySQL {
		parts = append(parts, "COMMENT "+quoteLiteral(col.Comment))
	}
	return strings.Join(parts, " "), nil
}

func (d *Dialect) columnType(col schema.ColumnDef) (string, error) {
	switch d.driver {
	case DriverPostgres:
		switch col.Type {
		case schema.TypeBigInteger:
			if col.AutoIncrement {
				return "bigserial", nil
			}
			return "bigint", nil
		case schema.TypeString:
			return "varchar", nil
		case schema.TypeBoolean:
			return "boolean", nil
		case schema.TypeFloat:
			return "real", nil
		case schema.TypeTimestampTZ:
			return "timestamp with time zone", nil
		case schema.TypeTinyUnsigned:
			return "smallint", nil
		}
	case DriverMySQL:
		switch col.Type {
		case schema.TypeBigInteger:
			return "bigint", nil
		case schema.TypeString:
			return "varchar(255)", nil
		case schema.TypeBoolean:
			return "bool", nil
		case schema.TypeFloat:
			return "float", nil
		case schema.TypeTimestampTZ:
			if col.Nullable {
				return "timestamp NULL", nil
			}
			return "timestamp", nil
		case schema.TypeTinyUnsigned:
			return "tinyint unsigned", nil
		}
	case DriverSQLite:
		switch col.Type {
		case schema.TypeBigInteger:
			return "bigint", nil
		case schema.TypeString:
			return "varchar", nil
		case schema.TypeBoolean:
			return "boolean", nil
		case schema.TypeFloat:
			return "real", nil
		case schema.TypeTimestampTZ:
			return "datetime", nil
		case schema.TypeTinyUnsigned:
			return "smallint", nil
		}
	}
	return "", fmt.Errorf("column %q: type %s has no %s mapping", col.Name, col.Type, d.driver)
}

func (d *Dialect) columnComment(table string, col schema.ColumnDef) string {
	return fmt.Sprintf("COMMENT ON COLUMN %s.%s IS %s", d.Quote(table), d.Quote(col.Name), quoteLiteral(col.Comment))
}

func renderDefault(col schema.ColumnDef) (string, error) {
	if col.Default.Kind == schema.DefaultCurrentTimestamp {
		return "CURRENT_TIMESTAMP", nil
	}

	switch v := col.Default.Value.(type) {
	case string:
		return quoteLiteral(v), nil
	case bool:
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.Itoa(v), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("column %q: unsupported default %T", col.Name, v)
	}
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
