package schema

import (
	"slices"
	"strings"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
)

// InsertBuilder assembles a multi-row insert
type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
}

// Insert starts a bulk insert into table
func Insert(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Columns sets the column list shared by every row
func (b *InsertBuilder) Columns(names ...string) *InsertBuilder {
	b.columns = append(b.columns, names...)
	return b
}

// Values appends one row tuple
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, slices.Clone(values))
	return b
}

// Build validates arity and returns the operation
func (b *InsertBuilder) Build() (Operation, error) {
	if err := validateName("", b.table, "table"); err != nil {
		return nil, err
	}
	if len(b.columns) == 0 {
		return nil, schemaErr(b.table, "insert declares no columns")
	}
	seen := make(map[string]struct{}, len(b.columns))
	for _, c := range b.columns {
		if err := validateName(b.table, c, "column"); err != nil {
			return nil, err
		}
		if _, dup := seen[c]; dup {
			return nil, schemaErr(b.table, "insert lists column %q twice", c)
		}
		seen[c] = struct{}{}
	}
	if len(b.rows) == 0 {
		return nil, schemaErr(b.table, "insert has no rows")
	}
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return nil, schemaErr(b.table, "row %d has %d values, expected %d", i+1, len(row), len(b.columns))
		}
	}

	rows := make([][]any, len(b.rows))
	for i, row := range b.rows {
		rows[i] = slices.Clone(row)
	}
	return InsertOp{Table: b.table, Columns: slices.Clone(b.columns), Rows: rows}, nil
}

func validateName(owner, name, what string) error {
	if strings.TrimSpace(name) == "" {
		return schemaErr(owner, "%s name is empty", what)
	}
	return nil
}

func schemaErr(object, format string, args ...any) error {
	return domainerr.NewSchemaError(object, format, args...)
}
