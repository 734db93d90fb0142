package schema

import (
	"slices"
)

// TableDef is the immutable description of a table. Columns keep their declaration order.
type TableDef struct {
	Name    string
	Columns []ColumnDef
	Comment string
}

// Column looks up a column by name
func (t TableDef) Column(name string) (ColumnDef, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnDef{}, false
}

// PrimaryKey returns the names of the primary key columns in declaration order
func (t TableDef) PrimaryKey() []string {
	var keys []string
	for _, c := range t.Columns {
		if c.PrimaryKey {
			keys = append(keys, c.Name)
		}
	}
	return keys
}

// TableBuilder assembles a create-table operation
type TableBuilder struct {
	def TableDef
}

// CreateTable starts a create-table-if-not-exists definition
func CreateTable(name string) *TableBuilder {
	return &TableBuilder{def: TableDef{Name: name}}
}

// Column appends a column
func (b *TableBuilder) Column(c *Column) *TableBuilder {
	if c != nil {
		b.def.Columns = append(b.def.Columns, c.Def())
	}
	return b
}

// Comment attaches a table comment
func (b *TableBuilder) Comment(text string) *TableBuilder {
	b.def.Comment = text
	return b
}

// Build validates the definition and returns the operation
func (b *TableBuilder) Build() (Operation, error) {
	def := TableDef{
		Name:    b.def.Name,
		Columns: slices.Clone(b.def.Columns),
		Comment: b.def.Comment,
	}
	if err := validateTable(def); err != nil {
		return nil, err
	}
	return CreateTableOp{Table: def}, nil
}

func validateTable(def TableDef) error {
	if err := validateName("", def.Name, "table"); err != nil {
		return err
	}
	if len(def.Columns) == 0 {
		return schemaErr(def.Name, "table has no columns")
	}

	seen := make(map[string]struct{}, len(def.Columns))
	autoIncrement := 0
	for _, c := range def.Columns {
		if err := validateColumn(def.Name, c); err != nil {
			return err
		}
		if _, dup := seen[c.Name]; dup {
			return schemaErr(def.Name, "duplicate column %q", c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.AutoIncrement {
			autoIncrement++
		}
	}

	if autoIncrement > 1 {
		return schemaErr(def.Name, "table declares %d auto-increment columns, at most one is allowed", autoIncrement)
	}
	if autoIncrement == 1 && len(def.PrimaryKey()) > 1 {
		return schemaErr(def.Name, "auto-increment column cannot be part of a composite primary key")
	}
	return nil
}

func validateColumn(table string, c ColumnDef) error {
	if err := validateName(table, c.Name, "column"); err != nil {
		return err
	}
	if c.Type < TypeBigInteger || c.Type > TypeTinyUnsigned {
		return schemaErr(table, "column %q has an unknown type", c.Name)
	}
	if c.AutoIncrement {
		if !c.PrimaryKey {
			return schemaErr(table, "auto-increment column %q must be the primary key", c.Name)
		}
		if c.Type != TypeBigInteger {
			return schemaErr(table, "auto-increment column %q must be a big integer, got %s", c.Name, c.Type)
		}
		if c.HasDefault() {
			return schemaErr(table, "auto-increment column %q cannot declare a default", c.Name)
		}
	}
	return validateDefault(table, c)
}

func validateDefault(table string, c ColumnDef) error {
	switch c.Default.Kind {
	case DefaultNone:
		return nil
	case DefaultCurrentTimestamp:
		if c.Type != TypeTimestampTZ {
			return schemaErr(table, "column %q: current timestamp default requires a timestamp column", c.Name)
		}
		return nil
	case DefaultLiteral:
	default:
		return schemaErr(table, "column %q has an unknown default kind", c.Name)
	}

	ok := false
	switch v := c.Default.Value.(type) {
	case string:
		ok = c.Type == TypeString
	case bool:
		ok = c.Type == TypeBoolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		ok = c.Type.IsInteger() || c.Type == TypeFloat
		if c.Type == TypeTinyUnsigned {
			ok = ok && fitsTinyUnsigned(v)
		}
	case float32, float64:
		ok = c.Type == TypeFloat
	}
	if !ok {
		return schemaErr(table, "column %q: default %v (%T) does not fit type %s", c.Name, c.Default.Value, c.Default.Value, c.Type)
	}
	return nil
}

func fitsTinyUnsigned(v any) bool {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint8:
		return true
	case uint, uint16, uint32, uint64:
		u, _ := toUint64(x)
		return u <= 255
	}
	return n >= 0 && n <= 255
}

func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	}
	return 0, false
}
