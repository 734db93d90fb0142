package schema

// ColumnType is the logical type of a column, independent of any SQL dialect
type ColumnType int

const (
	TypeBigInteger ColumnType = iota + 1
	TypeString
	TypeBoolean
	TypeFloat
	TypeTimestampTZ
	TypeTinyUnsigned
)

// String returns the name of the logical type
func (t ColumnType) String() string {
	switch t {
	case TypeBigInteger:
		return "big_integer"
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	case TypeFloat:
		return "float"
	case TypeTimestampTZ:
		return "timestamp_tz"
	case TypeTinyUnsigned:
		return "tiny_unsigned"
	default:
		return "unknown"
	}
}

// IsInteger reports whether the type holds whole numbers
func (t ColumnType) IsInteger() bool {
	return t == TypeBigInteger || t == TypeTinyUnsigned
}

// DefaultKind tells how a column default is expressed
type DefaultKind int

const (
	DefaultNone DefaultKind = iota
	DefaultLiteral
	DefaultCurrentTimestamp
)

// Default is a column default expression
type Default struct {
	Kind  DefaultKind
	Value any
}

// ColumnDef is the immutable description of a column
type ColumnDef struct {
	Name          string
	Type          ColumnType
	Nullable      bool
	Default       Default
	PrimaryKey    bool
	AutoIncrement bool
	Comment       string
}

// HasDefault reports whether the column declares a default expression
func (c ColumnDef) HasDefault() bool {
	return c.Default.Kind != DefaultNone
}

// Column builds a ColumnDef fluently. Columns are nullable until NotNull is called.
type Column struct {
	def ColumnDef
}

func newColumn(name string, t ColumnType) *Column {
	return &Column{def: ColumnDef{Name: name, Type: t, Nullable: true}}
}

// BigInteger declares a 64-bit integer column
func BigInteger(name string) *Column { return newColumn(name, TypeBigInteger) }

// String declares a variable-length text column
func String(name string) *Column { return newColumn(name, TypeString) }

// Boolean declares a boolean column
func Boolean(name string) *Column { return newColumn(name, TypeBoolean) }

// Float declares a floating point column
func Float(name string) *Column { return newColumn(name, TypeFloat) }

// TimestampTZ declares a timestamp-with-timezone column
func TimestampTZ(name string) *Column { return newColumn(name, TypeTimestampTZ) }

// TinyUnsigned declares a small unsigned integer column
func TinyUnsigned(name string) *Column { return newColumn(name, TypeTinyUnsigned) }

// NotNull marks the column as required
func (c *Column) NotNull() *Column {
	c.def.Nullable = false
	return c
}

// Default sets a literal default value
func (c *Column) Default(v any) *Column {
	c.def.Default = Default{Kind: DefaultLiteral, Value: v}
	return c
}

// DefaultNow defaults the column to the current timestamp
func (c *Column) DefaultNow() *Column {
	c.def.Default = Default{Kind: DefaultCurrentTimestamp}
	return c
}

// PrimaryKey marks the column as (part of) the primary key. Primary key columns are never null.
func (c *Column) PrimaryKey() *Column {
	c.def.PrimaryKey = true
	c.def.Nullable = false
	return c
}

// AutoIncrement marks the column as store-generated
func (c *Column) AutoIncrement() *Column {
	c.def.AutoIncrement = true
	return c
}

// Comment attaches a comment to the column
func (c *Column) Comment(text string) *Column {
	c.def.Comment = text
	return c
}

// Def returns the column definition built so far
func (c *Column) Def() ColumnDef {
	return c.def
}
