package fqn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_Plain(t *testing.T) {
	segments, err := Split("mysql.shop.public.orders")
	require.NoError(t, err)
	assert.Equal(t, []string{"mysql", "shop", "public", "orders"}, segments)
}

func TestSplit_QuotedSegment(t *testing.T) {
	segments, err := Split(`mysql.shop."sales.eu".orders`)
	require.NoError(t, err)
	assert.Equal(t, []string{"mysql", "shop", "sales.eu", "orders"}, segments)
}

func TestSplit_Empty(t *testing.T) {
	segments, err := Split("")
	require.NoError(t, err)
	assert.Nil(t, segments)
}

func TestSplit_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{`a."b.c`, ErrUnbalancedQuote},
		{`a."b"c`, ErrUnbalancedQuote},
		{`a.b"c`, ErrUnbalancedQuote},
		{"a..b", ErrEmptySegment},
		{"a.b.", ErrEmptySegment},
		{".a", ErrEmptySegment},
		{`a."".b`, ErrEmptySegment},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Split(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	cases := [][]string{
		{"svc"},
		{"svc", "db", "schema", "table"},
		{"svc", "db.with.dots", "schema", "t"},
		{"a b", "c-d", "e_f"},
	}
	for _, segments := range cases {
		got, err := Split(Build(segments...))
		require.NoError(t, err)
		assert.Equal(t, segments, got)
	}
}

func TestQuoteName(t *testing.T) {
	assert.Equal(t, "plain", QuoteName("plain"))
	assert.Equal(t, `"a.b"`, QuoteName("a.b"))
	assert.Equal(t, `"a.b"`, QuoteName(`"a.b"`))
	assert.Equal(t, "a.b", UnquoteName(`"a.b"`))
	assert.Equal(t, "ab", UnquoteName("ab"))
}

func TestTableFQNFromColumnFQN(t *testing.T) {
	tests := []struct {
		column string
		table  string
		name   string
	}{
		{"db.schema.table.column", "db.schema.table", "column"},
		{"svc.db.schema.table.column", "svc.db.schema.table", "column"},
		{"svc.db.schema.table.parent.child", "svc.db.schema.table", "parent.child"},
		{"table.column", "table", "column"},
		{`svc.db."s.1".table.col`, `svc.db."s.1".table`, "col"},
		{`svc.db.s.t."x.y"`, "svc.db.s.t", `"x.y"`},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			table, err := TableFQNFromColumnFQN(tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.table, table)

			name, err := ColumnNameFromColumnFQN(tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestColumnNameFromColumnFQN_QuotedVersusNested(t *testing.T) {
	quoted, err := ColumnNameFromColumnFQN(`svc.db.s.t."x.y"`)
	require.NoError(t, err)
	nested, err := ColumnNameFromColumnFQN("svc.db.s.t.x.y")
	require.NoError(t, err)
	assert.NotEqual(t, quoted, nested)

	parts, err := Split(quoted)
	require.NoError(t, err)
	assert.Equal(t, []string{"x.y"}, parts)
	parts, err = Split(nested)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, parts)
}

func TestTableFQNFromColumnFQN_PrefixProperty(t *testing.T) {
	tables := []string{"t", "s.t", "d.s.t", "svc.d.s.t"}
	for _, table := range tables {
		got, err := TableFQNFromColumnFQN(table + ".col")
		require.NoError(t, err)
		assert.Equal(t, table, got)
	}
}

func TestTableFQNFromColumnFQN_TooShort(t *testing.T) {
	_, err := TableFQNFromColumnFQN("orders")
	assert.ErrorIs(t, err, ErrNotColumnFQN)

	_, err = ColumnNameFromColumnFQN("")
	assert.ErrorIs(t, err, ErrNotColumnFQN)
}

func TestPartialName(t *testing.T) {
	name := "svc.db.schema.table.col.sub"

	assert.Equal(t, "svc", PartialName(name, []Part{PartService}, "/"))
	assert.Equal(t, "db/schema", PartialName(name, []Part{PartDatabase, PartSchema}, "/"))
	assert.Equal(t, "svc.db.schema.table", PartialName(name, []Part{PartService, PartDatabase, PartSchema, PartTable}, "."))
	assert.Equal(t, "col.sub", PartialName(name, []Part{PartNestedColumn, PartService}, "/"))
	assert.Equal(t, "sub", PartialName(name, []Part{PartTestCase}, "/"))
	assert.Equal(t, "", PartialName("svc.db", []Part{PartTable}, "/"))
	assert.Equal(t, "", PartialName("svc.db.schema.table", []Part{PartNestedColumn}, "/"))
	assert.Equal(t, "", PartialName("", []Part{PartService}, "/"))
}

func TestPartialName_CaseSensitive(t *testing.T) {
	assert.Equal(t, "Orders", PartialName("svc.DB.Public.Orders", []Part{PartTable}, "/"))
}

func TestNameFromFQN(t *testing.T) {
	assert.Equal(t, "orders", NameFromFQN("svc.db.schema.orders"))
	assert.Equal(t, "a.b", NameFromFQN(`svc."a.b"`))
	assert.Equal(t, "", NameFromFQN(""))
}

func TestParsePart(t *testing.T) {
	for p := PartService; p <= PartTopic; p++ {
		got, err := ParsePart(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePart("galaxy")
	assert.Error(t, err)
}
