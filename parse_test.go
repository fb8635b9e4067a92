package pds

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := "PDS_VERSION_ID = PDS3\r\n" +
		"RECORD_BYTES   = 2880 <BYTES>\r\n" +
		"^IMAGE         = 16#4B#\r\n" +
		"SPACECRAFT:ID  = 'MGS'\r\n" +
		"NOTE           = \"a note\"\r\n" +
		"START          = 1990-07-04T12:00:30.5Z\r\n" +
		"END\r\n"

	label, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Equal(t, 6, label.Len())

	stmt, ok := label.Find("pds_version_id")
	require.True(t, ok)
	attr, ok := stmt.(*Attribute)
	require.True(t, ok)
	ident, ok := attr.Value().(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "PDS3", ident.Value())

	stmt, _ = label.Find("RECORD_BYTES")
	integer := stmt.(*Attribute).Value().(*Integer)
	v, ok := integer.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(2880), v)
	require.NotNil(t, integer.Units())
	assert.Equal(t, "BYTES", integer.Units().Expression())

	stmt, ok = label.Find("^IMAGE")
	require.True(t, ok)
	based := stmt.(*Attribute).Value().(*BasedInteger)
	assert.Equal(t, 16, based.Radix())
	assert.Equal(t, "4B", based.Digits())

	assert.True(t, label.Contains("SPACECRAFT:ID"))

	stmt, _ = label.Find("START")
	dt := stmt.(*Attribute).Value().(*DateTime)
	assert.Equal(t, "1990-07-04", dt.Date().String())
	assert.True(t, dt.Time().UTC())
}

func TestParseBlocks(t *testing.T) {
	input := `
OBJECT = IMAGE
 LINES = 1024
 GROUP = WINDOW
  FIRST = 1
 END_GROUP = WINDOW
 OBJECT = HISTOGRAM
  ITEMS = 256
 END_OBJECT
END_OBJECT = image
END
`
	label, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Equal(t, 1, label.Len())

	stmt, ok := label.Find("IMAGE")
	require.True(t, ok)
	object, ok := stmt.(*Object)
	require.True(t, ok, "closers match case-insensitively")
	require.Equal(t, 3, object.Statements().Len())

	stmt, ok = object.Statements().Find("WINDOW")
	require.True(t, ok)
	group, ok := stmt.(*Group)
	require.True(t, ok)
	assert.Equal(t, 1, group.Statements().Len())

	stmt, ok = object.Statements().Find("HISTOGRAM")
	require.True(t, ok, "a bare closer needs no repeated name")
	assert.IsType(t, &Object{}, stmt)
}

func TestParseBeginAliases(t *testing.T) {
	input := `
BEGIN_GROUP = TIMES
 A = 1
END_GROUP = TIMES
BEGIN_OBJECT = IMAGE
END_OBJECT = IMAGE
END
`
	label, err := Parse([]byte(input))
	require.NoError(t, err)
	assert.True(t, label.Contains("TIMES"))
	assert.True(t, label.Contains("IMAGE"))
}

func TestParseCollections(t *testing.T) {
	input := `
IDS    = {'A', 2, 'B'}
EMPTY  = {}
ROW    = (1.5, 'X', 2)
MATRIX = ((1, 2), (3, 4))
END
`
	label, err := Parse([]byte(input))
	require.NoError(t, err)

	stmt, _ := label.Find("IDS")
	set := stmt.(*Attribute).Value().(*Set)
	assert.Equal(t, 3, set.Len())

	stmt, _ = label.Find("EMPTY")
	assert.Equal(t, 0, stmt.(*Attribute).Value().(*Set).Len())

	stmt, _ = label.Find("ROW")
	row := stmt.(*Attribute).Value().(*Sequence1D)
	require.Equal(t, 3, row.Len())
	first, err := row.Get(0)
	require.NoError(t, err)
	assert.IsType(t, &Real{}, first)

	stmt, _ = label.Find("MATRIX")
	matrix := stmt.(*Attribute).Value().(*Sequence2D)
	require.Equal(t, 2, matrix.Len())
	r2, err := matrix.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "(3, 4)", r2.String())
}

func TestParseTrailingData(t *testing.T) {
	input := "A = 1\r\nEND\r\n\x00\xff binary payload follows"
	label, err := Parse([]byte(input))
	require.NoError(t, err, "bytes after END are not inspected")
	assert.Equal(t, 1, label.Len())
}

func TestParseComments(t *testing.T) {
	input := "A = 1 /* inline */ ignored to end of line\nB = 2\nEND"
	label, err := Parse([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, 2, label.Len())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ParseErrorKind
		token string
	}{
		{"empty input", "", KindUnexpectedEnd, ""},
		{"no terminator", "A = 1\r\n", KindUnexpectedEnd, ""},
		{"missing equals", "blha blha blha", KindExpectedToken, "blha"},
		{"missing value", "A =\r\nEND", KindExpectedToken, "END"},
		{"value only", "= 1\r\nEND", KindExpectedToken, "="},
		{"unterminated text", "A = \"abc", KindUnexpectedEnd, "abc"},
		{"unterminated block", "GROUP = G\r\nA = 1\r\n", KindUnexpectedEnd, ""},
		{"block closed by end", "GROUP = G\r\nEND\r\n", KindExpectedToken, "END"},
		{"mismatched closer", "GROUP = G\r\nEND_GROUP = H\r\nEND", KindMismatchedTerminator, "H"},
		{"bad radix", "A = 25#10#\r\nEND", KindMalformedLiteral, "25#10#"},
		{"bad digit", "A = 2#12#\r\nEND", KindMalformedLiteral, "2#12#"},
		{"bad date", "A = 2001-13-01\r\nEND", KindMalformedLiteral, "2001-13-01"},
		{"bad time", "A = 25:00\r\nEND", KindMalformedLiteral, "25:00"},
		{"bad units", "A = 1 <KM//S>\r\nEND", KindMalformedLiteral, "KM//S"},
		{"reserved value", "A = GROUP\r\nEND", KindExpectedToken, "GROUP"},
		{"sequence missing comma", "A = (1 2)\r\nEND", KindExpectedToken, "2"},
		{"empty sequence", "A = ()\r\nEND", KindExpectedToken, ")"},
		{"pointer without name", "^ = 1\r\nEND", KindExpectedToken, "="},
		{"stray closer", "END_GROUP = G\r\nEND", KindExpectedToken, "END_GROUP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.kind, perr.Kind, "got: %v", err)
			assert.Equal(t, tt.token, perr.Token)
		})
	}
}

func TestParseNestedValidation(t *testing.T) {
	input := `
GROUP = G
 OBJECT = O
 END_OBJECT = O
END_GROUP = G
END
`
	_, err := Parse([]byte(input))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr, "container rules hold during parsing")
	assert.ErrorContains(t, err, "group cannot contain a object statement")

	var perr *ParseError
	assert.False(t, errors.As(err, &perr))
}

func TestParseErrorOffset(t *testing.T) {
	_, err := Parse([]byte("A = 2#12#\r\nEND"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 4, perr.Offset, "the offset points at the offending literal")
}
