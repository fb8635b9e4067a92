package scanner

import "strings"

// Type is the type of a token.
type Type string

// Token represents a lexical token of the PDS label grammar.
//
// For ILLEGAL tokens, Literal holds the offending lexeme and Msg a
// human-readable diagnostic.
type Token struct {
	Type    Type
	Literal string
	Msg     string
	Offset  int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // An unknown or invalid token
	EOF     Type = "EOF"     // End of input

	// Literals
	IDENT    Type = "IDENT"    // TARGET_NAME, ns:ident
	INT      Type = "INT"      // 123, -42
	BASED    Type = "BASED"    // 16#4B#
	REAL     Type = "REAL"     // 0.5, 1.e4, -3.14
	DATE     Type = "DATE"     // 1990-07-04, 1990-158
	TIME     Type = "TIME"     // 12:00:30.5Z
	DATETIME Type = "DATETIME" // 1990-07-04T12:00Z
	TEXT     Type = "TEXT"     // "..." (content, quotes stripped)
	SYMBOL   Type = "SYMBOL"   // '...' (content, quotes stripped)
	UNITS    Type = "UNITS"    // <KM/S> (content, brackets stripped)

	// Delimiters
	EQUAL  Type = "="
	COMMA  Type = ","
	LPAREN Type = "("
	RPAREN Type = ")"
	LBRACE Type = "{"
	RBRACE Type = "}"
	CARET  Type = "^"

	// Reserved words
	END       Type = "END"
	GROUP     Type = "GROUP"
	ENDGROUP  Type = "END_GROUP"
	OBJECT    Type = "OBJECT"
	ENDOBJECT Type = "END_OBJECT"
)

var keywords = map[string]Type{
	"end":          END,
	"group":        GROUP,
	"begin_group":  GROUP,
	"end_group":    ENDGROUP,
	"object":       OBJECT,
	"begin_object": OBJECT,
	"end_object":   ENDOBJECT,
}

// LookupIdent checks the reserved words table for an identifier.
// Reserved words match case-insensitively; BEGIN_GROUP and BEGIN_OBJECT
// are aliases for GROUP and OBJECT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}

// IsReserved reports whether ident is one of the reserved words that may
// not be used as an identifier.
func IsReserved(ident string) bool {
	_, ok := keywords[strings.ToLower(ident)]
	return ok
}
