package pds

import (
	"strings"

	"github.com/KimNorgaard/go-pds/internal/scanner"
)

// Text represents a quoted text value: any printable or control ASCII
// excluding the double quote, possibly spanning multiple lines.
type Text struct {
	value string
}

// NewText creates a Text value.
func NewText(value string) (*Text, error) {
	if !scanner.IsTextValue(value) {
		return nil, validationErrorf("invalid text value %q", value)
	}
	return &Text{value: value}, nil
}

// Value returns the text content, without quotes.
func (t *Text) Value() string {
	return t.value
}

func (t *Text) String() string {
	return `"` + t.value + `"`
}

// Symbol represents a quoted symbol value: non-empty printable ASCII
// excluding the single quote, canonicalized to uppercase.
type Symbol struct {
	value string
}

// NewSymbol creates a Symbol value.
func NewSymbol(value string) (*Symbol, error) {
	if !scanner.IsSymbolValue(value) {
		return nil, validationErrorf("invalid symbol value %q", value)
	}
	return &Symbol{value: strings.ToUpper(value)}, nil
}

// Value returns the canonical uppercase symbol content.
func (s *Symbol) Value() string {
	return s.value
}

func (s *Symbol) String() string {
	return "'" + s.value + "'"
}

// Identifier represents an identifier used as a value: an unquoted,
// non-reserved name, canonicalized to uppercase.
type Identifier struct {
	value string
}

// NewIdentifier creates an Identifier value.
func NewIdentifier(value string) (*Identifier, error) {
	if !scanner.IsIdentifier(value) || scanner.IsReserved(value) {
		return nil, validationErrorf("invalid identifier value %q", value)
	}
	return &Identifier{value: strings.ToUpper(value)}, nil
}

// Value returns the canonical uppercase identifier.
func (i *Identifier) Value() string {
	return i.value
}

func (i *Identifier) String() string {
	return i.value
}
