package pds

import (
	"strings"

	"github.com/KimNorgaard/go-pds/internal/scanner"
)

// Units represents a units expression attached to a numeric value, e.g.
// <KM/S> or <M**2>. The expression is canonicalized to uppercase.
type Units struct {
	expression string
}

// NewUnits creates a Units value from expression. The expression must be
// one or more unit identifiers, each optionally raised to a signed
// integer power with '**', joined by '*' or '/'.
func NewUnits(expression string) (*Units, error) {
	if !scanner.IsUnitsExpression(expression) {
		return nil, validationErrorf("invalid units expression %q", expression)
	}
	return &Units{expression: strings.ToUpper(expression)}, nil
}

// Expression returns the canonical uppercase units expression.
func (u *Units) Expression() string {
	return u.expression
}

// Equal reports whether u and other denote the same units expression.
// Two nil units are equal.
func (u *Units) Equal(other *Units) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.expression == other.expression
}

func (u *Units) String() string {
	return "<" + u.expression + ">"
}
