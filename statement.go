package pds

import (
	"strings"

	"github.com/KimNorgaard/go-pds/internal/scanner"
)

// Statement is the interface implemented by the three statement
// variants: Attribute, Group and Object. Every statement carries an
// uppercase identifier.
type Statement interface {
	Identifier() string
	String() string
	statement()
}

func (*Attribute) statement() {}
func (*Group) statement()     {}
func (*Object) statement()    {}

// Attribute represents an identifier/value assignment statement.
type Attribute struct {
	identifier string
	value      Value
}

// NewAttribute creates an Attribute. The identifier may carry a leading
// '^' pointer marker and/or a 'namespace:' prefix; each name part must
// be a non-reserved identifier.
func NewAttribute(identifier string, value Value) (*Attribute, error) {
	if !isAttributeIdentifier(identifier) {
		return nil, validationErrorf("invalid attribute identifier %q", identifier)
	}
	if value == nil {
		return nil, validationErrorf("attribute value must not be nil")
	}
	return &Attribute{identifier: strings.ToUpper(identifier), value: value}, nil
}

// Identifier returns the canonical uppercase identifier.
func (a *Attribute) Identifier() string {
	return a.identifier
}

// Value returns the attribute's value.
func (a *Attribute) Value() Value {
	return a.value
}

// SetValue replaces the attribute's value.
func (a *Attribute) SetValue(value Value) error {
	if value == nil {
		return validationErrorf("attribute value must not be nil")
	}
	a.value = value
	return nil
}

func (a *Attribute) String() string {
	return a.identifier + " = " + a.value.String()
}

// Group represents a named block restricted to attribute statements.
type Group struct {
	identifier string
	statements *GroupStatements
}

// NewGroup creates a Group named identifier around statements.
func NewGroup(identifier string, statements *GroupStatements) (*Group, error) {
	if !isBlockIdentifier(identifier) {
		return nil, validationErrorf("invalid group identifier %q", identifier)
	}
	if statements == nil {
		return nil, validationErrorf("group statements must not be nil")
	}
	return &Group{identifier: strings.ToUpper(identifier), statements: statements}, nil
}

// Identifier returns the canonical uppercase identifier.
func (g *Group) Identifier() string {
	return g.identifier
}

// Statements returns the group's nested statements.
func (g *Group) Statements() *GroupStatements {
	return g.statements
}

func (g *Group) String() string {
	return renderStatementString(g)
}

// Object represents a named block that may contain attributes, groups
// and nested objects to any depth.
type Object struct {
	identifier string
	statements *ObjectStatements
}

// NewObject creates an Object named identifier around statements.
func NewObject(identifier string, statements *ObjectStatements) (*Object, error) {
	if !isBlockIdentifier(identifier) {
		return nil, validationErrorf("invalid object identifier %q", identifier)
	}
	if statements == nil {
		return nil, validationErrorf("object statements must not be nil")
	}
	return &Object{identifier: strings.ToUpper(identifier), statements: statements}, nil
}

// Identifier returns the canonical uppercase identifier.
func (o *Object) Identifier() string {
	return o.identifier
}

// Statements returns the object's nested statements.
func (o *Object) Statements() *ObjectStatements {
	return o.statements
}

func (o *Object) String() string {
	return renderStatementString(o)
}

// statementKind names a statement variant for error messages.
func statementKind(s Statement) string {
	switch s.(type) {
	case *Attribute:
		return "attribute"
	case *Group:
		return "group"
	case *Object:
		return "object"
	}
	return "unknown"
}

// isBlockIdentifier accepts a plain, non-reserved identifier, as
// required for group and object names.
func isBlockIdentifier(s string) bool {
	return scanner.IsIdentifier(s) && !scanner.IsReserved(s)
}

// isAttributeIdentifier additionally accepts a leading '^' pointer
// marker and a single 'namespace:' prefix.
func isAttributeIdentifier(s string) bool {
	s, _ = strings.CutPrefix(s, "^")
	if ns, name, ok := strings.Cut(s, ":"); ok {
		return isBlockIdentifier(ns) && isBlockIdentifier(name)
	}
	return isBlockIdentifier(s)
}
