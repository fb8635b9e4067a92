package pds

import (
	"iter"
	"strings"
)

// statements is the ordered container core shared by Label,
// GroupStatements and ObjectStatements. The three differ only in which
// statement kinds they admit, expressed by the allow predicate.
//
// Statements are kept in insertion order. Identifier lookup is
// case-insensitive and resolves to the first match from index 0;
// duplicate identifiers are permitted in storage.
type statements struct {
	items []Statement
	allow func(Statement) error
}

// Len returns the number of statements.
func (s *statements) Len() int {
	return len(s.items)
}

// Get returns the statement at index, which may be negative to count
// from the end.
func (s *statements) Get(index int) (Statement, error) {
	i, err := resolveIndex(index, len(s.items))
	if err != nil {
		return nil, err
	}
	return s.items[i], nil
}

// Insert inserts stmt at index. Out-of-range indices clamp to the ends.
func (s *statements) Insert(index int, stmt Statement) error {
	if err := s.allow(stmt); err != nil {
		return err
	}
	i := clampIndex(index, len(s.items))
	s.items = append(s.items, nil)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = stmt
	return nil
}

// Append adds stmt to the end of the container.
func (s *statements) Append(stmt Statement) error {
	return s.Insert(len(s.items), stmt)
}

// Replace sets the statement at index, which may be negative to count
// from the end.
func (s *statements) Replace(index int, stmt Statement) error {
	if err := s.allow(stmt); err != nil {
		return err
	}
	i, err := resolveIndex(index, len(s.items))
	if err != nil {
		return err
	}
	s.items[i] = stmt
	return nil
}

// Pop removes and returns the statement at index, which may be negative
// to count from the end.
func (s *statements) Pop(index int) (Statement, error) {
	i, err := resolveIndex(index, len(s.items))
	if err != nil {
		return nil, err
	}
	stmt := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return stmt, nil
}

// Find returns the first statement whose identifier matches name
// case-insensitively.
func (s *statements) Find(name string) (Statement, bool) {
	if i := s.index(name); i >= 0 {
		return s.items[i], true
	}
	return nil, false
}

// Contains reports whether a statement with the given identifier
// exists.
func (s *statements) Contains(name string) bool {
	return s.index(name) >= 0
}

// Set assigns value under name. When a statement with a matching
// identifier exists it is replaced in place by a new attribute, keeping
// its position; otherwise a new attribute is appended.
func (s *statements) Set(name string, value Value) error {
	stmt, err := NewAttribute(name, value)
	if err != nil {
		return err
	}
	if err := s.allow(stmt); err != nil {
		return err
	}
	if i := s.index(name); i >= 0 {
		s.items[i] = stmt
		return nil
	}
	s.items = append(s.items, stmt)
	return nil
}

// Delete removes the first statement whose identifier matches name.
func (s *statements) Delete(name string) error {
	i := s.index(name)
	if i < 0 {
		return validationErrorf("no statement with identifier %q", name)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// All returns an iterator over the statements in order. Each call
// starts fresh from the container's current state; the container must
// not be mutated during iteration.
func (s *statements) All() iter.Seq[Statement] {
	return func(yield func(Statement) bool) {
		for _, stmt := range s.items {
			if !yield(stmt) {
				return
			}
		}
	}
}

// Backward returns an iterator over the statements in reverse order,
// under the same rules as All.
func (s *statements) Backward() iter.Seq[Statement] {
	return func(yield func(Statement) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

func (s *statements) index(name string) int {
	canon := strings.ToUpper(name)
	for i, stmt := range s.items {
		if stmt.Identifier() == canon {
			return i
		}
	}
	return -1
}

func (s *statements) init(allow func(Statement) error, stmts []Statement) error {
	s.allow = allow
	for _, stmt := range stmts {
		if err := s.Append(stmt); err != nil {
			return err
		}
	}
	return nil
}

// allowAny admits the three concrete statement kinds.
func allowAny(stmt Statement) error {
	switch stmt.(type) {
	case *Attribute, *Group, *Object:
		return nil
	case nil:
		return validationErrorf("statement must not be nil")
	}
	return validationErrorf("unsupported statement kind %s", statementKind(stmt))
}

// allowAttributes admits attribute statements only.
func allowAttributes(stmt Statement) error {
	switch stmt.(type) {
	case *Attribute:
		return nil
	case nil:
		return validationErrorf("statement must not be nil")
	}
	return validationErrorf("group cannot contain a %s statement", statementKind(stmt))
}

// Label is the top-level document: an ordered sequence of statements,
// serialized with a terminal END line.
type Label struct {
	statements
}

// NewLabel creates a Label holding the given statements.
func NewLabel(stmts ...Statement) (*Label, error) {
	l := &Label{}
	if err := l.init(allowAny, stmts); err != nil {
		return nil, err
	}
	return l, nil
}

// String renders the label without enforcing the non-empty sequence
// invariant; use Render for strict serialization.
func (l *Label) String() string {
	return renderLabelString(l)
}

// GroupStatements is the statement container of a Group. It admits
// attribute statements only.
type GroupStatements struct {
	statements
}

// NewGroupStatements creates a GroupStatements holding the given
// statements.
func NewGroupStatements(stmts ...Statement) (*GroupStatements, error) {
	g := &GroupStatements{}
	if err := g.init(allowAttributes, stmts); err != nil {
		return nil, err
	}
	return g, nil
}

// ObjectStatements is the statement container of an Object. It admits
// attributes, groups and nested objects.
type ObjectStatements struct {
	statements
}

// NewObjectStatements creates an ObjectStatements holding the given
// statements.
func NewObjectStatements(stmts ...Statement) (*ObjectStatements, error) {
	o := &ObjectStatements{}
	if err := o.init(allowAny, stmts); err != nil {
		return nil, err
	}
	return o, nil
}
