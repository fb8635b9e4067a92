package pds

import (
	"iter"
	"strings"
)

// Set represents an unordered collection of unique Integer and Symbol
// values. Membership is by value: two Integers with the same value and
// units are the same member. Rendering uses insertion order, which
// keeps serialization deterministic.
type Set struct {
	values []Scalar
	keys   map[string]int
}

// NewSet creates a Set from values, which must be Integer or Symbol.
// Duplicates collapse onto the first occurrence.
func NewSet(values ...Scalar) (*Set, error) {
	s := &Set{keys: make(map[string]int)}
	for _, v := range values {
		if err := s.Add(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add inserts v into the set. Adding an existing member is a no-op.
func (s *Set) Add(v Scalar) error {
	key, err := setKey(v)
	if err != nil {
		return err
	}
	if _, ok := s.keys[key]; ok {
		return nil
	}
	s.keys[key] = len(s.values)
	s.values = append(s.values, v)
	return nil
}

// Discard removes v from the set, reporting whether it was a member.
func (s *Set) Discard(v Scalar) bool {
	key, err := setKey(v)
	if err != nil {
		return false
	}
	i, ok := s.keys[key]
	if !ok {
		return false
	}
	s.values = append(s.values[:i], s.values[i+1:]...)
	delete(s.keys, key)
	for k, j := range s.keys {
		if j > i {
			s.keys[k] = j - 1
		}
	}
	return true
}

// Contains reports whether v is a member of the set.
func (s *Set) Contains(v Scalar) bool {
	key, err := setKey(v)
	if err != nil {
		return false
	}
	_, ok := s.keys[key]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.values)
}

// All returns an iterator over the members in insertion order. The set
// must not be mutated during iteration.
func (s *Set) All() iter.Seq[Scalar] {
	return func(yield func(Scalar) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range s.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// setKey maps a set member to its identity. Only Integer and Symbol are
// allowed in sets.
func setKey(v Scalar) (string, error) {
	switch v := v.(type) {
	case *Integer:
		return "i:" + v.String(), nil
	case *Symbol:
		return "s:" + v.Value(), nil
	case nil:
		return "", validationErrorf("set value must not be nil")
	}
	return "", validationErrorf("set value must be an integer or symbol, not %s", valueKind(v))
}

// Sequence1D represents an ordered sequence of scalar values. It may be
// empty in memory, but rendering an empty sequence is a serialization
// error.
type Sequence1D struct {
	values []Scalar
}

// NewSequence1D creates a Sequence1D from values.
func NewSequence1D(values ...Scalar) (*Sequence1D, error) {
	s := &Sequence1D{}
	for _, v := range values {
		if err := s.Append(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of values.
func (s *Sequence1D) Len() int {
	return len(s.values)
}

// Get returns the value at index, which may be negative to count from
// the end.
func (s *Sequence1D) Get(index int) (Scalar, error) {
	i, err := resolveIndex(index, len(s.values))
	if err != nil {
		return nil, err
	}
	return s.values[i], nil
}

// Set replaces the value at index.
func (s *Sequence1D) Set(index int, v Scalar) error {
	i, err := resolveIndex(index, len(s.values))
	if err != nil {
		return err
	}
	if v == nil {
		return validationErrorf("sequence value must not be nil")
	}
	s.values[i] = v
	return nil
}

// Insert inserts v at index. Out-of-range indices clamp to the ends.
func (s *Sequence1D) Insert(index int, v Scalar) error {
	if v == nil {
		return validationErrorf("sequence value must not be nil")
	}
	i := clampIndex(index, len(s.values))
	s.values = append(s.values, nil)
	copy(s.values[i+1:], s.values[i:])
	s.values[i] = v
	return nil
}

// Append adds v to the end of the sequence.
func (s *Sequence1D) Append(v Scalar) error {
	return s.Insert(len(s.values), v)
}

// Pop removes and returns the value at index.
func (s *Sequence1D) Pop(index int) (Scalar, error) {
	i, err := resolveIndex(index, len(s.values))
	if err != nil {
		return nil, err
	}
	v := s.values[i]
	s.values = append(s.values[:i], s.values[i+1:]...)
	return v, nil
}

// All returns an iterator over the values in order. The sequence must
// not be mutated during iteration.
func (s *Sequence1D) All() iter.Seq[Scalar] {
	return func(yield func(Scalar) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Sequence1D) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range s.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Sequence2D represents an ordered sequence of Sequence1D rows. Rows do
// not nest any further.
type Sequence2D struct {
	rows []*Sequence1D
}

// NewSequence2D creates a Sequence2D from rows.
func NewSequence2D(rows ...*Sequence1D) (*Sequence2D, error) {
	s := &Sequence2D{}
	for _, r := range rows {
		if err := s.Append(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of rows.
func (s *Sequence2D) Len() int {
	return len(s.rows)
}

// Get returns the row at index, which may be negative to count from the
// end.
func (s *Sequence2D) Get(index int) (*Sequence1D, error) {
	i, err := resolveIndex(index, len(s.rows))
	if err != nil {
		return nil, err
	}
	return s.rows[i], nil
}

// Insert inserts row at index. Out-of-range indices clamp to the ends.
func (s *Sequence2D) Insert(index int, row *Sequence1D) error {
	if row == nil {
		return validationErrorf("sequence row must not be nil")
	}
	i := clampIndex(index, len(s.rows))
	s.rows = append(s.rows, nil)
	copy(s.rows[i+1:], s.rows[i:])
	s.rows[i] = row
	return nil
}

// Append adds row to the end of the sequence.
func (s *Sequence2D) Append(row *Sequence1D) error {
	return s.Insert(len(s.rows), row)
}

// Pop removes and returns the row at index.
func (s *Sequence2D) Pop(index int) (*Sequence1D, error) {
	i, err := resolveIndex(index, len(s.rows))
	if err != nil {
		return nil, err
	}
	r := s.rows[i]
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return r, nil
}

// All returns an iterator over the rows in order. The sequence must not
// be mutated during iteration.
func (s *Sequence2D) All() iter.Seq[*Sequence1D] {
	return func(yield func(*Sequence1D) bool) {
		for _, r := range s.rows {
			if !yield(r) {
				return
			}
		}
	}
}

func (s *Sequence2D) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, r := range s.rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// valueKind names a value variant for error messages.
func valueKind(v Value) string {
	switch v.(type) {
	case *Integer:
		return "integer"
	case *BasedInteger:
		return "based integer"
	case *Real:
		return "real"
	case *Date:
		return "date"
	case *Time:
		return "time"
	case *DateTime:
		return "date-time"
	case *Text:
		return "text"
	case *Symbol:
		return "symbol"
	case *Identifier:
		return "identifier"
	case *Set:
		return "set"
	case *Sequence1D:
		return "sequence"
	case *Sequence2D:
		return "sequence"
	}
	return "unknown"
}

// resolveIndex normalizes a possibly negative index and rejects
// out-of-range values.
func resolveIndex(index, length int) (int, error) {
	i := index
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, validationErrorf("index %d out of range", index)
	}
	return i, nil
}

// clampIndex normalizes a possibly negative index, clamping
// out-of-range values to the nearest end.
func clampIndex(index, length int) int {
	i := index
	if i < 0 {
		i += length
		if i < 0 {
			i = 0
		}
	}
	if i > length {
		i = length
	}
	return i
}
