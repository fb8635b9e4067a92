package pds

// The document tree is exclusively owned: containers own their
// statements, attributes own their values. Clone is how a caller gets
// an independent copy instead of an alias. Scalar values are immutable
// and shared between clones; only the mutable composites are copied.

// Clone returns a deep copy of the label.
func (l *Label) Clone() *Label {
	return &Label{statements: l.statements.clone()}
}

// Clone returns a deep copy of the container.
func (g *GroupStatements) Clone() *GroupStatements {
	return &GroupStatements{statements: g.statements.clone()}
}

// Clone returns a deep copy of the container.
func (o *ObjectStatements) Clone() *ObjectStatements {
	return &ObjectStatements{statements: o.statements.clone()}
}

// Clone returns a copy of the attribute. The value is shared when it is
// a scalar and copied when it is a set or sequence.
func (a *Attribute) Clone() *Attribute {
	return &Attribute{identifier: a.identifier, value: cloneValue(a.value)}
}

// Clone returns a deep copy of the group.
func (g *Group) Clone() *Group {
	return &Group{identifier: g.identifier, statements: g.statements.Clone()}
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	return &Object{identifier: o.identifier, statements: o.statements.Clone()}
}

// Clone returns a copy of the set. Members are shared; they are
// immutable.
func (s *Set) Clone() *Set {
	c := &Set{values: append([]Scalar(nil), s.values...), keys: make(map[string]int, len(s.keys))}
	for k, v := range s.keys {
		c.keys[k] = v
	}
	return c
}

// Clone returns a copy of the sequence.
func (s *Sequence1D) Clone() *Sequence1D {
	return &Sequence1D{values: append([]Scalar(nil), s.values...)}
}

// Clone returns a deep copy of the sequence, including its rows.
func (s *Sequence2D) Clone() *Sequence2D {
	c := &Sequence2D{rows: make([]*Sequence1D, len(s.rows))}
	for i, row := range s.rows {
		c.rows[i] = row.Clone()
	}
	return c
}

func (s *statements) clone() statements {
	c := statements{allow: s.allow, items: make([]Statement, len(s.items))}
	for i, stmt := range s.items {
		c.items[i] = cloneStatement(stmt)
	}
	return c
}

func cloneStatement(stmt Statement) Statement {
	switch stmt := stmt.(type) {
	case *Attribute:
		return stmt.Clone()
	case *Group:
		return stmt.Clone()
	case *Object:
		return stmt.Clone()
	}
	return stmt
}

func cloneValue(v Value) Value {
	switch v := v.(type) {
	case *Set:
		return v.Clone()
	case *Sequence1D:
		return v.Clone()
	case *Sequence2D:
		return v.Clone()
	}
	return v
}
