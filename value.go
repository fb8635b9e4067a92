package pds

// Value is the interface implemented by every PDS value variant. The
// set of variants is closed: Integer, BasedInteger, Real, Date, Time,
// DateTime, Text, Symbol, Identifier, Set, Sequence1D and Sequence2D.
//
// String returns the canonical textual rendering of the value. For
// sequences it renders empty parentheses when the sequence is empty;
// only Render enforces the non-empty invariant.
type Value interface {
	String() string
	isValue()
}

// Scalar is the interface implemented by the non-composite value
// variants: numeric, temporal, textual, symbolic and identifier values.
type Scalar interface {
	Value
	scalar()
}

func (*Integer) isValue()      {}
func (*BasedInteger) isValue() {}
func (*Real) isValue()         {}
func (*Date) isValue()         {}
func (*Time) isValue()         {}
func (*DateTime) isValue()     {}
func (*Text) isValue()         {}
func (*Symbol) isValue()       {}
func (*Identifier) isValue()   {}
func (*Set) isValue()          {}
func (*Sequence1D) isValue()   {}
func (*Sequence2D) isValue()   {}

func (*Integer) scalar()      {}
func (*BasedInteger) scalar() {}
func (*Real) scalar()         {}
func (*Date) scalar()         {}
func (*Time) scalar()         {}
func (*DateTime) scalar()     {}
func (*Text) scalar()         {}
func (*Symbol) scalar()       {}
func (*Identifier) scalar()   {}
