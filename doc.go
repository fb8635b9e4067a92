// Package pds reads and writes PDS (Planetary Data System) labels, the
// keyword/value headers attached to planetary science data products.
//
// A label is an ordered sequence of statements terminated by END. Each
// statement either assigns a value to an identifier or opens a named
// GROUP or OBJECT block of nested statements. Parse consumes a label
// from the front of a byte slice and builds a mutable document tree;
// Render serializes a tree back to label text:
//
//	label, err := pds.Parse(data)
//	if err != nil {
//	    return err
//	}
//	if err := label.Set("RECORD_TYPE", recordType); err != nil {
//	    return err
//	}
//	out, err := label.Render()
//
// # Values
//
// The value model mirrors the PDS grammar: Integer (arbitrary
// precision), BasedInteger, Real, Date, Time, DateTime, Text, Symbol
// and Identifier are scalars; Set, Sequence1D and Sequence2D are
// collections of scalars. Numeric values may carry a Units expression.
// Values are validated on construction, so a tree that exists in
// memory always renders to grammatically valid label text, with one
// exception: sequences may be empty in memory but have no rendered
// form, and Render reports a *SerializationError for them.
//
// Identifiers and symbols are canonicalized to uppercase on the way
// in, matching how PDS archive tooling compares them. Statement lookup
// by identifier is case-insensitive.
//
// # Errors
//
// Parse returns *ParseError with a Kind describing the mismatch and
// the byte offset of the offending token. Constructors and container
// operations return *ValidationError. Render returns
// *SerializationError. All three are programmatically inspectable with
// errors.As.
//
// # Output shape
//
// Render emits one statement per line with CRLF line endings, aligns
// the '=' column within each statement list, and indents nested
// statements one space per level. WithLineEnding and WithoutAlignment
// adjust this. Bytes following the END statement in parsed input, such
// as the data product itself, are left untouched.
package pds
