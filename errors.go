package pds

import "fmt"

// ParseErrorKind classifies the structural mismatch behind a ParseError.
type ParseErrorKind int

const (
	// KindUnexpectedEnd means the input ended before the label did.
	KindUnexpectedEnd ParseErrorKind = iota
	// KindExpectedToken means a required token (such as '=') is missing.
	KindExpectedToken
	// KindMalformedLiteral means a value literal failed its sub-grammar,
	// e.g. an invalid digit for a radix or an out-of-range date.
	KindMalformedLiteral
	// KindMismatchedTerminator means a block closer names a different
	// identifier than its opener.
	KindMismatchedTerminator
)

func (k ParseErrorKind) String() string {
	switch k {
	case KindUnexpectedEnd:
		return "unexpected end of input"
	case KindExpectedToken:
		return "expected token missing"
	case KindMalformedLiteral:
		return "malformed literal"
	case KindMismatchedTerminator:
		return "mismatched block terminator"
	}
	return "unknown"
}

// A ParseError reports why a label failed to parse. It carries the
// offending lexeme and its byte offset in the input. Parsing aborts on
// the first error; there is no partial result.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
	Token   string
	Offset  int
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("pds: %s near %q at offset %d", e.Message, e.Token, e.Offset)
	}
	return fmt.Sprintf("pds: %s at offset %d", e.Message, e.Offset)
}

// A ValidationError reports a value, identifier or statement that does
// not meet its syntactic constraints, or a statement kind that is not
// allowed in its container. It is returned by constructors and container
// operations; a tree that exists in memory is valid by construction.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "pds: " + e.Message
}

// A SerializationError reports a tree that cannot be rendered. The only
// stateful invariant the serializer guards is that sequences are
// non-empty; everything else is valid by construction.
type SerializationError struct {
	Message string
}

func (e *SerializationError) Error() string {
	return "pds: " + e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
