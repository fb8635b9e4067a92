package pds

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	groupKeyWidth  = len("END_GROUP")
	objectKeyWidth = len("END_OBJECT")
)

// renderer holds the serialization policy for one Render call.
type renderer struct {
	lineEnding string
	align      bool
	strict     bool
}

// RenderOption configures serialization.
type RenderOption func(*renderer) error

// WithLineEnding sets the line terminator. Only "\r\n" (the default)
// and "\n" are accepted.
func WithLineEnding(ending string) RenderOption {
	return func(r *renderer) error {
		if ending != "\r\n" && ending != "\n" {
			return fmt.Errorf("pds: invalid line ending %q", ending)
		}
		r.lineEnding = ending
		return nil
	}
}

// WithoutAlignment disables padding identifiers to a common '='
// column.
func WithoutAlignment() RenderOption {
	return func(r *renderer) error {
		r.align = false
		return nil
	}
}

// Render serializes the label. Each statement occupies its own line,
// lines end with CRLF, nested statements are indented one space per
// level, and the '=' signs within a statement list are aligned to a
// common column. The output ends with a terminal END line.
//
// Rendering an empty sequence returns a *SerializationError, since the
// grammar has no notation for one.
func Render(label *Label, opts ...RenderOption) ([]byte, error) {
	r := &renderer{lineEnding: "\r\n", align: true, strict: true}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	var buf bytes.Buffer
	if err := r.renderStatements(&buf, &label.statements, ""); err != nil {
		return nil, err
	}
	buf.WriteString("END")
	buf.WriteString(r.lineEnding)
	return buf.Bytes(), nil
}

// Render serializes the label. See the package-level Render.
func (l *Label) Render(opts ...RenderOption) ([]byte, error) {
	return Render(l, opts...)
}

func (r *renderer) renderStatements(buf *bytes.Buffer, s *statements, indent string) error {
	width := 0
	if r.align {
		for _, stmt := range s.items {
			if w := keyWidth(stmt); w > width {
				width = w
			}
		}
	}
	for _, stmt := range s.items {
		if err := r.renderStatement(buf, stmt, indent, width); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) renderStatement(buf *bytes.Buffer, stmt Statement, indent string, width int) error {
	switch stmt := stmt.(type) {
	case *Attribute:
		value, err := r.renderValue(stmt.value)
		if err != nil {
			return err
		}
		r.line(buf, indent, stmt.identifier, width, value)
	case *Group:
		r.line(buf, indent, "GROUP", width, stmt.identifier)
		if err := r.renderStatements(buf, &stmt.statements.statements, indent+" "); err != nil {
			return err
		}
		r.line(buf, indent, "END_GROUP", width, stmt.identifier)
	case *Object:
		r.line(buf, indent, "OBJECT", width, stmt.identifier)
		if err := r.renderStatements(buf, &stmt.statements.statements, indent+" "); err != nil {
			return err
		}
		r.line(buf, indent, "END_OBJECT", width, stmt.identifier)
	}
	return nil
}

// line writes one "KEY = value" line, padding the key to width.
func (r *renderer) line(buf *bytes.Buffer, indent, key string, width int, value string) {
	buf.WriteString(indent)
	buf.WriteString(key)
	for n := width - len(key); n > 0; n-- {
		buf.WriteByte(' ')
	}
	buf.WriteString(" = ")
	buf.WriteString(value)
	buf.WriteString(r.lineEnding)
}

func (r *renderer) renderValue(v Value) (string, error) {
	if r.strict {
		switch v := v.(type) {
		case *Sequence1D:
			if v.Len() == 0 {
				return "", &SerializationError{Message: "cannot render an empty sequence"}
			}
		case *Sequence2D:
			if v.Len() == 0 {
				return "", &SerializationError{Message: "cannot render an empty sequence"}
			}
			for _, row := range v.rows {
				if row.Len() == 0 {
					return "", &SerializationError{Message: "cannot render an empty sequence"}
				}
			}
		}
	}
	return v.String(), nil
}

// keyWidth is the rendered width of a statement's key: the identifier
// for an attribute, the closing keyword for a block.
func keyWidth(stmt Statement) int {
	switch stmt := stmt.(type) {
	case *Attribute:
		return len(stmt.identifier)
	case *Group:
		return groupKeyWidth
	case *Object:
		return objectKeyWidth
	}
	return 0
}

// renderLabelString backs Label.String. It skips the empty-sequence
// check so that String stays total.
func renderLabelString(l *Label) string {
	r := &renderer{lineEnding: "\r\n", align: true}
	var buf bytes.Buffer
	r.renderStatements(&buf, &l.statements, "")
	buf.WriteString("END")
	return buf.String()
}

// renderStatementString backs Group.String and Object.String.
func renderStatementString(stmt Statement) string {
	r := &renderer{lineEnding: "\r\n", align: true}
	var buf bytes.Buffer
	r.renderStatement(&buf, stmt, "", keyWidth(stmt))
	return strings.TrimSuffix(buf.String(), "\r\n")
}
