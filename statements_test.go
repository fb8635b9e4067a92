package pds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelLookup(t *testing.T) {
	label, err := NewLabel()
	require.NoError(t, err)

	require.NoError(t, label.Set("inserted_attr", NewInteger(1, nil)))

	// Lookup is case-insensitive and identifiers canonicalize to
	// uppercase.
	stmt, ok := label.Find("InSeRtEd_AtTr")
	require.True(t, ok)
	assert.Equal(t, "INSERTED_ATTR", stmt.Identifier())
	assert.True(t, label.Contains("inserted_ATTR"))
	assert.False(t, label.Contains("missing"))

	_, ok = label.Find("missing")
	assert.False(t, ok)
}

func TestLabelSetReplacesInPlace(t *testing.T) {
	label, err := NewLabel()
	require.NoError(t, err)
	require.NoError(t, label.Set("A", NewInteger(1, nil)))
	require.NoError(t, label.Set("B", NewInteger(2, nil)))
	require.NoError(t, label.Set("C", NewInteger(3, nil)))

	require.NoError(t, label.Set("b", NewInteger(9, nil)))
	assert.Equal(t, 3, label.Len(), "replacing keeps the length")

	stmt, err := label.Get(1)
	require.NoError(t, err)
	attr, ok := stmt.(*Attribute)
	require.True(t, ok)
	assert.Equal(t, "B", attr.Identifier(), "replacing keeps the position")
	assert.Equal(t, "9", attr.Value().String())

	require.NoError(t, label.Set("D", NewInteger(4, nil)))
	assert.Equal(t, 4, label.Len(), "a new identifier appends")

	require.NoError(t, label.Delete("a"))
	assert.Equal(t, 3, label.Len())
	assert.ErrorAs(t, label.Delete("a"), new(*ValidationError))
}

func TestLabelIndexing(t *testing.T) {
	a, err := NewAttribute("A", NewInteger(1, nil))
	require.NoError(t, err)
	b, err := NewAttribute("B", NewInteger(2, nil))
	require.NoError(t, err)

	label, err := NewLabel(a, b)
	require.NoError(t, err)

	stmt, err := label.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, "B", stmt.Identifier())

	_, err = label.Get(2)
	assert.ErrorAs(t, err, new(*ValidationError))
	_, err = label.Get(-3)
	assert.Error(t, err)

	c, err := NewAttribute("C", NewInteger(3, nil))
	require.NoError(t, err)
	require.NoError(t, label.Insert(100, c), "out-of-range insert clamps")
	stmt, err = label.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "C", stmt.Identifier())

	stmt, err = label.Pop(0)
	require.NoError(t, err)
	assert.Equal(t, "A", stmt.Identifier())
	assert.Equal(t, 2, label.Len())
}

func TestLabelDuplicateIdentifiers(t *testing.T) {
	a1, err := NewAttribute("A", NewInteger(1, nil))
	require.NoError(t, err)
	a2, err := NewAttribute("A", NewInteger(2, nil))
	require.NoError(t, err)

	label, err := NewLabel(a1, a2)
	require.NoError(t, err, "duplicates are permitted in storage")

	stmt, ok := label.Find("A")
	require.True(t, ok)
	assert.Same(t, Statement(a1), stmt, "lookup resolves to the first match")
}

func TestLabelIteration(t *testing.T) {
	a, err := NewAttribute("A", NewInteger(1, nil))
	require.NoError(t, err)
	b, err := NewAttribute("B", NewInteger(2, nil))
	require.NoError(t, err)

	label, err := NewLabel(a, b)
	require.NoError(t, err)

	var forward, backward []string
	for stmt := range label.All() {
		forward = append(forward, stmt.Identifier())
	}
	for stmt := range label.Backward() {
		backward = append(backward, stmt.Identifier())
	}
	assert.Equal(t, []string{"A", "B"}, forward)
	assert.Equal(t, []string{"B", "A"}, backward)
}

func TestGroupStatementsRejectBlocks(t *testing.T) {
	inner, err := NewGroupStatements()
	require.NoError(t, err)
	nested, err := NewGroup("INNER", inner)
	require.NoError(t, err)

	gs, err := NewGroupStatements()
	require.NoError(t, err)
	err = gs.Append(nested)
	require.ErrorAs(t, err, new(*ValidationError))
	assert.ErrorContains(t, err, "group cannot contain a group statement")

	os, err := NewObjectStatements()
	require.NoError(t, err)
	assert.NoError(t, os.Append(nested), "objects admit nested blocks")
}

func TestNewAttribute(t *testing.T) {
	tests := []struct {
		identifier string
		valid      bool
	}{
		{"TARGET_NAME", true},
		{"target_name", true},
		{"^IMAGE", true},
		{"SPACECRAFT:ID", true},
		{"^ns:PTR", true},
		{"END", false},
		{"^GROUP", false},
		{"END:A", false},
		{"A:B:C", false},
		{"1BAD", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := NewAttribute(tt.identifier, NewInteger(1, nil))
		if tt.valid {
			assert.NoError(t, err, tt.identifier)
		} else {
			assert.ErrorAs(t, err, new(*ValidationError), tt.identifier)
		}
	}

	attr, err := NewAttribute("^ns:ptr", NewInteger(1, nil))
	require.NoError(t, err)
	assert.Equal(t, "^NS:PTR", attr.Identifier())

	require.NoError(t, attr.SetValue(NewInteger(2, nil)))
	assert.Equal(t, "2", attr.Value().String())
	assert.Error(t, attr.SetValue(nil))
}

func TestNewGroupIdentifiers(t *testing.T) {
	gs, err := NewGroupStatements()
	require.NoError(t, err)

	_, err = NewGroup("shutter_times", gs)
	assert.NoError(t, err)
	_, err = NewGroup("ns:name", gs)
	assert.Error(t, err, "block names take no namespace")
	_, err = NewGroup("^ptr", gs)
	assert.Error(t, err, "block names take no pointer marker")
	_, err = NewGroup("object", gs)
	assert.Error(t, err)
}
