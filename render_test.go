package pds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildImageLabel(t *testing.T) *Label {
	t.Helper()

	version, err := NewIdentifier("PDS3")
	require.NoError(t, err)

	first, err := NewAttribute("FIRST", NewInteger(1, nil))
	require.NoError(t, err)
	gs, err := NewGroupStatements(first)
	require.NoError(t, err)
	window, err := NewGroup("WINDOW", gs)
	require.NoError(t, err)

	lines, err := NewAttribute("LINES", NewInteger(1024, nil))
	require.NoError(t, err)
	os, err := NewObjectStatements(lines, window)
	require.NoError(t, err)
	image, err := NewObject("IMAGE", os)
	require.NoError(t, err)

	label, err := NewLabel()
	require.NoError(t, err)
	require.NoError(t, label.Set("PDS_VERSION_ID", version))
	require.NoError(t, label.Set("RECORD_BYTES", NewInteger(2880, nil)))
	require.NoError(t, label.Append(image))
	return label
}

func TestRender(t *testing.T) {
	label := buildImageLabel(t)

	expected := "PDS_VERSION_ID = PDS3\r\n" +
		"RECORD_BYTES   = 2880\r\n" +
		"OBJECT         = IMAGE\r\n" +
		" LINES     = 1024\r\n" +
		" GROUP     = WINDOW\r\n" +
		"  FIRST = 1\r\n" +
		" END_GROUP = WINDOW\r\n" +
		"END_OBJECT     = IMAGE\r\n" +
		"END\r\n"

	out, err := label.Render()
	require.NoError(t, err)
	assert.Equal(t, expected, string(out))
}

func TestRenderOptions(t *testing.T) {
	label, err := NewLabel()
	require.NoError(t, err)
	require.NoError(t, label.Set("A", NewInteger(1, nil)))
	require.NoError(t, label.Set("LONGER", NewInteger(2, nil)))

	out, err := label.Render(WithLineEnding("\n"))
	require.NoError(t, err)
	assert.Equal(t, "A      = 1\nLONGER = 2\nEND\n", string(out))

	out, err = label.Render(WithoutAlignment(), WithLineEnding("\n"))
	require.NoError(t, err)
	assert.Equal(t, "A = 1\nLONGER = 2\nEND\n", string(out))

	_, err = label.Render(WithLineEnding("\r"))
	assert.Error(t, err)
}

func TestRenderEmptyLabel(t *testing.T) {
	label, err := NewLabel()
	require.NoError(t, err)
	out, err := label.Render()
	require.NoError(t, err)
	assert.Equal(t, "END\r\n", string(out))
}

func TestRenderEmptySequence(t *testing.T) {
	empty, err := NewSequence1D()
	require.NoError(t, err)

	label, err := NewLabel()
	require.NoError(t, err)
	require.NoError(t, label.Set("A", empty))

	_, err = label.Render()
	var serr *SerializationError
	require.ErrorAs(t, err, &serr, "the grammar has no empty sequence notation")

	// An empty row inside a 2-D sequence is just as unrenderable.
	row, err := NewSequence1D(NewInteger(1, nil))
	require.NoError(t, err)
	emptyRow, err := NewSequence1D()
	require.NoError(t, err)
	matrix, err := NewSequence2D(row, emptyRow)
	require.NoError(t, err)
	require.NoError(t, label.Set("A", matrix))

	_, err = label.Render()
	assert.ErrorAs(t, err, &serr)

	// String stays total regardless.
	assert.Contains(t, label.String(), "A = ((1), ())")
}

func TestStatementString(t *testing.T) {
	label := buildImageLabel(t)

	stmt, ok := label.Find("IMAGE")
	require.True(t, ok)
	expected := "OBJECT     = IMAGE\r\n" +
		" LINES     = 1024\r\n" +
		" GROUP     = WINDOW\r\n" +
		"  FIRST = 1\r\n" +
		" END_GROUP = WINDOW\r\n" +
		"END_OBJECT = IMAGE"
	assert.Equal(t, expected, stmt.String())

	attr, err := NewAttribute("A", NewInteger(1, nil))
	require.NoError(t, err)
	assert.Equal(t, "A = 1", attr.String())
}
