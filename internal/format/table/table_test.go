package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPadsColumns(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"KIND", "NAME", "COUNT"},
		{"mode", "mips_assembler", "1"},
		{"theme", "github", "12"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	assert.Equal(t, []string{
		"KIND   NAME            COUNT",
		"mode   mips_assembler      1",
		"theme  github             12",
	}, got)
}

func TestFormatUsesDisplayWidth(t *testing.T) {
	t.Parallel()

	got := Format([][]string{{"界", "x"}, {"ab", "y"}, {"abc", "z"}}, nil)
	assert.Equal(t, []string{"界   x", "ab   y", "abc  z"}, got)
}

func TestFormatEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Format(nil, nil))
}

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, [][]string{{"a", "b"}, {"cc", ""}}, nil))
	assert.Equal(t, "a   b\ncc\n", buf.String())
}
