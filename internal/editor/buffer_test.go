package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBufferStartsAtOrigin(t *testing.T) {
	t.Parallel()

	b := NewBuffer("one\ntwo")
	assert.Equal(t, Pos{}, b.Cursor())
	assert.Equal(t, 2, b.LineCount())
	assert.Equal(t, "two", b.Line(1))
	assert.Equal(t, "", b.Line(5))
	assert.Equal(t, "one\ntwo", b.Text())
}

func TestSetTextNormalisesLineEndingsAndMovesToEnd(t *testing.T) {
	t.Parallel()

	b := NewBuffer("")
	before := b.Version()
	b.SetText("a\r\nbc")
	assert.Equal(t, "a\nbc", b.Text())
	assert.Equal(t, Pos{Row: 1, Col: 2}, b.Cursor())
	assert.Greater(t, b.Version(), before)

	b.SetText("")
	assert.Equal(t, "", b.Text())
	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, Pos{}, b.Cursor())
}

func TestInsertSplitsOnNewlines(t *testing.T) {
	t.Parallel()

	b := NewBuffer("lis $3")
	b.SetCursor(Pos{Row: 0, Col: 3})
	b.Insert("X")
	assert.Equal(t, "lisX $3", b.Text())
	assert.Equal(t, Pos{Row: 0, Col: 4}, b.Cursor())

	b.Insert("1\n2\r\n3")
	assert.Equal(t, "lisX1\n2\n3 $3", b.Text())
	assert.Equal(t, Pos{Row: 2, Col: 1}, b.Cursor())

	v := b.Version()
	b.Insert("")
	assert.Equal(t, v, b.Version())
}

func TestNewlineBackspaceAndDeleteJoinLines(t *testing.T) {
	t.Parallel()

	b := NewBuffer("abcd")
	b.SetCursor(Pos{Col: 2})
	b.Newline()
	assert.Equal(t, "ab\ncd", b.Text())
	assert.Equal(t, Pos{Row: 1, Col: 0}, b.Cursor())

	assert.True(t, b.Backspace())
	assert.Equal(t, "abcd", b.Text())
	assert.Equal(t, Pos{Row: 0, Col: 2}, b.Cursor())

	assert.True(t, b.Backspace())
	assert.Equal(t, "acd", b.Text())

	b.SetCursor(Pos{})
	assert.False(t, b.Backspace())

	assert.True(t, b.Delete())
	assert.Equal(t, "cd", b.Text())

	b.SetText("x\ny")
	b.SetCursor(Pos{Row: 0, Col: 1})
	assert.True(t, b.Delete())
	assert.Equal(t, "xy", b.Text())
	b.MoveEnd()
	assert.False(t, b.Delete())
}

func TestCursorMovement(t *testing.T) {
	t.Parallel()

	b := NewBuffer("long line\nab\nanother line")
	b.SetCursor(Pos{Row: 0, Col: 7})

	b.MoveVertical(1)
	assert.Equal(t, Pos{Row: 1, Col: 2}, b.Cursor(), "clamped to the short row")
	b.MoveVertical(1)
	assert.Equal(t, Pos{Row: 2, Col: 7}, b.Cursor(), "preferred column restored")
	b.MoveVertical(10)
	assert.Equal(t, 2, b.Cursor().Row)
	b.MoveVertical(-10)
	assert.Equal(t, 0, b.Cursor().Row)

	b.SetCursor(Pos{Row: 1, Col: 0})
	b.MoveLeft()
	assert.Equal(t, Pos{Row: 0, Col: 9}, b.Cursor())
	b.MoveRight()
	assert.Equal(t, Pos{Row: 1, Col: 0}, b.Cursor())

	b.MoveEnd()
	assert.Equal(t, 2, b.Cursor().Col)
	b.MoveHome()
	assert.Equal(t, 0, b.Cursor().Col)

	b.MoveBottom()
	assert.Equal(t, Pos{Row: 2, Col: 12}, b.Cursor())
	b.MoveRight()
	assert.Equal(t, Pos{Row: 2, Col: 12}, b.Cursor())
	b.MoveTop()
	assert.Equal(t, Pos{}, b.Cursor())
	b.MoveLeft()
	assert.Equal(t, Pos{}, b.Cursor())

	b.SetCursor(Pos{Row: 99, Col: 99})
	assert.Equal(t, Pos{Row: 2, Col: 12}, b.Cursor())
	b.SetCursor(Pos{Row: -1, Col: -1})
	assert.Equal(t, Pos{}, b.Cursor())
}
