package editor

import "strings"

// Pos is a cursor position; Col is a rune index within the row.
type Pos struct {
	Row int
	Col int
}

// Buffer is the editable text: lines of runes plus a cursor. It never
// validates its content against any grammar.
type Buffer struct {
	lines [][]rune
	cur   Pos
	// preferredCol is the column vertical moves try to return to.
	preferredCol int
	version      uint64
}

// NewBuffer returns a buffer holding text with the cursor at the start.
func NewBuffer(text string) *Buffer {
	b := &Buffer{}
	b.SetText(text)
	b.cur = Pos{}
	b.preferredCol = 0
	return b
}

// SetText replaces the content and moves the cursor to the end.
func (b *Buffer) SetText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	b.lines = make([][]rune, len(parts))
	for i, p := range parts {
		b.lines[i] = []rune(p)
	}
	last := len(b.lines) - 1
	b.cur = Pos{Row: last, Col: len(b.lines[last])}
	b.preferredCol = b.cur.Col
	b.version++
}

// Text joins the lines with "\n".
func (b *Buffer) Text() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns row's text, or "" when out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) Cursor() Pos { return b.cur }

// Version increments on every content change.
func (b *Buffer) Version() uint64 { return b.version }

// SetCursor moves the cursor, clamping it into the document.
func (b *Buffer) SetCursor(p Pos) {
	b.cur = b.clamp(p)
	b.preferredCol = b.cur.Col
}

func (b *Buffer) clamp(p Pos) Pos {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= len(b.lines) {
		p.Row = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len(b.lines[p.Row]); p.Col > n {
		p.Col = n
	}
	return p
}

// Insert types s at the cursor; embedded newlines split lines.
func (b *Buffer) Insert(s string) {
	if s == "" {
		return
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for i, chunk := range strings.Split(s, "\n") {
		if i > 0 {
			b.splitLine()
		}
		if chunk == "" {
			continue
		}
		runes := []rune(chunk)
		line := b.lines[b.cur.Row]
		out := make([]rune, 0, len(line)+len(runes))
		out = append(out, line[:b.cur.Col]...)
		out = append(out, runes...)
		out = append(out, line[b.cur.Col:]...)
		b.lines[b.cur.Row] = out
		b.cur.Col += len(runes)
	}
	b.preferredCol = b.cur.Col
	b.version++
}

// Newline splits the current line at the cursor.
func (b *Buffer) Newline() {
	b.splitLine()
	b.preferredCol = 0
	b.version++
}

func (b *Buffer) splitLine() {
	line := b.lines[b.cur.Row]
	head := append([]rune(nil), line[:b.cur.Col]...)
	tail := append([]rune(nil), line[b.cur.Col:]...)
	lines := make([][]rune, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:b.cur.Row]...)
	lines = append(lines, head, tail)
	lines = append(lines, b.lines[b.cur.Row+1:]...)
	b.lines = lines
	b.cur = Pos{Row: b.cur.Row + 1, Col: 0}
}

// Backspace deletes the rune before the cursor, joining with the previous
// line at column 0. It reports whether anything changed.
func (b *Buffer) Backspace() bool {
	if b.cur.Col > 0 {
		line := b.lines[b.cur.Row]
		b.lines[b.cur.Row] = append(line[:b.cur.Col-1:b.cur.Col-1], line[b.cur.Col:]...)
		b.cur.Col--
	} else if b.cur.Row > 0 {
		prev := b.lines[b.cur.Row-1]
		col := len(prev)
		b.lines[b.cur.Row-1] = append(prev[:col:col], b.lines[b.cur.Row]...)
		b.lines = append(b.lines[:b.cur.Row], b.lines[b.cur.Row+1:]...)
		b.cur = Pos{Row: b.cur.Row - 1, Col: col}
	} else {
		return false
	}
	b.preferredCol = b.cur.Col
	b.version++
	return true
}

// Delete removes the rune under the cursor, joining with the next line at
// the end of a line. It reports whether anything changed.
func (b *Buffer) Delete() bool {
	line := b.lines[b.cur.Row]
	if b.cur.Col < len(line) {
		b.lines[b.cur.Row] = append(line[:b.cur.Col:b.cur.Col], line[b.cur.Col+1:]...)
	} else if b.cur.Row < len(b.lines)-1 {
		b.lines[b.cur.Row] = append(line[:len(line):len(line)], b.lines[b.cur.Row+1]...)
		b.lines = append(b.lines[:b.cur.Row+1], b.lines[b.cur.Row+2:]...)
	} else {
		return false
	}
	b.version++
	return true
}

// MoveLeft wraps to the end of the previous line.
func (b *Buffer) MoveLeft() {
	switch {
	case b.cur.Col > 0:
		b.cur.Col--
	case b.cur.Row > 0:
		b.cur.Row--
		b.cur.Col = len(b.lines[b.cur.Row])
	}
	b.preferredCol = b.cur.Col
}

// MoveRight wraps to the start of the next line.
func (b *Buffer) MoveRight() {
	switch {
	case b.cur.Col < len(b.lines[b.cur.Row]):
		b.cur.Col++
	case b.cur.Row < len(b.lines)-1:
		b.cur.Row++
		b.cur.Col = 0
	}
	b.preferredCol = b.cur.Col
}

// MoveVertical moves by delta rows, keeping the preferred column where the
// target row is long enough.
func (b *Buffer) MoveVertical(delta int) {
	row := b.cur.Row + delta
	if row < 0 {
		row = 0
	}
	if row >= len(b.lines) {
		row = len(b.lines) - 1
	}
	col := b.preferredCol
	if n := len(b.lines[row]); col > n {
		col = n
	}
	b.cur = Pos{Row: row, Col: col}
}

func (b *Buffer) MoveHome() {
	b.cur.Col = 0
	b.preferredCol = 0
}

func (b *Buffer) MoveEnd() {
	b.cur.Col = len(b.lines[b.cur.Row])
	b.preferredCol = b.cur.Col
}

func (b *Buffer) MoveTop() { b.SetCursor(Pos{}) }

func (b *Buffer) MoveBottom() {
	last := len(b.lines) - 1
	b.SetCursor(Pos{Row: last, Col: len(b.lines[last])})
}
