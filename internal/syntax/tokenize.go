package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a typed run of a single line. Start and End are rune columns,
// half-open.
type Token struct {
	Type  string
	Text  string
	Start int
	End   int
}

// TokenizeLine splits line into tokens beginning in state and returns the
// state the next line starts in. An unknown state falls back to StartState.
func (g *Grammar) TokenizeLine(line, state string) ([]Token, string) {
	rules, ok := g.states[state]
	if !ok {
		state = StartState
		rules = g.states[state]
	}
	var tokens []Token
	pos, col := 0, 0
	for pos < len(line) {
		rest := line[pos:]
		typ, n := "", 0
		for _, r := range rules {
			loc := r.re.FindStringIndex(rest)
			if loc == nil || loc[1] == 0 {
				continue
			}
			typ, n = r.token, loc[1]
			if r.next != "" && r.next != state {
				state = r.next
				rules = g.states[state]
			}
			break
		}
		if n == 0 {
			typ, n = TextToken, unclaimedLen(rest)
		}
		text := rest[:n]
		width := utf8.RuneCountInString(text)
		tokens = appendToken(tokens, Token{Type: typ, Text: text, Start: col, End: col + width})
		pos += n
		col += width
	}
	return tokens, state
}

// Tokenize runs TokenizeLine over every line of text, threading state between lines.
func (g *Grammar) Tokenize(text string) [][]Token {
	lines := strings.Split(text, "\n")
	out := make([][]Token, len(lines))
	state := StartState
	for i, line := range lines {
		out[i], state = g.TokenizeLine(line, state)
	}
	return out
}

// unclaimedLen consumes a whole word so later rules never start mid-identifier,
// or a single rune otherwise.
func unclaimedLen(s string) int {
	r, size := utf8.DecodeRuneInString(s)
	if !isWordRune(r) {
		return size
	}
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isWordRune(r) {
			break
		}
		n += size
	}
	return n
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func appendToken(tokens []Token, tok Token) []Token {
	if n := len(tokens); n > 0 && tokens[n-1].Type == tok.Type {
		last := &tokens[n-1]
		last.Text += tok.Text
		last.End = tok.End
		return tokens
	}
	return append(tokens, tok)
}
