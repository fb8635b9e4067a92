// Package scanner tokenizes PDS label text.
//
// The scanner is a stateless pass over a caller-supplied byte range: it
// skips insignificant whitespace and comment runs, matches delimiters
// and quoted values directly, and classifies word-shaped lexemes with
// the literal sub-grammars in classify.go. It never fails; malformed
// input surfaces as ILLEGAL tokens which the parser turns into errors.
package scanner

import "bytes"

// Scanner holds the cursor state for tokenizing a label.
type Scanner struct {
	data []byte
	pos  int
}

// New creates and returns a new Scanner reading from data.
func New(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Next scans the input and returns the next token.
func (s *Scanner) Next() Token {
	for {
		s.skipWhitespace()
		if s.pos >= len(s.data) {
			return Token{Type: EOF, Offset: s.pos}
		}
		if s.data[s.pos] == '/' && s.peekAt(1) == '*' {
			if tok, ok := s.skipComment(); !ok {
				return tok
			}
			continue
		}
		break
	}

	off := s.pos
	ch := s.data[s.pos]
	switch ch {
	case '=', ',', '(', ')', '{', '}', '^':
		s.pos++
		return Token{Type: Type(ch), Literal: string(ch), Offset: off}
	case '"':
		return s.scanText()
	case '\'':
		return s.scanSymbol()
	case '<':
		return s.scanUnits()
	}
	if isWordStart(ch) {
		return s.scanWord()
	}
	s.pos++
	if ch >= 0x80 {
		return Token{Type: ILLEGAL, Literal: string(ch), Msg: "non-ASCII byte", Offset: off}
	}
	return Token{Type: ILLEGAL, Literal: string(ch), Msg: "unexpected character", Offset: off}
}

func (s *Scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.data) {
		return 0
	}
	return s.data[s.pos+n]
}

func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.data) && isSpace(s.data[s.pos]) {
		s.pos++
	}
}

// skipComment consumes a comment run. The remainder of the comment's
// line is discarded along with it.
func (s *Scanner) skipComment() (Token, bool) {
	off := s.pos
	s.pos += 2
	end := bytes.Index(s.data[s.pos:], []byte("*/"))
	if end < 0 {
		s.pos = len(s.data)
		return Token{Type: ILLEGAL, Msg: "unterminated comment", Offset: off}, false
	}
	s.pos += end + 2
	for s.pos < len(s.data) {
		ch := s.data[s.pos]
		s.pos++
		if ch == '\n' {
			break
		}
	}
	return Token{}, true
}

func (s *Scanner) scanText() Token {
	off := s.pos
	s.pos++
	start := s.pos
	for s.pos < len(s.data) {
		ch := s.data[s.pos]
		if ch == '"' {
			lit := string(s.data[start:s.pos])
			s.pos++
			return Token{Type: TEXT, Literal: lit, Offset: off}
		}
		if ch >= 0x80 {
			s.pos++
			return Token{Type: ILLEGAL, Literal: string(ch), Msg: "non-ASCII byte in text value", Offset: off}
		}
		s.pos++
	}
	return Token{Type: ILLEGAL, Literal: string(s.data[start:]), Msg: "unterminated text value", Offset: off}
}

func (s *Scanner) scanSymbol() Token {
	off := s.pos
	s.pos++
	start := s.pos
	for s.pos < len(s.data) {
		ch := s.data[s.pos]
		if ch == '\'' {
			lit := string(s.data[start:s.pos])
			s.pos++
			if lit == "" {
				return Token{Type: ILLEGAL, Literal: "''", Msg: "empty symbol value", Offset: off}
			}
			return Token{Type: SYMBOL, Literal: lit, Offset: off}
		}
		if ch < 0x20 || ch > 0x7e {
			s.pos++
			return Token{Type: ILLEGAL, Literal: string(ch), Msg: "invalid character in symbol value", Offset: off}
		}
		s.pos++
	}
	return Token{Type: ILLEGAL, Literal: string(s.data[start:]), Msg: "unterminated symbol value", Offset: off}
}

// scanUnits captures the raw expression between angle brackets. Interior
// whitespace is insignificant and dropped; grammar validation happens at
// value construction.
func (s *Scanner) scanUnits() Token {
	off := s.pos
	s.pos++
	var buf []byte
	for s.pos < len(s.data) {
		ch := s.data[s.pos]
		if ch == '>' {
			s.pos++
			return Token{Type: UNITS, Literal: string(buf), Offset: off}
		}
		if ch >= 0x80 {
			s.pos++
			return Token{Type: ILLEGAL, Literal: string(ch), Msg: "non-ASCII byte in units expression", Offset: off}
		}
		if !isSpace(ch) {
			buf = append(buf, ch)
		}
		s.pos++
	}
	return Token{Type: ILLEGAL, Literal: string(buf), Msg: "unterminated units expression", Offset: off}
}

func (s *Scanner) scanWord() Token {
	off := s.pos
	for s.pos < len(s.data) && isWordChar(s.data[s.pos]) {
		s.pos++
	}
	lit := string(s.data[off:s.pos])
	typ := Classify(lit)
	if typ == ILLEGAL {
		return Token{Type: ILLEGAL, Literal: lit, Msg: "unrecognized token", Offset: off}
	}
	return Token{Type: typ, Literal: lit, Offset: off}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

func isWordStart(c byte) bool {
	return IsLetter(c) || IsDigit(c) || c == '+' || c == '-' || c == '.' || c == '_'
}

func isWordChar(c byte) bool {
	return IsLetter(c) || IsDigit(c) || c == '_' || c == ':' || c == '+' || c == '-' || c == '.' || c == '#'
}
