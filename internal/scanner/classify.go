package scanner

import "strings"

// Literal sub-grammars. Every word-shaped lexeme is matched against the
// whole of one of these; full-string matching keeps the grammars disjoint,
// so classification order does not matter.

// Classify determines the token type of a word-shaped lexeme: a maximal
// run of letters, digits and the characters _ : + - . #. It returns
// ILLEGAL when the lexeme matches none of the literal grammars.
func Classify(lit string) Type {
	switch {
	case isIntegerLiteral(lit):
		return INT
	case isBasedLiteral(lit):
		return BASED
	case isRealLiteral(lit):
		return REAL
	case isDateLiteral(lit):
		return DATE
	case isTimeLiteral(lit):
		return TIME
	case isDateTimeLiteral(lit):
		return DATETIME
	}
	if i := strings.IndexByte(lit, ':'); i >= 0 {
		ns, name := lit[:i], lit[i+1:]
		if IsIdentifier(ns) && !IsReserved(ns) && IsIdentifier(name) && !IsReserved(name) {
			return IDENT
		}
		return ILLEGAL
	}
	if IsIdentifier(lit) {
		return LookupIdent(lit)
	}
	return ILLEGAL
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsIdentifier reports whether s is lexically a valid identifier: a
// letter followed by letters, digits or single underscores, not ending
// in an underscore. Reserved words are identifiers in this sense; use
// IsReserved to exclude them.
func IsIdentifier(s string) bool {
	if len(s) == 0 || !IsLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if i+1 >= len(s) || !(IsLetter(s[i+1]) || IsDigit(s[i+1])) {
				return false
			}
			continue
		}
		if !IsLetter(c) && !IsDigit(c) {
			return false
		}
	}
	return true
}

// IsTextValue reports whether s is a valid text value: any ASCII bytes,
// printable or control, excluding the double quote.
func IsTextValue(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 || s[i] == '"' {
			return false
		}
	}
	return true
}

// IsSymbolValue reports whether s is a valid symbol value: a non-empty
// run of printable ASCII bytes excluding the single quote.
func IsSymbolValue(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e || s[i] == '\'' {
			return false
		}
	}
	return true
}

// IsUnitsExpression reports whether s is a valid units expression:
// factors joined by '*' or '/', where a factor is a non-reserved
// identifier optionally raised to a signed integer power with '**'.
func IsUnitsExpression(s string) bool {
	i := 0
	for {
		j := i
		for j < len(s) && (IsLetter(s[j]) || IsDigit(s[j]) || s[j] == '_') {
			j++
		}
		ident := s[i:j]
		if !IsIdentifier(ident) || IsReserved(ident) {
			return false
		}
		i = j
		if strings.HasPrefix(s[i:], "**") {
			i += 2
			if i < len(s) && (s[i] == '+' || s[i] == '-') {
				i++
			}
			start := i
			for i < len(s) && IsDigit(s[i]) {
				i++
			}
			if i == start {
				return false
			}
		}
		if i == len(s) {
			return true
		}
		if s[i] != '*' && s[i] != '/' {
			return false
		}
		i++
	}
}

func isIntegerLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return false
		}
	}
	return true
}

// isBasedLiteral matches radix#digits#: an unsigned decimal radix and an
// optionally signed run of alphanumeric digits. Whether every digit is
// valid for the radix is checked at value construction, not here.
func isBasedLiteral(s string) bool {
	i := consumeDigits(s, 0)
	if i == 0 || i >= len(s) || s[i] != '#' {
		return false
	}
	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && (IsDigit(s[i]) || IsLetter(s[i])) {
		i++
	}
	if i == start {
		return false
	}
	return i == len(s)-1 && s[i] == '#'
}

// isRealLiteral matches the three floating forms: digits with a dot and
// optional fraction (with optional exponent), and a bare leading-dot
// fraction (which admits no exponent).
func isRealLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intLen := -i
	i = consumeDigits(s, i)
	intLen += i
	hasDot := false
	fracLen := 0
	if i < len(s) && s[i] == '.' {
		hasDot = true
		i++
		start := i
		i = consumeDigits(s, i)
		fracLen = i - start
	}
	hasExp := false
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		if intLen == 0 {
			return false
		}
		hasExp = true
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		i = consumeDigits(s, i)
		if i == start {
			return false
		}
	}
	if i != len(s) {
		return false
	}
	if intLen == 0 {
		return hasDot && fracLen > 0
	}
	return hasDot || hasExp
}

// isDateLiteral matches year-day and year-month-day: two or three
// non-empty runs of digits separated by hyphens.
func isDateLiteral(s string) bool {
	fields := strings.Split(s, "-")
	if len(fields) != 2 && len(fields) != 3 {
		return false
	}
	for _, f := range fields {
		if f == "" || consumeDigits(f, 0) != len(f) {
			return false
		}
	}
	return true
}

func isTimeLiteral(s string) bool {
	i, ok := consumeTime(s, 0)
	return ok && i == len(s)
}

func isDateTimeLiteral(s string) bool {
	i := strings.IndexAny(s, "Tt")
	if i < 0 {
		return false
	}
	return isDateLiteral(s[:i]) && isTimeLiteral(s[i+1:])
}

// consumeTime scans hh:mm[:ss[.frac]][Z|±hh[:mm]] starting at i and
// reports the index after the match.
func consumeTime(s string, i int) (int, bool) {
	start := i
	i = consumeDigits(s, i)
	if i == start || i >= len(s) || s[i] != ':' {
		return i, false
	}
	i++
	start = i
	i = consumeDigits(s, i)
	if i == start {
		return i, false
	}
	if i < len(s) && s[i] == ':' {
		i++
		start = i
		i = consumeDigits(s, i)
		if i < len(s) && s[i] == '.' {
			i++
			i = consumeDigits(s, i)
		} else if i == start {
			return i, false
		}
	}
	if i < len(s) && (s[i] == 'Z' || s[i] == 'z') {
		return i + 1, true
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
		start = i
		i = consumeDigits(s, i)
		if i == start {
			return i, false
		}
		if i < len(s) && s[i] == ':' {
			i++
			start = i
			i = consumeDigits(s, i)
			if i == start {
				return i, false
			}
		}
	}
	return i, true
}

func consumeDigits(s string, i int) int {
	for i < len(s) && IsDigit(s[i]) {
		i++
	}
	return i
}
