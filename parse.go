package pds

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-pds/internal/scanner"
)

// Parse reads a PDS label from the beginning of data and returns its
// document tree. data must start with a syntactically valid label;
// bytes after the terminal END statement are neither consumed nor
// inspected. Parsing is all-or-nothing: the first structural mismatch
// aborts with a *ParseError and no partial result.
func Parse(data []byte) (*Label, error) {
	p := &parser{sc: scanner.New(data)}
	p.next()
	p.next()
	return p.parseLabel()
}

// parser drives the recursive descent over the token stream with a
// one-token lookahead window.
type parser struct {
	sc        *scanner.Scanner
	cur, peek scanner.Token
}

func (p *parser) next() {
	p.cur = p.peek
	p.peek = p.sc.Next()
}

func (p *parser) parseLabel() (*Label, error) {
	label, err := NewLabel()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Type {
		case scanner.END:
			return label, nil
		case scanner.EOF:
			return nil, p.eofError()
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := label.Append(stmt); err != nil {
			return nil, err
		}
	}
}

// The contract for all parse functions is that they are entered with
// p.cur being the first token of the construct, and they return with
// p.cur pointing to the token after the construct.

func (p *parser) parseStatement() (Statement, error) {
	switch p.cur.Type {
	case scanner.GROUP, scanner.OBJECT:
		return p.parseBlock()
	case scanner.IDENT:
		return p.parseAttribute("")
	case scanner.CARET:
		p.next()
		if p.cur.Type != scanner.IDENT {
			return nil, p.expectedError("expected pointer identifier after '^'")
		}
		return p.parseAttribute("^")
	case scanner.ILLEGAL:
		return nil, p.illegalError()
	case scanner.EOF:
		return nil, p.eofError()
	}
	return nil, p.expectedError("expected statement identifier")
}

func (p *parser) parseAttribute(prefix string) (*Attribute, error) {
	identTok := p.cur
	identifier := prefix + p.cur.Literal
	p.next()
	if p.cur.Type != scanner.EQUAL {
		switch p.cur.Type {
		case scanner.EOF:
			return nil, p.eofError()
		case scanner.ILLEGAL:
			return nil, p.illegalError()
		}
		return nil, p.expectedError("expected '='")
	}
	p.next()
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	attr, err := NewAttribute(identifier, value)
	if err != nil {
		return nil, p.wrap(err, identTok)
	}
	return attr, nil
}

func (p *parser) parseBlock() (Statement, error) {
	open := p.cur
	closer := scanner.ENDGROUP
	if open.Type == scanner.OBJECT {
		closer = scanner.ENDOBJECT
	}
	p.next()
	if p.cur.Type != scanner.EQUAL {
		if p.cur.Type == scanner.EOF {
			return nil, p.eofError()
		}
		return nil, p.expectedError("expected '='")
	}
	p.next()
	if p.cur.Type != scanner.IDENT {
		if p.cur.Type == scanner.EOF {
			return nil, p.eofError()
		}
		return nil, p.expectedError("expected block identifier")
	}
	nameTok := p.cur
	name := p.cur.Literal
	p.next()

	var nested []Statement
	for p.cur.Type != closer {
		switch p.cur.Type {
		case scanner.EOF:
			return nil, p.eofError()
		case scanner.END:
			return nil, p.expectedError(fmt.Sprintf("expected %s", closer))
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		nested = append(nested, stmt)
	}
	p.next()
	if p.cur.Type == scanner.EQUAL {
		p.next()
		if p.cur.Type != scanner.IDENT {
			if p.cur.Type == scanner.EOF {
				return nil, p.eofError()
			}
			return nil, p.expectedError("expected block identifier")
		}
		if !strings.EqualFold(p.cur.Literal, name) {
			return nil, &ParseError{
				Kind:    KindMismatchedTerminator,
				Message: fmt.Sprintf("block %s closed as %s", strings.ToUpper(name), strings.ToUpper(p.cur.Literal)),
				Token:   p.cur.Literal,
				Offset:  p.cur.Offset,
			}
		}
		p.next()
	}

	if open.Type == scanner.GROUP {
		stmts, err := NewGroupStatements(nested...)
		if err != nil {
			return nil, err
		}
		group, err := NewGroup(name, stmts)
		if err != nil {
			return nil, p.wrap(err, nameTok)
		}
		return group, nil
	}
	stmts, err := NewObjectStatements(nested...)
	if err != nil {
		return nil, err
	}
	object, err := NewObject(name, stmts)
	if err != nil {
		return nil, p.wrap(err, nameTok)
	}
	return object, nil
}

func (p *parser) parseValue() (Value, error) {
	tok := p.cur
	switch tok.Type {
	case scanner.INT:
		p.next()
		units, err := p.parseUnits()
		if err != nil {
			return nil, err
		}
		v, ok := new(big.Int).SetString(tok.Literal, 10)
		if !ok {
			return nil, p.wrap(validationErrorf("invalid integer %q", tok.Literal), tok)
		}
		integer, err := NewBigInteger(v, units)
		if err != nil {
			return nil, p.wrap(err, tok)
		}
		return integer, nil
	case scanner.BASED:
		p.next()
		units, err := p.parseUnits()
		if err != nil {
			return nil, err
		}
		based, err := parseBasedLiteral(tok.Literal, units)
		if err != nil {
			return nil, p.wrap(err, tok)
		}
		return based, nil
	case scanner.REAL:
		p.next()
		units, err := p.parseUnits()
		if err != nil {
			return nil, err
		}
		f, ferr := strconv.ParseFloat(tok.Literal, 64)
		if ferr != nil {
			return nil, p.wrap(validationErrorf("invalid real %q", tok.Literal), tok)
		}
		real, err := NewReal(f, units)
		if err != nil {
			return nil, p.wrap(err, tok)
		}
		return real, nil
	case scanner.DATE:
		p.next()
		date, err := parseDateLiteral(tok.Literal)
		if err != nil {
			return nil, p.wrap(err, tok)
		}
		return date, nil
	case scanner.TIME:
		p.next()
		t, err := parseTimeLiteral(tok.Literal)
		if err != nil {
			return nil, p.wrap(err, tok)
		}
		return t, nil
	case scanner.DATETIME:
		p.next()
		dt, err := parseDateTimeLiteral(tok.Literal)
		if err != nil {
			return nil, p.wrap(err, tok)
		}
		return dt, nil
	case scanner.TEXT:
		p.next()
		text, err := NewText(tok.Literal)
		if err != nil {
			return nil, p.wrap(err, tok)
		}
		return text, nil
	case scanner.SYMBOL:
		p.next()
		sym, err := NewSymbol(tok.Literal)
		if err != nil {
			return nil, p.wrap(err, tok)
		}
		return sym, nil
	case scanner.IDENT:
		p.next()
		ident, err := NewIdentifier(tok.Literal)
		if err != nil {
			return nil, p.wrap(err, tok)
		}
		return ident, nil
	case scanner.LPAREN:
		return p.parseSequence()
	case scanner.LBRACE:
		return p.parseSet()
	case scanner.EOF:
		return nil, p.eofError()
	case scanner.ILLEGAL:
		return nil, p.illegalError()
	}
	return nil, p.expectedError("expected a value")
}

// parseUnits consumes an optional units expression following a numeric
// literal.
func (p *parser) parseUnits() (*Units, error) {
	if p.cur.Type != scanner.UNITS {
		return nil, nil
	}
	tok := p.cur
	p.next()
	units, err := NewUnits(tok.Literal)
	if err != nil {
		return nil, p.wrap(err, tok)
	}
	return units, nil
}

// parseSequence is entered on '(' and decides between the 1-D and 2-D
// forms by whether the first element is itself parenthesized.
func (p *parser) parseSequence() (Value, error) {
	p.next()
	if p.cur.Type != scanner.LPAREN {
		return p.finishRow()
	}
	seq, err := NewSequence2D()
	if err != nil {
		return nil, err
	}
	for {
		row, err := p.parseRow()
		if err != nil {
			return nil, err
		}
		if err := seq.Append(row); err != nil {
			return nil, err
		}
		switch p.cur.Type {
		case scanner.COMMA:
			p.next()
		case scanner.RPAREN:
			p.next()
			return seq, nil
		case scanner.EOF:
			return nil, p.eofError()
		default:
			return nil, p.expectedError("expected ','")
		}
	}
}

func (p *parser) parseRow() (*Sequence1D, error) {
	if p.cur.Type != scanner.LPAREN {
		if p.cur.Type == scanner.EOF {
			return nil, p.eofError()
		}
		return nil, p.expectedError("expected '('")
	}
	p.next()
	return p.finishRow()
}

// finishRow reads comma-separated scalar values up to and including the
// closing parenthesis. A sequence literal has at least one element.
func (p *parser) finishRow() (*Sequence1D, error) {
	seq, err := NewSequence1D()
	if err != nil {
		return nil, err
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		s, ok := v.(Scalar)
		if !ok {
			return nil, validationErrorf("sequence value must be a scalar, not a %s", valueKind(v))
		}
		if err := seq.Append(s); err != nil {
			return nil, err
		}
		switch p.cur.Type {
		case scanner.COMMA:
			p.next()
		case scanner.RPAREN:
			p.next()
			return seq, nil
		case scanner.EOF:
			return nil, p.eofError()
		default:
			return nil, p.expectedError("expected ','")
		}
	}
}

// parseSet is entered on '{'. Sets may be empty and admit only integer
// and symbol members.
func (p *parser) parseSet() (*Set, error) {
	p.next()
	set, err := NewSet()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == scanner.RBRACE {
		p.next()
		return set, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		s, ok := v.(Scalar)
		if !ok {
			return nil, validationErrorf("set value must be an integer or symbol, not a %s", valueKind(v))
		}
		if err := set.Add(s); err != nil {
			return nil, err
		}
		switch p.cur.Type {
		case scanner.COMMA:
			p.next()
		case scanner.RBRACE:
			p.next()
			return set, nil
		case scanner.EOF:
			return nil, p.eofError()
		default:
			return nil, p.expectedError("expected ','")
		}
	}
}

func (p *parser) eofError() *ParseError {
	return &ParseError{Kind: KindUnexpectedEnd, Message: "unexpected end of input", Offset: p.cur.Offset}
}

func (p *parser) illegalError() *ParseError {
	kind := KindMalformedLiteral
	if strings.HasPrefix(p.cur.Msg, "unterminated") {
		kind = KindUnexpectedEnd
	}
	return &ParseError{Kind: kind, Message: p.cur.Msg, Token: p.cur.Literal, Offset: p.cur.Offset}
}

func (p *parser) expectedError(msg string) *ParseError {
	return &ParseError{Kind: KindExpectedToken, Message: msg, Token: p.cur.Literal, Offset: p.cur.Offset}
}

// wrap converts a constructor ValidationError into a ParseError at tok.
// Anything else passes through unchanged.
func (p *parser) wrap(err error, tok scanner.Token) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return &ParseError{Kind: KindMalformedLiteral, Message: verr.Message, Token: tok.Literal, Offset: tok.Offset}
	}
	return err
}

func parseBasedLiteral(lit string, units *Units) (*BasedInteger, error) {
	i := strings.IndexByte(lit, '#')
	radix, err := strconv.Atoi(lit[:i])
	if err != nil {
		return nil, validationErrorf("invalid radix %q", lit[:i])
	}
	return NewBasedInteger(radix, lit[i+1:len(lit)-1], units)
}

func parseDateLiteral(lit string) (*Date, error) {
	fields := strings.Split(lit, "-")
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, validationErrorf("invalid date field %q", f)
		}
		nums[i] = n
	}
	if len(nums) == 2 {
		return NewDateDayOfYear(nums[0], nums[1])
	}
	return NewDate(nums[0], nums[1], nums[2])
}

func parseTimeLiteral(lit string) (*Time, error) {
	hour, i, err := takeInt(lit, 0)
	if err != nil {
		return nil, err
	}
	minute, i, err := takeInt(lit, i+1)
	if err != nil {
		return nil, err
	}
	var opts []TimeOption
	if i < len(lit) && lit[i] == ':' {
		i++
		start := i
		for i < len(lit) && (scanner.IsDigit(lit[i]) || lit[i] == '.') {
			i++
		}
		sec, err := strconv.ParseFloat(lit[start:i], 64)
		if err != nil {
			return nil, validationErrorf("invalid seconds %q", lit[start:i])
		}
		opts = append(opts, WithSecond(sec))
	}
	if i < len(lit) {
		switch lit[i] {
		case 'Z', 'z':
			opts = append(opts, WithUTC())
		case '+', '-':
			start := i
			i++
			for i < len(lit) && scanner.IsDigit(lit[i]) {
				i++
			}
			zoneHour, err := strconv.Atoi(lit[start:i])
			if err != nil {
				return nil, validationErrorf("invalid zone hour %q", lit[start:i])
			}
			if i < len(lit) && lit[i] == ':' {
				zoneMinute, _, err := takeInt(lit, i+1)
				if err != nil {
					return nil, err
				}
				opts = append(opts, WithZoneMinute(zoneHour, zoneMinute))
			} else {
				opts = append(opts, WithZone(zoneHour))
			}
		}
	}
	return NewTime(hour, minute, opts...)
}

func parseDateTimeLiteral(lit string) (*DateTime, error) {
	i := strings.IndexAny(lit, "Tt")
	date, err := parseDateLiteral(lit[:i])
	if err != nil {
		return nil, err
	}
	t, err := parseTimeLiteral(lit[i+1:])
	if err != nil {
		return nil, err
	}
	return NewDateTime(date, t)
}

func takeInt(s string, i int) (value, next int, err error) {
	start := i
	for i < len(s) && scanner.IsDigit(s[i]) {
		i++
	}
	n, aerr := strconv.Atoi(s[start:i])
	if aerr != nil {
		return 0, i, validationErrorf("invalid time field %q", s[start:i])
	}
	return n, i, nil
}
