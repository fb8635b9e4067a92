package pds

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-pds/internal/scanner"
)

// Integer represents an arbitrary-precision integer value with optional
// units.
type Integer struct {
	value big.Int
	units *Units
}

// NewInteger creates an Integer from v.
func NewInteger(v int64, units *Units) *Integer {
	i := &Integer{units: units}
	i.value.SetInt64(v)
	return i
}

// NewBigInteger creates an Integer from v. The value is copied; the
// caller keeps ownership of v.
func NewBigInteger(v *big.Int, units *Units) (*Integer, error) {
	if v == nil {
		return nil, validationErrorf("integer value must not be nil")
	}
	i := &Integer{units: units}
	i.value.Set(v)
	return i, nil
}

// Int returns a copy of the integer value.
func (i *Integer) Int() *big.Int {
	return new(big.Int).Set(&i.value)
}

// Int64 returns the value as an int64, with ok false when it does not
// fit.
func (i *Integer) Int64() (v int64, ok bool) {
	if !i.value.IsInt64() {
		return 0, false
	}
	return i.value.Int64(), true
}

// Float64 returns the value as a float64.
func (i *Integer) Float64() float64 {
	f, _ := new(big.Float).SetInt(&i.value).Float64()
	return f
}

// Units returns the units attached to the value, or nil.
func (i *Integer) Units() *Units {
	return i.units
}

func (i *Integer) String() string {
	return i.value.String() + unitsSuffix(i.units)
}

// BasedInteger represents an integer expressed in an explicit radix,
// e.g. 16#4B#. The digit string is kept verbatim (sign and casing) for
// round-tripping; the base-10 value is derived once at construction.
type BasedInteger struct {
	radix  int
	digits string
	value  big.Int
	units  *Units
}

// NewBasedInteger creates a BasedInteger from a radix between 2 and 16
// and a digit string valid for that radix, with an optional leading
// sign.
func NewBasedInteger(radix int, digits string, units *Units) (*BasedInteger, error) {
	if radix < 2 || radix > 16 {
		return nil, validationErrorf("radix %d is not between 2 and 16", radix)
	}
	body := digits
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	if len(body) == 0 {
		return nil, validationErrorf("based integer has no digits")
	}
	for i := 0; i < len(body); i++ {
		if digitValue(body[i]) >= radix {
			return nil, validationErrorf("invalid digit %q for radix %d", string(body[i]), radix)
		}
	}
	b := &BasedInteger{radix: radix, digits: digits, units: units}
	if _, ok := b.value.SetString(digits, radix); !ok {
		return nil, validationErrorf("invalid digits %q for radix %d", digits, radix)
	}
	return b, nil
}

// Radix returns the base of the integer.
func (b *BasedInteger) Radix() int {
	return b.radix
}

// Digits returns the digit string exactly as supplied at construction.
func (b *BasedInteger) Digits() string {
	return b.digits
}

// Int returns a copy of the derived base-10 value.
func (b *BasedInteger) Int() *big.Int {
	return new(big.Int).Set(&b.value)
}

// Int64 returns the derived value as an int64, with ok false when it
// does not fit.
func (b *BasedInteger) Int64() (v int64, ok bool) {
	if !b.value.IsInt64() {
		return 0, false
	}
	return b.value.Int64(), true
}

// Float64 returns the derived value as a float64.
func (b *BasedInteger) Float64() float64 {
	f, _ := new(big.Float).SetInt(&b.value).Float64()
	return f
}

// Units returns the units attached to the value, or nil.
func (b *BasedInteger) Units() *Units {
	return b.units
}

func (b *BasedInteger) String() string {
	return strconv.Itoa(b.radix) + "#" + b.digits + "#" + unitsSuffix(b.units)
}

// Real represents a floating point value with optional units.
type Real struct {
	value float64
	units *Units
}

// NewReal creates a Real from v. NaN and infinities have no textual
// form and are rejected.
func NewReal(v float64, units *Units) (*Real, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, validationErrorf("real value must be finite")
	}
	return &Real{value: v, units: units}, nil
}

// Float64 returns the value.
func (r *Real) Float64() float64 {
	return r.value
}

// Units returns the units attached to the value, or nil.
func (r *Real) Units() *Units {
	return r.units
}

func (r *Real) String() string {
	return formatReal(r.value) + unitsSuffix(r.units)
}

// formatReal renders v in the shortest form that round-trips, forcing a
// fractional digit onto forms that would otherwise read as integers.
func formatReal(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func unitsSuffix(u *Units) string {
	if u == nil {
		return ""
	}
	return " " + u.String()
}

func digitValue(c byte) int {
	switch {
	case scanner.IsDigit(c):
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 99
}
