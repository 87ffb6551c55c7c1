package instr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Operand is an immutable typed value living on the operand stack.
//
// The literal text is the canonical decimal rendering of the value. It is
// the source of truth whenever the value takes part in a promoted
// operation: the text is parsed again in the wider type instead of widening
// the stored native value.
type Operand struct {
	typ  Type
	text string
	i    int64   // native value of Int8, Int16 and Int32 operands
	f    float64 // native value of Float and Double operands
}

// Create builds an operand of type t from a literal. It fails with a
// *RangeError if the literal is not a number representable in t.
func Create(t Type, literal string) (Operand, error) {
	o, err := parse(t, literal)
	if err != nil {
		return Operand{}, err
	}

	if t.IsFloating() && (math.IsInf(o.f, 0) || math.IsNaN(o.f)) {
		return Operand{}, &RangeError{Kind: Malformed, Type: t, Literal: literal}
	}

	return o, nil
}

func parse(t Type, literal string) (Operand, error) {
	if t.IsFloating() {
		v, err := strconv.ParseFloat(literal, t.bitSize())
		if err != nil {
			return Operand{}, literalError(t, literal, err)
		}
		if v == 0 && hasNonzeroMantissa(literal) {
			return Operand{}, &RangeError{Kind: Underflow, Type: t, Literal: literal}
		}
		return fromFloat(t, v), nil
	}

	v, err := strconv.ParseInt(literal, 10, t.bitSize())
	if err != nil {
		return Operand{}, literalError(t, literal, err)
	}
	return fromInt(t, v), nil
}

func literalError(t Type, literal string, err error) error {
	if !errors.Is(err, strconv.ErrRange) {
		return &RangeError{Kind: Malformed, Type: t, Literal: literal}
	}

	kind := Overflow
	if strings.HasPrefix(literal, "-") {
		kind = Underflow
	}
	return &RangeError{Kind: kind, Type: t, Literal: literal}
}

// hasNonzeroMantissa reports whether a float literal has a nonzero digit
// before its exponent. ParseFloat rounds such literals to zero without an
// error when they are too small for the type.
func hasNonzeroMantissa(literal string) bool {
	s := strings.TrimLeft(literal, "+-")
	digits, exp := "123456789", "eE"
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
		digits, exp = "123456789abcdefABCDEF", "pP"
	}
	if i := strings.IndexAny(s, exp); i >= 0 {
		s = s[:i]
	}
	return strings.ContainsAny(s, digits)
}

func fromInt(t Type, v int64) Operand {
	return Operand{typ: t, i: v, text: strconv.FormatInt(v, 10)}
}

func fromFloat(t Type, v float64) Operand {
	if t == Float {
		v = float64(float32(v))
	}
	return Operand{typ: t, f: v, text: formatFloat(t, v)}
}

func formatFloat(t Type, v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, t.bitSize())
	}
	if t == Float {
		return decimal.NewFromFloat32(float32(v)).String()
	}
	return decimal.NewFromFloat(v).String()
}

// Type returns the type of the operand.
func (o Operand) Type() Type {
	return o.typ
}

// Literal returns the canonical decimal text of the operand.
func (o Operand) Literal() string {
	return o.text
}

// Int returns the native value of an integer operand.
func (o Operand) Int() int64 {
	return o.i
}

// Float returns the native value of a floating operand.
func (o Operand) Float() float64 {
	return o.f
}

// IsZero reports whether the operand is numerically zero in its own type.
func (o Operand) IsZero() bool {
	if o.typ.IsFloating() {
		return o.f == 0
	}
	return o.i == 0
}

func (o Operand) String() string {
	return fmt.Sprintf("%s(%s)", o.typ, o.text)
}

// Equal reports whether a and b have the same type and the same value.
func Equal(a, b Operand) bool {
	if a.typ != b.typ {
		return false
	}
	if a.typ.IsFloating() {
		return a.f == b.f
	}
	return a.i == b.i
}
