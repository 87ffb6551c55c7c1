package instr

import "fmt"

// RangeKind tells why a literal cannot be represented in its type.
type RangeKind int

const (
	Overflow RangeKind = iota
	Underflow
	Malformed
)

func (k RangeKind) String() string {
	switch k {
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	default:
		return "malformed"
	}
}

// RangeError reports a literal that does not fit its declared type.
type RangeError struct {
	Kind    RangeKind
	Type    Type
	Literal string
}

func (e *RangeError) Error() string {
	if e.Kind == Malformed {
		return fmt.Sprintf("invalid %s literal %q", e.Type, e.Literal)
	}
	return fmt.Sprintf("%s on %s(%s)", e.Kind, e.Type, e.Literal)
}

// DivideByZeroError reports a div or mod whose right operand is zero.
type DivideByZeroError struct {
	Opcode Opcode
}

func (e *DivideByZeroError) Error() string {
	if e.Opcode == Mod {
		return "modulo by zero"
	}
	return "division by zero"
}
