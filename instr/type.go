// Package instr defines the operand model and the instruction set of the
// stack machine.
package instr

import "strings"

// Type is the numeric type of an operand. The ordinal of a type is its
// promotion rank.
type Type int

const (
	Int8 Type = iota
	Int16
	Int32
	Float
	Double
)

var typeNames = [...]string{"int8", "int16", "int32", "float", "double"}

func (t Type) String() string {
	if t < Int8 || t > Double {
		return "unknown"
	}
	return typeNames[t]
}

// IsFloating reports whether values of the type are stored as floating
// point numbers.
func (t Type) IsFloating() bool {
	return t == Float || t == Double
}

// bitSize is the width used when parsing literals of the type.
func (t Type) bitSize() int {
	switch t {
	case Int8:
		return 8
	case Int16:
		return 16
	case Int32, Float:
		return 32
	default:
		return 64
	}
}

// ParseType converts a type keyword into a Type. Keywords are
// case-insensitive.
func ParseType(keyword string) (Type, bool) {
	keyword = strings.ToLower(keyword)
	for i, name := range typeNames {
		if name == keyword {
			return Type(i), true
		}
	}
	return 0, false
}

// Promote returns the result type of a binary operation on a and b.
func Promote(a, b Type) Type {
	if a > b {
		return a
	}
	return b
}
