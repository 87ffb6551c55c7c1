package instr

import "fmt"

type integer interface {
	~int8 | ~int16 | ~int32
}

type floating interface {
	~float32 | ~float64
}

// Binary applies an arithmetic opcode to lhs and rhs. lhs is the operand
// below the top of the stack and rhs is the top.
//
// The result type is the wider of the two operand types. Both operands are
// parsed again from their literal text into the result type before the
// operation runs. mod on floating types operates on the operands truncated
// to 32-bit integers and stores the result in the floating type.
func Binary(op Opcode, lhs, rhs Operand) (Operand, error) {
	if !op.IsArithmetic() {
		panic(fmt.Sprintf("%s is not an arithmetic opcode", op))
	}

	if (op == Div || op == Mod) && rhs.IsZero() {
		return Operand{}, &DivideByZeroError{Opcode: op}
	}

	t := Promote(lhs.typ, rhs.typ)

	a, err := parse(t, lhs.text)
	if err != nil {
		return Operand{}, err
	}

	b, err := parse(t, rhs.text)
	if err != nil {
		return Operand{}, err
	}

	switch t {
	case Int8:
		return fromInt(t, int64(intOp(op, int8(a.i), int8(b.i)))), nil
	case Int16:
		return fromInt(t, int64(intOp(op, int16(a.i), int16(b.i)))), nil
	case Int32:
		return fromInt(t, int64(intOp(op, int32(a.i), int32(b.i)))), nil
	}

	if op == Mod {
		return truncatedMod(t, a.f, b.f)
	}

	if t == Float {
		return fromFloat(t, float64(floatOp(op, float32(a.f), float32(b.f)))), nil
	}
	return fromFloat(t, floatOp(op, a.f, b.f)), nil
}

func intOp[T integer](op Opcode, a, b T) T {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	case Mod:
		return a % b
	}
	panic("unreachable")
}

func floatOp[T floating](op Opcode, a, b T) T {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	}
	panic("unreachable")
}

func truncatedMod(t Type, a, b float64) (Operand, error) {
	divisor := int32(b)
	if divisor == 0 {
		return Operand{}, &DivideByZeroError{Opcode: Mod}
	}
	return fromFloat(t, float64(int32(a)%divisor)), nil
}
