package instr

import "fmt"

// Opcode is an instruction mnemonic.
type Opcode string

const (
	Push   Opcode = "push"
	Pop    Opcode = "pop"
	Dump   Opcode = "dump"
	Assert Opcode = "assert"
	Add    Opcode = "add"
	Sub    Opcode = "sub"
	Mul    Opcode = "mul"
	Div    Opcode = "div"
	Mod    Opcode = "mod"
	Print  Opcode = "print"
	Exit   Opcode = "exit"
)

// StackEffect describes what an instruction requires from the operand stack
// and how it changes the stack depth. The validator simulates programs with
// these values and the executor checks Needs before running an instruction,
// so both sides share one definition.
type StackEffect struct {
	Needs int // operands that must be on the stack
	Delta int // change of the stack depth
}

// Apply returns the depth after an instruction with this effect runs at the
// given depth. ok is false if the depth is too small.
func (e StackEffect) Apply(depth int) (after int, ok bool) {
	if depth < e.Needs {
		return depth, false
	}
	return depth + e.Delta, true
}

var stackEffects = map[Opcode]StackEffect{
	Push:   {Needs: 0, Delta: 1},
	Pop:    {Needs: 1, Delta: -1},
	Dump:   {Needs: 0, Delta: 0},
	Assert: {Needs: 1, Delta: -1},
	Add:    {Needs: 2, Delta: -1},
	Sub:    {Needs: 2, Delta: -1},
	Mul:    {Needs: 2, Delta: -1},
	Div:    {Needs: 2, Delta: -1},
	Mod:    {Needs: 2, Delta: -1},
	Print:  {Needs: 1, Delta: -1},
	Exit:   {Needs: 0, Delta: 0},
}

// ParseOpcode looks up a mnemonic. Mnemonics are case-sensitive.
func ParseOpcode(s string) (Opcode, bool) {
	op := Opcode(s)
	_, ok := stackEffects[op]
	return op, ok
}

// Effect returns the stack effect of the opcode.
func (op Opcode) Effect() StackEffect {
	e, ok := stackEffects[op]
	if !ok {
		panic(fmt.Sprintf("unknown opcode %q", string(op)))
	}
	return e
}

// TakesValue reports whether the opcode carries a typed literal.
func (op Opcode) TakesValue() bool {
	return op == Push || op == Assert
}

// IsArithmetic reports whether the opcode is a binary arithmetic operation.
func (op Opcode) IsArithmetic() bool {
	switch op {
	case Add, Sub, Mul, Div, Mod:
		return true
	}
	return false
}

// Inst is a single instruction of a program.
type Inst struct {
	Opcode  Opcode
	Type    Type   // Only for push and assert
	Literal string // Raw literal text, only for push and assert
	Line    int    // 1-based source line
	Raw     string // The source line the instruction was read from
}

func (i Inst) String() string {
	if i.Opcode.TakesValue() {
		return fmt.Sprintf("%s %s(%s)", i.Opcode, i.Type, i.Literal)
	}
	return string(i.Opcode)
}
