package core

import (
	"fmt"
	"io"

	"github.com/sarchlab/avm/instr"
)

type coreState struct {
	PC     int
	Steps  int
	Code   []instr.Inst
	Stack  []instr.Operand // The top of the stack is the last element
	Halted bool
	Err    error
}

func (s *coreState) push(o instr.Operand) {
	s.Stack = append(s.Stack, o)
}

func (s *coreState) pop() instr.Operand {
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top
}

func (s *coreState) top() instr.Operand {
	return s.Stack[len(s.Stack)-1]
}

// snapshot returns a copy of the stack ordered from top to bottom.
func (s *coreState) snapshot() []instr.Operand {
	out := make([]instr.Operand, len(s.Stack))
	for i, o := range s.Stack {
		out[len(s.Stack)-1-i] = o
	}
	return out
}

type instEmulator struct {
	out io.Writer
}

// RunInst executes one instruction and advances the PC. The returned error
// belongs to the instruction; whether it stops the program is decided by
// the caller.
func (i instEmulator) RunInst(inst instr.Inst, state *coreState) error {
	instFuncs := map[instr.Opcode]func(instr.Inst, *coreState) error{
		instr.Push:   i.runPush,
		instr.Pop:    i.runPop,
		instr.Dump:   i.runDump,
		instr.Assert: i.runAssert,
		instr.Add:    i.runArith,
		instr.Sub:    i.runArith,
		instr.Mul:    i.runArith,
		instr.Div:    i.runArith,
		instr.Mod:    i.runArith,
		instr.Print:  i.runPrint,
		instr.Exit:   i.runExit,
	}

	instFunc, ok := instFuncs[inst.Opcode]
	if !ok {
		panic(fmt.Sprintf("unknown instruction '%s' at PC %d", inst.Opcode, state.PC))
	}

	state.PC++

	if len(state.Stack) < inst.Opcode.Effect().Needs {
		return &StackUnderflowError{Opcode: inst.Opcode}
	}

	return instFunc(inst, state)
}

func (i instEmulator) runPush(inst instr.Inst, state *coreState) error {
	o, err := instr.Create(inst.Type, inst.Literal)
	if err != nil {
		return err
	}

	state.push(o)
	return nil
}

func (i instEmulator) runPop(_ instr.Inst, state *coreState) error {
	state.pop()
	return nil
}

func (i instEmulator) runDump(_ instr.Inst, state *coreState) error {
	for _, o := range state.snapshot() {
		if _, err := fmt.Fprintln(i.out, o.Literal()); err != nil {
			return fmt.Errorf("failed to write dump: %w", err)
		}
	}
	return nil
}

func (i instEmulator) runAssert(inst instr.Inst, state *coreState) error {
	expected, err := instr.Create(inst.Type, inst.Literal)
	if err != nil {
		return err
	}

	actual := state.top()
	if !instr.Equal(expected, actual) {
		return &AssertionError{Expected: expected, Actual: actual}
	}
	return nil
}

func (i instEmulator) runArith(inst instr.Inst, state *coreState) error {
	rhs := state.pop()
	lhs := state.pop()

	res, err := instr.Binary(inst.Opcode, lhs, rhs)
	if err != nil {
		return err
	}

	state.push(res)
	return nil
}

func (i instEmulator) runPrint(_ instr.Inst, state *coreState) error {
	top := state.top()
	if top.Type() != instr.Int8 {
		return &TypeError{Msg: "print requires Int8"}
	}

	if _, err := i.out.Write([]byte{byte(top.Int())}); err != nil {
		return fmt.Errorf("failed to write character: %w", err)
	}
	return nil
}

func (i instEmulator) runExit(_ instr.Inst, state *coreState) error {
	state.Halted = true
	return nil
}
