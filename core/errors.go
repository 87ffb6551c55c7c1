package core

import (
	"errors"
	"fmt"

	"github.com/sarchlab/avm/instr"
)

// Diagnostic attaches a source line to an error. Every failure that is
// reported to the user goes through a Diagnostic.
type Diagnostic struct {
	Line int
	Err  error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("Line %d: Error : %s", d.Line, d.Err)
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// LexicalError reports a line that is not a blank, a comment or an
// instruction.
type LexicalError struct {
	Raw string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("invalid instruction %q", e.Raw)
}

// GrammarError reports a program that violates the structure of the
// language, such as a missing terminator.
type GrammarError struct {
	Msg string
}

func (e *GrammarError) Error() string {
	return e.Msg
}

// StackUnderflowError reports an instruction that needs more operands than
// the stack holds.
type StackUnderflowError struct {
	Opcode instr.Opcode
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow on %s", e.Opcode)
}

// TypeError reports an operand of the wrong type.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string {
	return e.Msg
}

// AssertionError reports an assert whose expected value differs from the
// top of the stack. It does not stop the program.
type AssertionError struct {
	Expected instr.Operand
	Actual   instr.Operand
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: expected %s, got %s", e.Expected, e.Actual)
}

// StepLimitError reports a run that executed more instructions than
// allowed.
type StepLimitError struct {
	Limit int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("step limit of %d instructions exceeded", e.Limit)
}

// IsFatal reports whether err stops the program it occurred in.
func IsFatal(err error) bool {
	var assertErr *AssertionError
	return !errors.As(err, &assertErr)
}
