// Package verify statically checks programs before they run.
//
// The validator walks the instructions of a lexed program in order and
// simulates the depth of the operand stack with the stack effects declared
// in package instr. A program is accepted only if:
//
//   - it ends with its terminator (exit for file programs, a ;; line for
//     inline programs),
//   - every push and assert literal is representable in its declared type,
//   - no instruction needs more operands than the simulated stack holds.
//
// Checking happens before execution, so a rejected program produces no
// output at all. Divide and mod by zero depend on runtime values and are
// left to the executor.
//
// # Usage Example
//
//	prog, err := core.LexString("push int8(1)\ndump\n;;", core.Inline)
//	if err != nil {
//	    return err
//	}
//
//	res, err := verify.Validate(prog)
//	if err != nil {
//	    return err // a *core.Diagnostic
//	}
//
//	c := core.NewBuilder().Build("Core")
//	c.MapProgram(res.Insts)
//	return c.Run()
package verify

import "github.com/sarchlab/avm/instr"

// Result is the outcome of a successful validation.
type Result struct {
	Insts    []instr.Inst // Instructions in source order
	MaxDepth int          // Deepest simulated stack
}
