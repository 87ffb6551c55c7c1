// Package core lexes programs and executes them on an operand stack.
package core

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/avm/instr"
)

// HookPosInstExecuted marks when the core has executed an instruction. The
// hook item is the instruction and the detail is a top-first copy of the
// operand stack.
var HookPosInstExecuted = &sim.HookPos{Name: "Inst Executed"}

// A DiagnosticHandler receives the non-fatal diagnostics of a run as they
// happen.
type DiagnosticHandler func(d *Diagnostic)

// Core runs one validated program, one instruction per tick.
type Core struct {
	*sim.TickingComponent

	state    coreState
	emu      instEmulator
	maxSteps int
	onDiag   DiagnosticHandler
}

// MapProgram sets the program that the core needs to run. The operand stack
// starts empty.
func (c *Core) MapProgram(code []instr.Inst) {
	c.state = coreState{Code: code}
	Trace("MapProgram", "Core", c.Name(), "Insts", len(code))
}

// Run executes the mapped program to the end and returns the fatal error
// that stopped it, if any.
func (c *Core) Run() error {
	c.TickNow()

	if err := c.Engine.Run(); err != nil {
		return fmt.Errorf("engine failed: %w", err)
	}

	return c.state.Err
}

// Tick runs one instruction.
func (c *Core) Tick() (madeProgress bool) {
	if c.state.Halted || c.state.PC >= len(c.state.Code) {
		c.state.Halted = true
		return false
	}

	if c.maxSteps > 0 && c.state.Steps >= c.maxSteps {
		inst := c.state.Code[c.state.PC]
		c.halt(&Diagnostic{Line: inst.Line, Err: &StepLimitError{Limit: c.maxSteps}})
		return false
	}

	inst := c.state.Code[c.state.PC]
	err := c.emu.RunInst(inst, &c.state)
	c.state.Steps++

	Trace("Inst",
		"Core", c.Name(),
		"Line", inst.Line,
		"Inst", inst.String(),
		"Depth", len(c.state.Stack),
	)

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosInstExecuted,
		Item:   inst,
		Detail: c.state.snapshot(),
	})

	if err != nil {
		d := &Diagnostic{Line: inst.Line, Err: err}
		if IsFatal(err) {
			c.halt(d)
			return true
		}

		if c.onDiag != nil {
			c.onDiag(d)
		}
	}

	return true
}

func (c *Core) halt(d *Diagnostic) {
	c.state.Halted = true
	c.state.Err = d
	LogState(&c.state)
}

// Stack returns a copy of the operand stack, top first.
func (c *Core) Stack() []instr.Operand {
	return c.state.snapshot()
}

// Halted reports whether the program has finished.
func (c *Core) Halted() bool {
	return c.state.Halted
}

// Steps returns the number of instructions executed so far.
func (c *Core) Steps() int {
	return c.state.Steps
}
