package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kr/pretty"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/avm/instr"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

func LogState(state *coreState) {
	slog.Debug("StateCheckpoint",
		"PC", state.PC,
		"Steps", state.Steps,
		"Halted", state.Halted,
		"Err", state.Err,
		"Stack", pretty.Sprint(state.snapshot()),
	)
}

// StackTracer is a hook that prints the operand stack after every
// instruction.
type StackTracer struct {
	w io.Writer
}

// NewStackTracer creates a tracer writing to w.
func NewStackTracer(w io.Writer) *StackTracer {
	return &StackTracer{w: w}
}

// Func implements sim.Hook.
func (t *StackTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosInstExecuted {
		return
	}

	inst := ctx.Item.(instr.Inst)
	stack := ctx.Detail.([]instr.Operand)

	fmt.Fprintln(t.w, RenderStack(fmt.Sprintf("Line %d: %s", inst.Line, inst), stack))
}

// RenderStack renders a top-first stack as a table under a title line.
func RenderStack(title string, stack []instr.Operand) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "Type", "Value"})

	for i, o := range stack {
		tw.AppendRow(table.Row{i, o.Type().String(), o.Literal()})
	}

	if len(stack) == 0 {
		tw.AppendRow(table.Row{"-", "-", "(empty)"})
	}

	return title + "\n" + tw.Render()
}
