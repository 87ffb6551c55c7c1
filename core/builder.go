package core

import (
	"io"
	"os"

	"github.com/sarchlab/akita/v4/sim"
)

// Builder can create new cores.
type Builder struct {
	engine   sim.Engine
	freq     sim.Freq
	out      io.Writer
	maxSteps int
	onDiag   DiagnosticHandler
	hooks    []sim.Hook
}

// NewBuilder returns a builder with default parameters.
func NewBuilder() Builder {
	return Builder{
		freq: 1 * sim.GHz,
		out:  os.Stdout,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithOutput sets where dump and print write to.
func (b Builder) WithOutput(out io.Writer) Builder {
	b.out = out
	return b
}

// WithMaxSteps limits the number of instructions a run may execute. Zero
// means no limit.
func (b Builder) WithMaxSteps(n int) Builder {
	if n < 0 {
		panic("max steps cannot be negative")
	}
	b.maxSteps = n
	return b
}

// WithDiagnosticHandler sets the handler of non-fatal diagnostics.
func (b Builder) WithDiagnosticHandler(h DiagnosticHandler) Builder {
	b.onDiag = h
	return b
}

// WithHook adds a hook to the cores built.
func (b Builder) WithHook(h sim.Hook) Builder {
	b.hooks = append(b.hooks[:len(b.hooks):len(b.hooks)], h)
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.engine == nil {
		b.engine = sim.NewSerialEngine()
	}
	if b.freq == 0 {
		b.freq = 1 * sim.GHz
	}
	if b.out == nil {
		b.out = os.Stdout
	}

	c := &Core{
		emu:      instEmulator{out: b.out},
		maxSteps: b.maxSteps,
		onDiag:   b.onDiag,
	}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	for _, h := range b.hooks {
		c.AcceptHook(h)
	}

	return c
}
