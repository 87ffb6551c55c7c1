package api

import (
	"io"
	"os"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/avm/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	freq     sim.Freq
	out      io.Writer
	diagOut  io.Writer
	reporter DiagnosticReporter
	maxSteps int
	trace    io.Writer
	monitor  *monitoring.Monitor
}

// MakeDriverBuilder returns a builder with default parameters.
func MakeDriverBuilder() DriverBuilder {
	return DriverBuilder{
		freq: 1 * sim.GHz,
		out:  os.Stdout,
	}
}

// WithFreq sets the frequency of the cores the driver runs programs on.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithOutput sets where program output is written.
func (b DriverBuilder) WithOutput(out io.Writer) DriverBuilder {
	b.out = out
	return b
}

// WithDiagnosticOutput sets where diagnostics are written when no reporter
// is given. It defaults to the program output.
func (b DriverBuilder) WithDiagnosticOutput(out io.Writer) DriverBuilder {
	b.diagOut = out
	return b
}

// WithReporter sets the reporter that receives diagnostics.
func (b DriverBuilder) WithReporter(r DiagnosticReporter) DriverBuilder {
	b.reporter = r
	return b
}

// WithMaxSteps limits the instructions executed per program.
func (b DriverBuilder) WithMaxSteps(n int) DriverBuilder {
	b.maxSteps = n
	return b
}

// WithTrace prints the operand stack after every instruction to w.
func (b DriverBuilder) WithTrace(w io.Writer) DriverBuilder {
	b.trace = w
	return b
}

// WithMonitor registers the engine and the core of every run with the
// monitor.
func (b DriverBuilder) WithMonitor(m *monitoring.Monitor) DriverBuilder {
	b.monitor = m
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	if b.out == nil {
		b.out = os.Stdout
	}
	if b.diagOut == nil {
		b.diagOut = b.out
	}

	d := &driverImpl{
		name:     name,
		reporter: b.reporter,
		monitor:  b.monitor,
	}

	if d.reporter == nil {
		d.reporter = writerReporter{w: b.diagOut}
	}

	d.coreBuilder = core.NewBuilder().
		WithFreq(b.freq).
		WithOutput(b.out).
		WithMaxSteps(b.maxSteps)

	if b.trace != nil {
		d.coreBuilder = d.coreBuilder.WithHook(core.NewStackTracer(b.trace))
	}

	return d
}
