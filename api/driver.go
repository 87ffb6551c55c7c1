// Package api defines the driver that runs programs through the lexer, the
// validator and the executor.
package api

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/avm/core"
	"github.com/sarchlab/avm/verify"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source is one program given to the driver.
type Source struct {
	Name   string
	Origin core.Origin
	Path   string // Read when set
	Text   string // Program text when Path is empty
}

// Classify turns a command-line argument into a source. Arguments naming an
// existing path are files; anything else is inline program text.
func Classify(arg string) Source {
	if _, err := os.Stat(arg); err == nil {
		return Source{Name: arg, Origin: core.File, Path: arg}
	}

	return Source{Name: inlineName(arg), Origin: core.Inline, Text: arg}
}

func inlineName(text string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	if len(first) > 24 {
		first = first[:24] + "..."
	}
	return fmt.Sprintf("<inline: %s>", first)
}

// DiagnosticReporter receives the diagnostics of every source.
type DiagnosticReporter interface {
	Report(src Source, d *core.Diagnostic)
}

type writerReporter struct {
	w io.Writer
}

func (r writerReporter) Report(_ Source, d *core.Diagnostic) {
	fmt.Fprintln(r.w, d.Error())
}

// Driver runs sources one after another.
type Driver interface {
	// Run lexes, validates and executes a source. The returned error is the
	// diagnostic that stopped the source, or nil.
	Run(src Source) error

	// RunAll runs the sources in order and returns how many failed. A
	// failing source does not stop the ones after it.
	RunAll(srcs []Source) (failed int)

	// Check lexes and validates a source without running it.
	Check(src Source) (*verify.Result, error)
}

type driverImpl struct {
	name        string
	coreBuilder core.Builder
	reporter    DiagnosticReporter
	monitor     *monitoring.Monitor
}

// Run runs one source.
func (d *driverImpl) Run(src Source) error {
	runID := sim.GetIDGenerator().Generate()
	slog.Info("Run", "RunID", runID, "Source", src.Name, "Origin", src.Origin.String())

	res, err := d.Check(src)
	if err != nil {
		return err
	}

	engine := sim.NewSerialEngine()

	c := d.coreBuilder.
		WithEngine(engine).
		WithDiagnosticHandler(func(diag *core.Diagnostic) {
			d.reporter.Report(src, diag)
		}).
		Build(fmt.Sprintf("%s.Core[%s]", d.name, runID))

	c.MapProgram(res.Insts)

	if d.monitor != nil {
		d.monitor.RegisterEngine(engine)
		d.monitor.RegisterComponent(c)
	}

	if err := c.Run(); err != nil {
		d.report(src, err)
		return err
	}

	core.Trace("RunDone", "RunID", runID, "Steps", c.Steps())
	return nil
}

// RunAll runs all sources in order.
func (d *driverImpl) RunAll(srcs []Source) (failed int) {
	for _, src := range srcs {
		if err := d.Run(src); err != nil {
			failed++
		}
	}
	return failed
}

// Check lexes and validates a source.
func (d *driverImpl) Check(src Source) (*verify.Result, error) {
	prog, err := d.load(src)
	if err != nil {
		d.report(src, err)
		return nil, err
	}

	res, err := verify.Validate(prog)
	if err != nil {
		d.report(src, err)
		return nil, err
	}

	return res, nil
}

// load lexes a source. File handles are held only while lexing.
func (d *driverImpl) load(src Source) (core.Program, error) {
	if src.Path == "" {
		return core.LexString(src.Text, src.Origin)
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return core.Program{}, fmt.Errorf("failed to open %s: %w", src.Path, err)
	}
	defer f.Close()

	r := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	return core.Lex(r, core.File)
}

func (d *driverImpl) report(src Source, err error) {
	diag, ok := err.(*core.Diagnostic)
	if !ok {
		diag = &core.Diagnostic{Err: err}
	}

	slog.Debug("Diagnostic", "Source", src.Name, "Line", diag.Line, "Err", diag.Err)
	d.reporter.Report(src, diag)
}
