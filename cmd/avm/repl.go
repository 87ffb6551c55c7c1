package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sarchlab/avm/api"
	"github.com/sarchlab/avm/core"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".avm_history"
	promptMain  = "avm> "
	promptCont  = "...> "
	banner      = `Enter instructions, one per line. A line holding only ";;" runs them.
Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.`
)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

// prompter reads one line of input. It is satisfied by *liner.State.
type prompter interface {
	Prompt(prompt string) (string, error)
}

type replReporter struct {
	w     io.Writer
	color bool
}

func (r replReporter) Report(_ api.Source, d *core.Diagnostic) {
	msg := d.Error()
	if r.color {
		msg = red(msg)
	}
	fmt.Fprintln(r.w, msg)
}

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Enter and run programs interactively",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			a.exitCode = a.repl(cmd)
		},
	}
}

func (a *app) repl(cmd *cobra.Command) int {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath, ok := historyPath(); ok {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}

		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	driver := a.driverBuilder(cmd).
		WithReporter(replReporter{w: cmd.ErrOrStderr(), color: a.cfg.Color}).
		Build("REPL")

	for n := 1; ; n++ {
		text, ok := readProgram(ln)
		if !ok {
			fmt.Fprintln(out)
			return 0
		}

		if strings.HasPrefix(text, ":") {
			if text == ":quit" {
				return 0
			}
			fmt.Fprintln(out, "unknown command. Type :quit to exit.")
			continue
		}

		_ = driver.Run(api.Source{
			Name:   fmt.Sprintf("<repl:%d>", n),
			Origin: core.Inline,
			Text:   text,
		})
		fmt.Fprintln(out)

		for _, line := range strings.Split(text, "\n") {
			ln.AppendHistory(line)
		}
	}
}

// historyPath returns the file the REPL keeps its history in. ok is false
// if there is no home directory to keep it in.
func historyPath() (path string, ok bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Warn("REPL history disabled", "Err", err)
		return "", false
	}
	return filepath.Join(home, historyFile), true
}

// readProgram collects lines until one holds only ";;" and returns them as
// the text of an inline program. A REPL command given on the first line is
// returned on its own. ok is false once the input is closed.
func readProgram(p prompter) (text string, ok bool) {
	var lines []string

	for {
		prompt := promptMain
		if len(lines) > 0 {
			prompt = promptCont
		}

		line, err := p.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			lines = nil
			continue
		case err != nil:
			return "", false
		}

		trimmed := strings.TrimSpace(line)
		if len(lines) == 0 {
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ":") {
				return strings.ToLower(trimmed), true
			}
		}

		lines = append(lines, line)
		if trimmed == ";;" {
			return strings.Join(lines, "\n"), true
		}
	}
}
