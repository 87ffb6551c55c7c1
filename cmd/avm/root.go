package main

import (
	"fmt"
	"log/slog"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/avm/api"
	"github.com/sarchlab/avm/config"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	logLevel   string
	trace      bool
	maxSteps   int
	monitor    bool

	cfg      config.Config
	exitCode int
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avm [file|program]...",
		Short: "Run stack machine programs",
		Long: `Avm runs programs written for a small stack machine. Every argument
that names an existing file is read as a program ending with "exit". Any
other argument is program text, one instruction per line, ending with a
line holding only ";;".

Each program is checked before it runs. A program that fails the check
produces no output. Programs run one after another; a failing program
does not stop the ones after it.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No instructions passed")
				a.exitCode = 1
				return
			}

			driver := a.driverBuilder(cmd).Build("Driver")
			if failed := driver.RunAll(classify(args)); failed > 0 {
				a.exitCode = 1
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, trace, warn, error)")
	flags.BoolVar(&a.trace, "trace", false, "print the operand stack after every instruction")
	flags.IntVar(&a.maxSteps, "max-steps", 0, "stop a program after this many instructions (0 for no limit)")
	flags.BoolVar(&a.monitor, "monitor", false, "start the monitoring server")

	cmd.AddCommand(a.checkCmd(), a.replCmd())

	return cmd
}

// setup loads the configuration, applies the flags over it and installs the
// logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg = config.Default()

	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}
	if flags.Changed("trace") {
		a.cfg.Trace = a.trace
	}
	if flags.Changed("max-steps") {
		a.cfg.MaxSteps = a.maxSteps
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := a.cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	return nil
}

func (a *app) driverBuilder(cmd *cobra.Command) api.DriverBuilder {
	b := a.cfg.DriverBuilder(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if a.monitor {
		m := monitoring.NewMonitor()
		m.StartServer()
		b = b.WithMonitor(m)
	}

	return b
}

func classify(args []string) []api.Source {
	srcs := make([]api.Source, 0, len(args))
	for _, arg := range args {
		srcs = append(srcs, api.Classify(arg))
	}
	return srcs
}
