package main

import (
	_ "embed"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/avm/api"
	"github.com/sarchlab/avm/config"
	"github.com/sarchlab/avm/core"
	"github.com/tebeka/atexit"
)

//go:embed promotion.avm
var promotionProgram string

func main() {
	logger, err := config.Default().Logger(os.Stderr)
	if err != nil {
		panic(err)
	}
	slog.SetDefault(logger)

	monitor := monitoring.NewMonitor()
	monitor.StartServer()

	driver := api.MakeDriverBuilder().
		WithOutput(os.Stdout).
		WithTrace(os.Stderr).
		WithMonitor(monitor).
		Build("Driver")

	err = driver.Run(api.Source{
		Name:   "promotion.avm",
		Origin: core.File,
		Text:   promotionProgram,
	})
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
