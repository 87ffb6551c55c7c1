package main

import (
	_ "embed"
	"log/slog"
	"os"

	"github.com/sarchlab/avm/api"
	"github.com/sarchlab/avm/config"
	"github.com/sarchlab/avm/core"
	"github.com/tebeka/atexit"
)

//go:embed hello.avm
var helloProgram string

func main() {
	logger, err := config.Default().Logger(os.Stderr)
	if err != nil {
		panic(err)
	}
	slog.SetDefault(logger)

	driver := api.MakeDriverBuilder().
		WithOutput(os.Stdout).
		Build("Driver")

	err = driver.Run(api.Source{
		Name:   "hello.avm",
		Origin: core.File,
		Text:   helloProgram,
	})
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
