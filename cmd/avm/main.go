// Command avm runs stack machine programs given as files or inline text.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	atexit.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, out, errOut io.Writer) int {
	a := &app{}

	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	return a.exitCode
}
