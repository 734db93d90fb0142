package main

import (
	"fmt"
	"io"
	"os"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and maps the outcome to a process exit code
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return domainerr.ExitCodeOK
	}

	if unit, ok := domainerr.FailedUnit(err); ok {
		fmt.Fprintf(stderr, "migration %s failed: %v\n", unit, err)
	} else {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return domainerr.ExitCode(err)
}
