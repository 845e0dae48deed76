// Command seqmv renames a batch of files into one naming sequence.
//
// It reads paths from its arguments, --from, or stdin, picks the sequence
// head (forced with --prefix, inferred from existing members, or the least
// basename), prints the rename plan to stdout, and applies it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/backmassage/seqmv/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := fang.Execute(
		context.Background(),
		newRootCmd(pipeline.Env{}),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			printError(w, err)
		}),
	)
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s)", version, commit)
}

// printError reports errors that were not already written by the command.
func printError(w io.Writer, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fmt.Fprintf(w, "seqmv: %v\n", err)
}
