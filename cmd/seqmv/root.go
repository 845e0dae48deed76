package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/seqmv/internal/config"
	"github.com/backmassage/seqmv/internal/display"
	"github.com/backmassage/seqmv/internal/logging"
	"github.com/backmassage/seqmv/internal/pipeline"
)

// ExitError carries a non-zero exit code for failures the command has
// already reported.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// newRootCmd builds the seqmv command. env is passed through to the
// pipeline; a zero Env uses the OS filesystem and standard streams.
func newRootCmd(env pipeline.Env) *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "seqmv [flags] [PATH...]",
		Short: "Rename a batch of files into one naming sequence",
		Long: `seqmv prefixes every input file with a common sequence head.

The head is --prefix when given. Otherwise, if any input already belongs to
a sequence (its basename is HEAD<sep>REST), that head is reused and its
members are left alone; inputs from two different sequences are an error.
With no existing members, the lexicographically least basename is the head.

Paths come from the arguments, else from --from, else one per line on stdin.
The plan is printed to stdout; logs go to stderr.`,
		Example: `  seqmv b.jpg a.jpg c.jpg          a_b.jpg a_a.jpg a_c.jpg
  ls | seqmv -n                      preview only
  seqmv -p trip -s " - " *.jpg       trip - IMG_001.jpg ...
  find . -name '*.png' | seqmv -o json --no-execute`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	negated := config.BindFlags(cmd.Flags(), &cfg)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := config.Load(cmd.Flags(), &cfg); err != nil {
			return err
		}
		negated.Apply(&cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := logging.NewLoggerTo(cmd.ErrOrStderr(), &cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		if cfg.ConfigFile != "" {
			log.Debug(cfg.Verbose, "Config file: %s", cfg.ConfigFile)
		}

		runEnv := env
		runEnv.Args = args
		if runEnv.Stdout == nil {
			runEnv.Stdout = cmd.OutOrStdout()
		}
		if runEnv.Stdin == nil {
			runEnv.Stdin = cmd.InOrStdin()
		}

		if _, err := pipeline.Run(cmd.Context(), &cfg, log, runEnv); err != nil {
			var se *pipeline.StageError
			if errors.As(err, &se) {
				log.Error("%s", display.FormatError(se.Stage, se.Err))
				return &ExitError{Code: 1, Err: err}
			}
			return err
		}
		return nil
	}

	return cmd
}
