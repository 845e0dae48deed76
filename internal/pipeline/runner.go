package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/backmassage/seqmv/internal/check"
	"github.com/backmassage/seqmv/internal/config"
	"github.com/backmassage/seqmv/internal/display"
	"github.com/backmassage/seqmv/internal/executor"
	"github.com/backmassage/seqmv/internal/logging"
	"github.com/backmassage/seqmv/internal/planner"
	"github.com/backmassage/seqmv/internal/sequence"
)

// Env is everything a run touches outside of its configuration.
type Env struct {
	Fs     afero.Fs  // Filesystem for --from, --check, and renames. Default: the OS.
	Args   []string  // Positional paths. When set, stdin and --from are ignored.
	Stdin  io.Reader // Path list source when there are no Args and no --from. Default: os.Stdin.
	Stdout io.Writer // Plan output. Default: os.Stdout.
}

func (e *Env) defaults() {
	if e.Fs == nil {
		e.Fs = afero.NewOsFs()
	}
	if e.Stdin == nil {
		e.Stdin = os.Stdin
	}
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}
}

// Run is the top-level batch entry point: collect paths → resolve head →
// build plan → show → check → execute. Every stage failure comes back as a
// *StageError; stats cover whatever ran before it.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, env Env) (RunStats, error) {
	var stats RunStats
	env.defaults()

	// --- Collect ---
	paths, err := collect(cfg, &env, &stats)
	if err != nil {
		return stats, err
	}
	log.Debug(cfg.Verbose, "Read %s (%d excluded)", display.Count(stats.Inputs, "path"), stats.Excluded)

	// --- Resolve head ---
	head, err := sequence.Resolve(cfg, paths)
	if err != nil {
		return stats, &StageError{Stage: StageHead, Err: err}
	}
	stats.Head = head
	log.Info("Sequence head: %s", head)

	// --- Plan ---
	plan, err := planner.BuildPlan(cfg.Separator, head.Name, paths)
	if err != nil {
		return stats, &StageError{Stage: StagePlan, Err: err}
	}
	stats.Planned = plan.Len()
	stats.Skipped = len(plan.Skipped)
	log.Debug(cfg.Verbose, "Plan: %s under %q + %q, %d already in sequence",
		display.Count(stats.Planned, "rename"), plan.Head, plan.Separator, stats.Skipped)
	for _, p := range plan.Skipped {
		log.Debug(cfg.Verbose, "Already in sequence: %s", p)
	}

	if cfg.ShowPlan {
		if err := display.RenderPlan(env.Stdout, plan, cfg.OutputFormat); err != nil {
			return stats, &StageError{Stage: StageShow, Err: err}
		}
	}

	if !cfg.ExecutePlan {
		log.Warn("DRY RUN: %s planned, nothing renamed", display.Count(plan.Len(), "rename"))
		return stats, nil
	}
	if plan.Empty() {
		log.Success("Nothing to rename (%s already in sequence)", display.Count(stats.Skipped, "file"))
		return stats, nil
	}

	// --- Preflight ---
	if cfg.CheckSources {
		if err := check.Sources(env.Fs, plan, log, cfg.Verbose); err != nil {
			return stats, &StageError{Stage: StageCheck, Err: err}
		}
	}

	// --- Execute ---
	res, err := executor.Execute(ctx, env.Fs, plan, executor.Options{
		OnRename: func(n int, r planner.Rename) {
			log.Debug(cfg.Verbose, "[%d/%d] %s", n, plan.Len(), r)
		},
	})
	stats.Renamed = res.Renamed
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Interrupted after %d of %s; %d not applied",
				res.Renamed, display.Count(res.Total, "rename"), stats.Pending())
		} else if res.Renamed > 0 {
			log.Warn("%d of %s were applied before the failure and are kept; %d not applied",
				res.Renamed, display.Count(res.Total, "rename"), stats.Pending())
		}
		return stats, &StageError{Stage: StageExecute, Err: err}
	}

	log.Success("Renamed %s into sequence %q", display.Count(res.Renamed, "file"), plan.Head)
	return stats, nil
}

// collect gathers the run's input paths: positional args, else --from,
// else stdin; then resolves them against the base dir and applies excludes.
func collect(cfg *config.Config, env *Env, stats *RunStats) ([]string, error) {
	baseDir := cfg.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, &StageError{Stage: StageBaseDir, Err: err}
		}
		baseDir = wd
	}

	entries := env.Args
	if len(entries) == 0 {
		var err error
		entries, err = readEntries(cfg, env)
		if err != nil {
			return nil, &StageError{Stage: StageRead, Err: err}
		}
	}

	paths, dropped := Exclude(ResolvePaths(entries, baseDir), cfg.Exclude)
	stats.Inputs = len(paths)
	stats.Excluded = dropped
	return paths, nil
}

func readEntries(cfg *config.Config, env *Env) ([]string, error) {
	if cfg.InputFile == "" {
		return ReadPaths(env.Stdin)
	}
	f, err := env.Fs.Open(cfg.InputFile)
	if err != nil {
		return nil, fmt.Errorf("open path list: %w", err)
	}
	defer f.Close()
	return ReadPaths(f)
}
