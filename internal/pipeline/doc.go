// Package pipeline orchestrates one seqmv run: collect input paths, resolve
// the sequence head, build the rename plan, show it, and apply it.
//
// Files:
//   - discover.go: newline-delimited path lists, base-dir resolution, excludes.
//   - runner.go: Run, the stage sequence and its logging.
//   - stats.go: RunStats.
//   - errors.go: StageError, the "<stage> due to: <cause>" wrapper.
package pipeline
