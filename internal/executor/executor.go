package executor

import (
	"context"

	"github.com/spf13/afero"

	"github.com/backmassage/seqmv/internal/planner"
)

// Result reports how much of a plan was applied.
type Result struct {
	Renamed int // Pairs renamed before the run stopped.
	Total   int // Pairs in the plan.
}

// Options tunes a run. The zero value is ready to use.
type Options struct {
	// OnRename, when set, is called after each successful rename with the
	// 1-based position of the pair.
	OnRename func(n int, r planner.Rename)
}

// Execute renames each pair of plan through fsys, strictly in order.
//
// It stops at the first failed rename and returns a *RenameError wrapping
// the underlying error. ctx is checked before every pair; a cancelled
// context stops the run before the next rename and returns ctx.Err().
// Either way the already-renamed pairs are left in place.
func Execute(ctx context.Context, fsys afero.Fs, plan *planner.Plan, opts Options) (Result, error) {
	res := Result{Total: plan.Len()}
	for _, r := range plan.Renames {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := fsys.Rename(r.From, r.To); err != nil {
			return res, &RenameError{From: r.From, To: r.To, Err: err}
		}
		res.Renamed++
		if opts.OnRename != nil {
			opts.OnRename(res.Renamed, r)
		}
	}
	return res, nil
}
