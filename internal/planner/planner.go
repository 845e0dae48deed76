package planner

import "github.com/backmassage/seqmv/internal/naming"

// BuildPlan maps every path to its sequence destination under head.
//
// A path whose basename already infers head is skipped, which makes the
// plan idempotent: applying it and rebuilding over the renamed files yields
// an empty plan. Paths keep their input order.
//
// The first unusable filename aborts the build; no partial plan is returned.
func BuildPlan(sep, head string, paths []string) (*Plan, error) {
	plan := &Plan{Head: head, Separator: sep}

	for _, path := range paths {
		base, err := naming.Basename(path)
		if err != nil {
			return nil, err
		}
		if existing, ok := naming.InferMembership(sep, base); ok && existing == head {
			plan.Skipped = append(plan.Skipped, path)
			continue
		}
		dest, err := naming.Destination(path, head, sep)
		if err != nil {
			return nil, err
		}
		plan.Renames = append(plan.Renames, Rename{From: path, To: dest})
	}
	return plan, nil
}
