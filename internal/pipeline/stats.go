package pipeline

import "github.com/backmassage/seqmv/internal/sequence"

// RunStats tracks what one run saw, planned, and did.
type RunStats struct {
	Inputs   int           // Paths after exclusion.
	Excluded int           // Paths dropped by --exclude.
	Head     sequence.Head // Resolved or forced head.
	Planned  int           // Renames in the plan.
	Skipped  int           // Inputs already named for the head.
	Renamed  int           // Renames applied.
}

// Pending returns the planned renames that were not applied.
func (s *RunStats) Pending() int {
	return s.Planned - s.Renamed
}
