package planner

import "fmt"

// Rename is one planned move of From to To.
type Rename struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

func (r Rename) String() string {
	return fmt.Sprintf("Rename %s to %s", r.From, r.To)
}

// Plan is the ordered rename plan for one batch. It is produced by BuildPlan
// and consumed read-only by the executor and display packages.
type Plan struct {
	Head      string   // Head every destination is prefixed with.
	Separator string   // Separator between Head and the original name.
	Renames   []Rename // In input order.
	Skipped   []string // Inputs already named for Head, in input order.
}

// Len returns the number of planned renames.
func (p *Plan) Len() int { return len(p.Renames) }

// Empty reports whether the plan has nothing to rename.
func (p *Plan) Empty() bool { return len(p.Renames) == 0 }
