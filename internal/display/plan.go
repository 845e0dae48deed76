// Package display renders the rename plan and top-level errors for humans
// (and, for the plan, for machines via JSON or YAML).
package display

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/seqmv/internal/config"
	"github.com/backmassage/seqmv/internal/planner"
	"github.com/backmassage/seqmv/internal/term"
)

// RenderPlan writes plan to w in the given format.
//
//	text: one "Rename SRC to DST" line per pair, in plan order
//	json: an array of {"from", "to"} objects
//	yaml: a list of {from, to} mappings
func RenderPlan(w io.Writer, plan *planner.Plan, format config.OutputFormat) error {
	switch format {
	case config.FormatText, "":
		return renderText(w, plan)
	case config.FormatJSON:
		return renderJSON(w, plan)
	case config.FormatYAML:
		return renderYAML(w, plan)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderText(w io.Writer, plan *planner.Plan) error {
	for _, r := range plan.Renames {
		_, err := fmt.Fprintf(w, "%s %s %s %s\n",
			term.Keyword.Render("Rename"), term.Source.Render(r.From),
			term.Keyword.Render("to"), term.Dest.Render(r.To))
		if err != nil {
			return err
		}
	}
	return nil
}

// renames never returns nil so empty plans encode as [] rather than null.
func renames(plan *planner.Plan) []planner.Rename {
	if plan.Renames == nil {
		return []planner.Rename{}
	}
	return plan.Renames
}

func renderJSON(w io.Writer, plan *planner.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(renames(plan))
}

func renderYAML(w io.Writer, plan *planner.Plan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(renames(plan)); err != nil {
		return err
	}
	return enc.Close()
}
