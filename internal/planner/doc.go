// Package planner builds the rename plan for a batch: the ordered list of
// (source, destination) pairs that the executor applies.
//
// Implemented:
//   - Plan, Rename (types.go)
//   - BuildPlan: skips files already in the target sequence and maps the rest
//     to "<dir>/<head><sep><name>", preserving input order (planner.go)
//
// Building a plan never touches the filesystem.
package planner
