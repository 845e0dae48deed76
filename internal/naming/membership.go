package naming

import "strings"

// InferMembership reports whether basename already looks like a sequence
// member, i.e. "<head><sep><rest>" split on the first sep with both sides
// non-empty. It returns the head when it does.
//
// This is a heuristic: any basename that happens to contain sep with text on
// both sides counts as sequenced.
//
//	InferMembership("_", "a_bc")  // "a", true
//	InferMembership("_", "_bc")   // "", false
//	InferMembership("_", "a_")    // "", false
//	InferMembership("--", "x--y") // "x", true
func InferMembership(sep, basename string) (string, bool) {
	if sep == "" {
		return "", false
	}
	head, rest, found := strings.Cut(basename, sep)
	if !found || head == "" || rest == "" {
		return "", false
	}
	return head, true
}
