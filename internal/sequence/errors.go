package sequence

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoInputFiles is returned when there are no inputs and no forced prefix.
var ErrNoInputFiles = errors.New("no input files")

// MultipleHeadsError reports input files that already belong to two or more
// different sequences. Heads is sorted; Sources maps each head to the first
// input path that inferred it.
type MultipleHeadsError struct {
	Heads   []string
	Sources map[string]string
}

func (e *MultipleHeadsError) Error() string {
	return fmt.Sprintf("inputs belong to multiple sequences: %s", strings.Join(e.Heads, ", "))
}
