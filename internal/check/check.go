// Package check provides the --check preflight: before any rename runs, it
// verifies that every planned source is present, so a plan built from a
// stale path list fails before touching the filesystem.
package check

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/backmassage/seqmv/internal/planner"
)

// ErrMissingSources is matched by errors.Is on a *MissingSourcesError.
var ErrMissingSources = errors.New("planned sources are missing")

// MissingSourcesError lists the planned sources that could not be found.
type MissingSourcesError struct {
	Paths []string
}

func (e *MissingSourcesError) Error() string {
	return fmt.Sprintf("%d planned source(s) missing: %s", len(e.Paths), strings.Join(e.Paths, ", "))
}

func (e *MissingSourcesError) Is(target error) bool { return target == ErrMissingSources }

// Logger is the minimal logging interface needed by Sources.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Sources stats every planned source through fsys. Unlike the executor it
// does not stop at the first problem: all missing sources are reported at
// once. Directories count as present; renaming them is the OS's call.
func Sources(fsys afero.Fs, plan *planner.Plan, log Logger, verbose bool) error {
	var missing []string
	for _, r := range plan.Renames {
		ok, err := afero.Exists(fsys, r.From)
		if err != nil {
			return fmt.Errorf("stat %s: %w", r.From, err)
		}
		if !ok {
			log.Warn("Missing source: %s", r.From)
			missing = append(missing, r.From)
			continue
		}
		log.Debug(verbose, "Source ok: %s", r.From)
	}
	if len(missing) > 0 {
		return &MissingSourcesError{Paths: missing}
	}
	return nil
}
