package sequence

import (
	"sort"

	"github.com/backmassage/seqmv/internal/config"
	"github.com/backmassage/seqmv/internal/naming"
)

// Resolve returns the head for paths under cfg. A forced prefix bypasses
// resolution entirely, even when paths is empty.
func Resolve(cfg *config.Config, paths []string) (Head, error) {
	if cfg.ForcedPrefix != "" {
		return Head{Name: cfg.ForcedPrefix, Provenance: Forced}, nil
	}
	return FindHead(cfg.Separator, paths)
}

// FindHead resolves the head for paths in a single pass.
//
// Every basename is inspected once. Inferred heads are keyed by name and
// candidate basenames by value; in both maps the first path seen for a key is
// the one retained, so the reported Source is deterministic for a given input
// order.
//
// The first unusable filename aborts the pass and is returned as-is.
func FindHead(sep string, paths []string) (Head, error) {
	inferred := make(map[string]string)
	candidates := make(map[string]string)

	for _, path := range paths {
		base, err := naming.Basename(path)
		if err != nil {
			return Head{}, err
		}
		if head, ok := naming.InferMembership(sep, base); ok {
			if _, seen := inferred[head]; !seen {
				inferred[head] = path
			}
			continue
		}
		if _, seen := candidates[base]; !seen {
			candidates[base] = path
		}
	}

	switch len(inferred) {
	case 0:
	case 1:
		for name, source := range inferred {
			return Head{Name: name, Source: source, Provenance: InferredMember}, nil
		}
	default:
		return Head{}, &MultipleHeadsError{Heads: sortedKeys(inferred), Sources: inferred}
	}

	if len(candidates) == 0 {
		return Head{}, ErrNoInputFiles
	}
	least := sortedKeys(candidates)[0]
	return Head{Name: least, Source: candidates[least], Provenance: LeastBasename}, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
