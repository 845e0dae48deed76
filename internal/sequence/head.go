package sequence

import "fmt"

// Provenance records how a Head was chosen. It is informational only.
type Provenance int

const (
	// Forced heads come from configuration.
	Forced Provenance = iota
	// LeastBasename heads are the lexicographically least input basename.
	LeastBasename
	// InferredMember heads come from an input already named "<head><sep><rest>".
	InferredMember
)

func (p Provenance) String() string {
	switch p {
	case Forced:
		return "forced"
	case LeastBasename:
		return "least basename"
	case InferredMember:
		return "existing sequence member"
	default:
		return fmt.Sprintf("Provenance(%d)", int(p))
	}
}

// Head is the resolved sequence prefix. Source is the input path it was
// derived from; it is empty for forced heads.
type Head struct {
	Name       string
	Source     string
	Provenance Provenance
}

func (h Head) String() string {
	if h.Source == "" {
		return fmt.Sprintf("%q (%s)", h.Name, h.Provenance)
	}
	return fmt.Sprintf("%q (%s, from %s)", h.Name, h.Provenance, h.Source)
}
