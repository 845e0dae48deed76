package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/backmassage/seqmv/internal/naming"
	"github.com/backmassage/seqmv/internal/sequence"
	"github.com/backmassage/seqmv/internal/term"
)

// FormatError renders a failed stage as "<stage> due to: <cause>". A
// sequence conflict adds one line per conflicting head with the input it
// came from, plus a hint on how to resolve it.
func FormatError(stage string, err error) string {
	var b strings.Builder
	b.WriteString(term.Stage.Render(stage))
	b.WriteString(" due to: ")
	b.WriteString(term.Cause.Render(causeText(err)))

	var mhe *sequence.MultipleHeadsError
	if errors.As(err, &mhe) {
		width := 0
		for _, h := range mhe.Heads {
			width = max(width, len(h))
		}
		for _, h := range mhe.Heads {
			fmt.Fprintf(&b, "\n  %-*s  %s", width, h, term.Detail.Render("(from "+mhe.Sources[h]+")"))
		}
		b.WriteString("\n" + term.Detail.Render("Force a head with --prefix, or split the input by sequence."))
	}
	return b.String()
}

func causeText(err error) string {
	var ufe *naming.UnusableFilenameError
	switch {
	case errors.As(err, &ufe) && ufe.InvalidUTF8:
		return fmt.Sprintf("unusable filename %q (file name is not valid UTF-8)", ufe.Path)
	case errors.As(err, &ufe):
		return fmt.Sprintf("unusable filename %q (no file name component)", ufe.Path)
	case errors.Is(err, sequence.ErrNoInputFiles):
		return "no input files (pass paths as arguments, via --from, or on stdin)"
	default:
		return err.Error()
	}
}
