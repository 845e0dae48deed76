package naming

import "fmt"

// UnusableFilenameError reports a path without a final component that can be
// read as text (e.g. "", "/", "..", or a name that is not valid UTF-8).
type UnusableFilenameError struct {
	Path        string
	InvalidUTF8 bool // The component exists but is not valid UTF-8.
}

func (e *UnusableFilenameError) Error() string {
	return fmt.Sprintf("unusable filename %q", e.Path)
}
