package pipeline

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// maxLineBytes bounds one path line.
const maxLineBytes = 1 << 20

// ReadPaths reads a newline-delimited path list. Lines are taken verbatim
// apart from a trailing "\r"; blank lines are dropped.
func ReadPaths(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ResolvePaths prefixes relative entries with baseDir and leaves absolute ones
// alone, keeping input order. Mixed relative and absolute inputs are fine.
// Entries are not cleaned: "link/../a.txt" must keep its ".." for the OS to
// resolve, or the rename could land in a different directory.
func ResolvePaths(entries []string, baseDir string) []string {
	prefix := baseDir
	if prefix != "" && !os.IsPathSeparator(prefix[len(prefix)-1]) {
		prefix += string(filepath.Separator)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if filepath.IsAbs(e) {
			out = append(out, e)
			continue
		}
		out = append(out, prefix+e)
	}
	return out
}

// Exclude drops paths matching any doublestar pattern. A pattern matches
// either the whole path or, when it has no slash, just the file name, so
// "*.tmp" and "/photos/**/raw/*" both work. It returns the kept paths and
// the number dropped.
func Exclude(paths, patterns []string) ([]string, int) {
	if len(patterns) == 0 {
		return paths, 0
	}
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if excluded(p, patterns) {
			continue
		}
		kept = append(kept, p)
	}
	return kept, len(paths) - len(kept)
}

func excluded(path string, patterns []string) bool {
	slashed := filepath.ToSlash(path)
	name := filepath.Base(path)
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, slashed); err == nil && ok {
			return true
		}
		if !strings.Contains(pat, "/") {
			if ok, err := doublestar.Match(pat, name); err == nil && ok {
				return true
			}
		}
	}
	return false
}
