package naming

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// splitName splits path into its parent prefix (with its trailing separator)
// and its final component. Trailing separators and trailing "." components
// are dropped, so "dir/a.txt/" and "dir/a.txt/." both yield ("dir/",
// "a.txt"). Nothing else is cleaned: ".." stays in dir so that the OS, not a
// lexical rewrite, decides where the parent is when symlinks are involved.
func splitName(path string) (dir, name string) {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]

	end := len(rest)
	for {
		for end > 1 && os.IsPathSeparator(rest[end-1]) {
			end--
		}
		if end >= 2 && rest[end-1] == '.' && os.IsPathSeparator(rest[end-2]) {
			end--
			continue
		}
		break
	}
	rest = rest[:end]

	i := len(rest) - 1
	for i >= 0 && !os.IsPathSeparator(rest[i]) {
		i--
	}
	return vol + rest[:i+1], rest[i+1:]
}

// FileName returns the final component of path, or an *UnusableFilenameError
// when there is none or it is not valid UTF-8. Trailing separators are
// ignored, so "dir/a.txt/" yields "a.txt".
func FileName(path string) (string, error) {
	_, name := splitName(path)
	switch name {
	case "", ".", "..":
		return "", &UnusableFilenameError{Path: path}
	}
	if !utf8.ValidString(name) {
		return "", &UnusableFilenameError{Path: path, InvalidUTF8: true}
	}
	return name, nil
}

// Basename returns the portion of the file name before its first dot, or the
// whole file name when it has no dot. "a_1.tar.gz" yields "a_1"; ".hidden"
// yields "".
func Basename(path string) (string, error) {
	name, err := FileName(path)
	if err != nil {
		return "", err
	}
	base, _, _ := strings.Cut(name, ".")
	return base, nil
}
