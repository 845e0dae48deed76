package naming

// Destination builds the renamed path for a sequence member:
//
//	<parent dir>/<head><sep><original file name>
//
// The parent is taken verbatim from path, so the member is renamed in place
// even when the path runs through ".." and symlinks. A bare relative name
// keeps no directory ("a.txt" -> "x_a.txt").
func Destination(path, head, sep string) (string, error) {
	name, err := FileName(path)
	if err != nil {
		return "", err
	}
	dir, _ := splitName(path)
	return dir + head + sep + name, nil
}
