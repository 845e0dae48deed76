// Package naming derives the comparison keys used to group files into a
// sequence and builds the renamed path for a sequence member.
//
// Files:
//   - basename.go: Basename, the final-component name up to its first dot.
//   - membership.go: InferMembership, the "<head><sep><rest>" heuristic.
//   - outputpath.go: Destination, parent dir + head + sep + original name.
//   - errors.go: UnusableFilenameError.
//
// Everything here is pure path inspection; nothing touches the filesystem.
package naming
