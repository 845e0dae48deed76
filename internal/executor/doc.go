// Package executor applies a rename plan to a filesystem, one pair at a time
// in plan order.
//
// Renames are best-effort sequential, not transactional: the first failure
// stops the run and earlier renames stay applied. There is no retry and no
// rollback; the returned Result says how far the run got.
package executor
