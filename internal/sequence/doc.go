// Package sequence picks the single head (sequence prefix) used for a batch
// of input files.
//
// A head is either forced by configuration or resolved from the inputs:
// exactly one already-sequenced member wins outright; two or more distinct
// members are a conflict; otherwise the lexicographically least basename is
// used.
package sequence
