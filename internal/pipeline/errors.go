package pipeline

import "fmt"

// Stage labels used in StageError. They read as the start of a sentence
// finished by " due to: <cause>".
const (
	StageBaseDir = "No current working directory"
	StageRead    = "Could not read paths"
	StageHead    = "Could not select head"
	StagePlan    = "Could not create rename plan"
	StageShow    = "Could not print rename plan"
	StageCheck   = "Source check failed"
	StageExecute = "Failure while executing rename plan"
)

// StageError records which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s due to: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
