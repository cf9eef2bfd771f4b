// ABOUTME: Structured per-query errors for the pipeline stages
// ABOUTME: A failed stage is reported with stage + cause, never as a crash
package pipeline

import "fmt"

// Stage identifies where in the query pipeline a failure happened.
type Stage string

const (
	StageRetrieve Stage = "retrieve"
	StageAssemble Stage = "assemble"
	StageGenerate Stage = "generate"
)

// StageError wraps a stage failure so callers can tell a retrieval problem
// from a generation problem without parsing messages.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
