package dataingestion

import (
	"fmt"
	"path/filepath"
	"runtime"
)

type Stage int

const (
	StageIdle Stage = iota
	StageReading
	StageSplitting
	StageWriting
	StageCompleted
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageReading:
		return "reading"
	case StageSplitting:
		return "splitting"
	case StageWriting:
		return "writing"
	case StageCompleted:
		return "completed"
	case StageFailed:
		return "failed"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// IngestionError is the only error returned by DataIngestion.Run.
// File and Line point at the place in this package where the failure was caught.
type IngestionError struct {
	Stage Stage
	Op    string
	File  string
	Line  int
	Err   error
}

func newIngestionError(stage Stage, op string, err error) *IngestionError {
	e := &IngestionError{Stage: stage, Op: op, Err: err}
	if _, file, line, ok := runtime.Caller(2); ok {
		e.File = filepath.Base(file)
		e.Line = line
	}
	return e
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion failed at %s/%s [%s:%d]: %v",
		e.Stage, e.Op, e.File, e.Line, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// Cause lets github.com/pkg/errors.Cause walk past the wrapper.
func (e *IngestionError) Cause() error {
	return e.Err
}
