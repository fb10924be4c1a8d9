package analysis

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures so callers can map them to a transport
// status without string matching.
type Kind string

const (
	KindValidation Kind = "validation"
	KindExtraction Kind = "extraction"
	KindScoring    Kind = "scoring"
	KindGeneration Kind = "generation"
)

// PipelineError is the typed failure every stage reports. Generation errors
// are recovered inside the pipeline via the template fallback; all other
// kinds are fatal to the request.
type PipelineError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *PipelineError {
	return &PipelineError{Kind: KindValidation, Message: message}
}

func NewExtractionError(message string, err error) *PipelineError {
	return &PipelineError{Kind: KindExtraction, Message: message, Err: err}
}

func NewScoringError(message string, err error) *PipelineError {
	return &PipelineError{Kind: KindScoring, Message: message, Err: err}
}

func NewGenerationError(message string, err error) *PipelineError {
	return &PipelineError{Kind: KindGeneration, Message: message, Err: err}
}

// KindOf extracts the failure kind from an error chain. Unclassified errors
// return an empty Kind.
func KindOf(err error) Kind {
	var perr *PipelineError
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return ""
}

// UserMessage returns the human-readable part of a pipeline failure, falling
// back to the raw error text for unclassified errors.
func UserMessage(err error) string {
	var perr *PipelineError
	if errors.As(err, &perr) {
		return perr.Message
	}
	return err.Error()
}
