package analyzer

import "errors"

var (
	ErrInvalidInput  = errors.New("all fields are required")
	ErrConfiguration = errors.New("OpenAI API key not configured")

	errNoJSON             = errors.New("no JSON object found in response")
	errIncompleteAnalysis = errors.New("response JSON is missing analysis sections")
)

// AnalysisError reports a failure after validation, such as an upstream
// network error. Its message is shown to the caller.
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
