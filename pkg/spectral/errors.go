package spectral

import "errors"

// AnalysisError represents a failure in one of the pipeline stages. Every
// error is detected at the producing stage and carries a stable code so
// callers can branch without string matching.
type AnalysisError struct {
	Stage   string `json:"stage"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeConfiguration    = "CONFIGURATION"
	ErrCodeInsufficientData = "INSUFFICIENT_DATA"
	ErrCodeEmptyRegion      = "EMPTY_REGION"
	ErrCodeEmptyQuietRegion = "EMPTY_QUIET_REGION"
)

// NewAnalysisError creates a new analysis error
func NewAnalysisError(stage, code, message string, cause error) *AnalysisError {
	return &AnalysisError{
		Stage:   stage,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err is, or wraps, an AnalysisError carrying the
// given code
func IsCode(err error, code string) bool {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
