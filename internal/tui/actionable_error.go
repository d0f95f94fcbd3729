// Package tui provides terminal output components for wic.
package tui

// ActionableError wraps an error with an actionable suggestion.
// Used to provide users with clear next steps when errors occur.
//
// Example usage:
//
//	err := NewActionableError("build directory not found", "Run: source oe-init-build-env")
//	output.Error(err)
//	// Outputs: ✗ build directory not found
//	//          ▸ Try: source oe-init-build-env
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion provides actionable guidance for resolving the error.
	// Should start with a verb (e.g., "Run: bitbake core-image-minimal").
	Suggestion string

	// Context provides optional additional information about the error.
	// When present, it is appended to the message in parentheses.
	Context string
}

// NewActionableError creates a new ActionableError with message and suggestion.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// Error implements the error interface.
// Returns the message with context if provided, e.g., "rootfs not found (/path/to/dir)".
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// WithContext adds optional context to the error.
// Returns the same error for method chaining.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}

// GetSuggestion returns the suggestion for this error.
// Used by output formatters to extract the suggestion for display.
func (e *ActionableError) GetSuggestion() string {
	return e.Suggestion
}

// GetContext returns the context for this error.
// Used by output formatters to extract the context for structured output.
func (e *ActionableError) GetContext() string {
	return e.Context
}
