package schema

import "fmt"

// KeywordError reports a failed schema keyword that has no kind in the
// validation error taxonomy (for example multipleOf or uniqueItems).
type KeywordError struct {
	// Path is the location of the failing value (e.g., "#/items/0/name")
	Path string

	// Keyword is the schema keyword that failed (multipleOf, uniqueItems, etc.)
	Keyword string

	// Message is the validator's own description of the failure
	Message string
}

// NewKeywordError creates a new keyword error.
func NewKeywordError(path, keyword, message string) *KeywordError {
	return &KeywordError{
		Path:    path,
		Keyword: keyword,
		Message: message,
	}
}

// Error implements the error interface.
func (e *KeywordError) Error() string {
	return fmt.Sprintf("validation failed at %s (%s): %s", e.Path, e.Keyword, e.Message)
}

// Is implements error equality checking for errors.Is().
func (e *KeywordError) Is(target error) bool {
	t, ok := target.(*KeywordError)
	if !ok {
		return false
	}
	return e.Path == t.Path && e.Keyword == t.Keyword
}

// CompileError reports a schema that could not be loaded or compiled.
type CompileError struct {
	// Name identifies the schema (usually its file path)
	Name string

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling schema %s: %v", e.Name, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CompileError) Unwrap() error {
	return e.Cause
}
