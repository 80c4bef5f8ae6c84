package errors

import (
	"fmt"
)

// ErrorCode represents specific error types raised by schematics
type ErrorCode string

const (
	// Precondition errors
	ErrCodeInvalidOptions  ErrorCode = "INVALID_OPTIONS"
	ErrCodeMissingManifest ErrorCode = "MISSING_MANIFEST"
	ErrCodeInvalidManifest ErrorCode = "INVALID_MANIFEST"
	ErrCodeFileExists      ErrorCode = "FILE_EXISTS"

	// Rendering and storage errors
	ErrCodeTemplate        ErrorCode = "TEMPLATE_RENDER_FAILED"
	ErrCodeFileOperations  ErrorCode = "FILE_OPERATIONS_FAILED"
	ErrCodeManifestUpdate  ErrorCode = "MANIFEST_UPDATE_FAILED"
	ErrCodeConfigOperation ErrorCode = "CONFIG_OPERATION_FAILED"
)

// Sentinels for errors.Is. Any SchematicError with the same code matches.
var (
	ErrInvalidOptions  = &SchematicError{Code: ErrCodeInvalidOptions, Message: "invalid options"}
	ErrMissingManifest = &SchematicError{Code: ErrCodeMissingManifest, Message: "manifest not found"}
	ErrInvalidManifest = &SchematicError{Code: ErrCodeInvalidManifest, Message: "manifest is not a JSON object"}
	ErrFileExists      = &SchematicError{Code: ErrCodeFileExists, Message: "file already exists"}
)

// SchematicError represents a structured error raised while generating files
type SchematicError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (se *SchematicError) Error() string {
	msg := fmt.Sprintf("[%s]: %s", se.Code, se.Message)
	if se.Path != "" {
		msg = fmt.Sprintf("[%s] %s: %s", se.Code, se.Path, se.Message)
	}
	if se.Cause != nil {
		msg += ": " + se.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause error
func (se *SchematicError) Unwrap() error {
	return se.Cause
}

// Is reports whether target is a SchematicError carrying the same code.
func (se *SchematicError) Is(target error) bool {
	t, ok := target.(*SchematicError)
	if !ok {
		return false
	}
	return se.Code == t.Code
}

// New creates a new structured schematic error
func New(code ErrorCode, message string) *SchematicError {
	return &SchematicError{
		Code:    code,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Newf creates a new structured schematic error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SchematicError {
	return New(code, fmt.Sprintf(format, args...))
}

// WithPath adds the offending path to the error
func (se *SchematicError) WithPath(path string) *SchematicError {
	se.Path = path
	return se
}

// WithCause adds the underlying cause error
func (se *SchematicError) WithCause(err error) *SchematicError {
	se.Cause = err
	return se
}

// WithContext adds arbitrary context to the error
func (se *SchematicError) WithContext(key string, value interface{}) *SchematicError {
	if se.Context == nil {
		se.Context = make(map[string]interface{})
	}
	se.Context[key] = value
	return se
}

// AsSchematicError checks if an error is a SchematicError
func AsSchematicError(err error) (*SchematicError, bool) {
	for err != nil {
		if se, ok := err.(*SchematicError); ok {
			return se, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}

// HasErrorCode checks if an error has a specific error code
func HasErrorCode(err error, code ErrorCode) bool {
	if se, ok := AsSchematicError(err); ok {
		return se.Code == code
	}
	return false
}

// WrapError wraps a regular error as a SchematicError
func WrapError(err error, code ErrorCode, message string) *SchematicError {
	return New(code, message).WithCause(err)
}

// Common error constructors

func NewInvalidOptionsError(format string, args ...interface{}) *SchematicError {
	return Newf(ErrCodeInvalidOptions, format, args...)
}

func NewMissingManifestError(path string) *SchematicError {
	return New(ErrCodeMissingManifest, "manifest not found").WithPath(path)
}

func NewInvalidManifestError(path string, cause error) *SchematicError {
	return New(ErrCodeInvalidManifest, "manifest is not a JSON object").
		WithPath(path).
		WithCause(cause)
}

func NewFileExistsError(path string) *SchematicError {
	return New(ErrCodeFileExists, "file already exists").WithPath(path)
}
