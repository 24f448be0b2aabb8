package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput          = errors.New("input is empty or contains only whitespace")
	ErrFileNotFound        = errors.New("file not found")
	ErrFileEmpty           = errors.New("file is empty")
	ErrInvalidFilePath     = errors.New("invalid file path")
	ErrNoInput             = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrUnterminatedString  = errors.New("string literal was not terminated")
	ErrInvalidLiteral      = errors.New("expected one of the literals true, false or null")
	ErrUnexpectedCharacter = errors.New("unexpected character in input")
	ErrInvalidNumber       = errors.New("invalid number literal")
	ErrInvalidEscape       = errors.New("invalid escape sequence in string")
	ErrTrailingComma       = errors.New("trailing comma before closing bracket or brace")
	ErrUnexpectedEnd       = errors.New("unexpected end of input")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrTrailingTokens      = errors.New("unexpected tokens after the root value")
	ErrMaxDepth            = errors.New("maximum nesting depth exceeded")
	ErrTypeMismatch        = errors.New("value has a different type")
	ErrKeyNotFound         = errors.New("key not found in object")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeLex     ErrorType = "lex"
	ErrorTypeParse   ErrorType = "parse"
	ErrorTypeValue   ErrorType = "value"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewLexError creates a new error related to tokenizing raw text
func NewLexError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeLex,
		Message: message,
		Err:     err,
	}
}

// NewParseError creates a new error related to the JSON grammar
func NewParseError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewValueError creates a new error related to value access
func NewValueError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeValue,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeLex:
			return fmt.Sprintf("JSON lexing error: %s", appErr.Message)
		case ErrorTypeParse:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeValue:
			return fmt.Sprintf("Value access error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrUnterminatedString) {
		return "Error: A string literal was not terminated. Please check your JSON syntax."
	}
	if errors.Is(err, ErrTrailingComma) {
		return "Error: Trailing commas are not allowed in JSON. Please remove the extra comma."
	}
	if errors.Is(err, ErrMaxDepth) {
		return "Error: The input is nested too deeply to be parsed."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
