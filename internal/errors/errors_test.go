package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read input",
				Err:     errors.New("file not found"),
			},
			expected: "input: failed to read input: file not found",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeParse,
				Message: "invalid JSON syntax",
				Err:     nil,
			},
			expected: "parse: invalid JSON syntax",
		},
		{
			name: "lex error with sentinel",
			appError: &AppError{
				Type:    ErrorTypeLex,
				Message: "string starting at offset 3 was not terminated",
				Err:     ErrUnterminatedString,
			},
			expected: "lex: string starting at offset 3 was not terminated: string literal was not terminated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := &AppError{
		Type:    ErrorTypeInput,
		Message: "test message",
		Err:     wrappedErr,
	}

	result := appErr.Unwrap()
	assert.Equal(t, wrappedErr, result)
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		target   error
		expected bool
	}{
		{
			name: "same type",
			appError: &AppError{
				Type:    ErrorTypeLex,
				Message: "test message",
			},
			target: &AppError{
				Type:    ErrorTypeLex,
				Message: "another message",
			},
			expected: true,
		},
		{
			name: "different type",
			appError: &AppError{
				Type:    ErrorTypeLex,
				Message: "test message",
			},
			target: &AppError{
				Type:    ErrorTypeParse,
				Message: "test message",
			},
			expected: false,
		},
		{
			name: "not an AppError",
			appError: &AppError{
				Type:    ErrorTypeValue,
				Message: "test message",
			},
			target:   errors.New("plain error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Is(tt.target)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConstructors(t *testing.T) {
	wrapped := errors.New("cause")
	tests := []struct {
		name     string
		build    func(string, error) *AppError
		expected ErrorType
	}{
		{"input", NewInputError, ErrorTypeInput},
		{"lex", NewLexError, ErrorTypeLex},
		{"parse", NewParseError, ErrorTypeParse},
		{"value", NewValueError, ErrorTypeValue},
		{"output", NewOutputError, ErrorTypeOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build("message", wrapped)
			assert.Equal(t, tt.expected, err.Type)
			assert.Equal(t, "message", err.Message)
			assert.True(t, errors.Is(err, wrapped))
		})
	}
}

func TestSentinelUnwrapping(t *testing.T) {
	err := NewParseError("trailing comma before ']' at offset 5", ErrTrailingComma)
	assert.True(t, errors.Is(err, ErrTrailingComma))
	assert.False(t, errors.Is(err, ErrMaxDepth))
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "lex app error",
			err:      NewLexError("unexpected character '@' at offset 6", ErrUnexpectedCharacter),
			expected: "JSON lexing error: unexpected character '@' at offset 6",
		},
		{
			name:     "parse app error",
			err:      NewParseError("trailing comma before '}'", ErrTrailingComma),
			expected: "JSON parsing error: trailing comma before '}'",
		},
		{
			name:     "value app error",
			err:      NewValueError("Contains called on number, not an object", ErrTypeMismatch),
			expected: "Value access error: Contains called on number, not an object",
		},
		{
			name:     "bare empty-input sentinel",
			err:      ErrEmptyInput,
			expected: "Error: The input is empty. Please provide valid JSON data.",
		},
		{
			name:     "bare file-not-found sentinel",
			err:      ErrFileNotFound,
			expected: "Error: The specified file could not be found. Please check the file path.",
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			expected: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserFriendlyError(tt.err))
		})
	}
}
