// Package gojson parses JSON text into an immutable tree of typed values
// and serializes such trees back to text. It is a library component: input
// arrives as already-available text and output is returned as a string,
// with file reading offered only as a thin convenience wrapper. Parsing is
// fully synchronous and every call uses fresh lexer and parser state, so
// concurrent parses are safe through isolation.
package gojson

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/uzleo/gojson/internal/errors"
)

// Parse reads all of r and parses it as a single JSON document.
func Parse(reader io.Reader) (Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return Value{}, errors.NewInputError("failed to read input", err)
	}
	return ParseString(string(data))
}

// ParseString parses a JSON document from a string. The string is scanned
// into tokens and the tokens are consumed by a recursive-descent parser;
// any lex or grammar failure aborts the whole parse with no partial result.
func ParseString(jsonString string) (Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return Value{}, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	tokens, err := Lex(jsonString)
	if err != nil {
		return Value{}, err
	}
	return ParseTokens(jsonString, tokens)
}

// ParseFile parses a JSON document from a file path. File access failures
// are reported as input errors before any lexing occurs.
func ParseFile(filePath string) (Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return Value{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return Value{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return Value{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
