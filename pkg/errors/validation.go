package errors

import (
	"unicode"
)

// maxPathLength bounds input paths accepted on the command line.
const maxPathLength = 4096

// ValidateInputPath validates a grid file path given by the user.
// The special path "-" (stdin) is accepted.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "input path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "input path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "input path contains invalid characters")
		}
	}

	return nil
}

// ValidateCoordinate checks that (row, col) addresses a cell of a rows x cols grid.
func ValidateCoordinate(row, col, rows, cols int) error {
	if row < 0 || row >= rows {
		return New(ErrCodeInvalidInput, "row %d out of range [0, %d)", row, rows)
	}
	if col < 0 || col >= cols {
		return New(ErrCodeInvalidInput, "column %d out of range [0, %d)", col, cols)
	}
	return nil
}
