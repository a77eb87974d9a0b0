// Package cli provides the command-line interface for setup sheets.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Error codes for structured error responses
const (
	ErrCodeRecordNotFound = "RECORD_NOT_FOUND"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeMalformedData  = "MALFORMED_DATA"
	ErrCodeSaveFailed     = "SAVE_FAILED"
	ErrCodeStorage        = "STORAGE_ERROR"
)

// JSONError represents a structured error response for --json output
type JSONError struct {
	Error   bool                   `json:"error"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ExitWithError outputs an error message and exits.
// If --json flag is set, outputs structured JSON error to stdout.
// Otherwise outputs plain text to stderr.
func ExitWithError(code int, errCode, message string, details map[string]interface{}) {
	if GetJSONOutput() {
		errResp := JSONError{
			Error:   true,
			Code:    errCode,
			Message: message,
			Details: details,
		}
		data, _ := json.Marshal(errResp)
		fmt.Println(string(data))
	} else {
		fmt.Fprintln(os.Stderr, "Error:", message)
	}
	Exit(code)
}

// ExitRecordNotFound outputs a record not found error
func ExitRecordNotFound(id int64) {
	ExitWithError(1, ErrCodeRecordNotFound,
		fmt.Sprintf("sheet %d not found", id),
		map[string]interface{}{"id": id})
}

// ExitValidationError outputs a validation error
func ExitValidationError(message string) {
	ExitWithError(2, ErrCodeValidation, message, nil)
}

// ExitSaveFailed outputs a generic save failure
func ExitSaveFailed(err error) {
	ExitWithError(1, ErrCodeSaveFailed,
		fmt.Sprintf("save failed: %v", err), nil)
}
