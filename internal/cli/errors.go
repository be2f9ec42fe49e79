// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for all CLI commands in hexlens.
//
// STANDARDIZED PATTERN:
//   - ALWAYS return errors (never just print and return nil)
//   - Let the caller decide how to display errors
//   - Use structured error types for better error handling
//
// ERROR HANDLING: Errors must not be silently ignored
package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/hexlens/internal/config"
	"github.com/jeranaias/hexlens/internal/convert"
)

// =============================================================================
// EXIT CODES - Specific codes for different error categories
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitRangeError indicates a value outside the representable range
	ExitRangeError = 4
)

// =============================================================================
// ERROR TYPES FOR STRUCTURED ERROR HANDLING
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "hex", "config")
	Action  string // Action being performed (e.g., "parse", "set")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure for user input.
type ValidationError struct {
	Field   string // Field that failed validation
	Value   string // Value that was provided
	Reason  string // Why validation failed
	Example string // Example of valid value (optional)
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.Value != "" {
		msg += fmt.Sprintf(" (got: %s)", e.Value)
	}
	return msg
}

// =============================================================================
// ERROR CONSTRUCTION HELPERS
// =============================================================================

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{
		Command: command,
		Action:  action,
		Reason:  reason,
		Err:     err,
	}
}

// NewValidationError creates a new validation error.
func NewValidationError(field, value, reason string) error {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// NewValidationErrorWithExample creates a validation error with an example.
func NewValidationErrorWithExample(field, value, reason, example string) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Reason:  reason,
		Example: example,
	}
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode maps an error to a process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var formatErr *convert.FormatError
	var widthErr *convert.WidthError
	var rangeErr *convert.RangeError
	var validationErr *ValidationError
	var cfgErrs config.ValidateErrors
	var cmdErr *CommandError

	switch {
	case errors.As(err, &formatErr), errors.As(err, &widthErr), errors.As(err, &validationErr):
		return ExitUsageError
	case errors.As(err, &rangeErr):
		return ExitRangeError
	case errors.As(err, &cfgErrs):
		return ExitConfigError
	case errors.As(err, &cmdErr) && cmdErr.Command == "config":
		return ExitConfigError
	default:
		return ExitGeneralError
	}
}

// =============================================================================
// ERROR DISPLAY HELPERS
// =============================================================================

// DisplayError displays an error in a consistent format.
// In JSON mode, outputs structured JSON error.
// In normal mode, displays formatted error message.
func DisplayError(err error, jsonMode bool) {
	if err == nil {
		return
	}

	if jsonMode {
		DisplayErrorJSON(err)
		return
	}

	fmt.Println()
	fmt.Printf("%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())

	// Validation errors carry a working invocation to suggest
	var valErr *ValidationError
	if errors.As(err, &valErr) && valErr.Example != "" {
		fmt.Println(RenderWrapped(DimStyle, "Try: "+valErr.Example))
	}
	fmt.Println()
}

// DisplayErrorJSON outputs an error inside the standard JSONResponse
// envelope, with the typed detail fields under data.
func DisplayErrorJSON(err error) {
	resp := NewJSONErrorResponse(errorCommand(err), err)
	resp.Data = errorDetail(err)
	resp.Print()
}

// errorCommand extracts the originating command when the error carries one.
func errorCommand(err error) string {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Command
	}
	return ""
}

// errorDetail builds the per-error-type JSON payload.
func errorDetail(err error) map[string]interface{} {
	var cmdErr *CommandError
	var valErr *ValidationError
	var formatErr *convert.FormatError
	var widthErr *convert.WidthError
	var rangeErr *convert.RangeError

	switch {
	case errors.As(err, &cmdErr):
		detail := map[string]interface{}{
			"error_type": "command_error",
			"command":    cmdErr.Command,
			"action":     cmdErr.Action,
			"reason":     cmdErr.Reason,
		}
		if cmdErr.Err != nil {
			detail["underlying_error"] = cmdErr.Err.Error()
		}
		return detail

	case errors.As(err, &valErr):
		detail := map[string]interface{}{
			"error_type": "validation_error",
			"field":      valErr.Field,
			"value":      valErr.Value,
			"reason":     valErr.Reason,
		}
		if valErr.Example != "" {
			detail["example"] = valErr.Example
		}
		return detail

	case errors.As(err, &formatErr):
		return map[string]interface{}{
			"error_type": "format_error",
			"input":      formatErr.Input,
			"reason":     formatErr.Reason,
		}

	case errors.As(err, &widthErr):
		return map[string]interface{}{
			"error_type": "width_error",
			"width":      widthErr.Got,
		}

	case errors.As(err, &rangeErr):
		return map[string]interface{}{
			"error_type":     "range_error",
			"value":          rangeErr.Value,
			"width":          rangeErr.Width,
			"representation": rangeErr.Repr.Flag(),
		}
	}

	return map[string]interface{}{"error_type": "generic_error"}
}

// HandleError is a convenience function that displays and returns an error.
func HandleError(err error, jsonMode bool) error {
	if err == nil {
		return nil
	}

	DisplayError(err, jsonMode)
	return err
}
