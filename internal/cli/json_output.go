// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - JSON output support for scripting and automation.
//
// Provides a standardized JSON output format for all CLI commands so
// conversions can be piped into other tools.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONResponse is the standardized response format for all CLI commands.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the ISO8601 timestamp when the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// ConversionData is the JSON payload for hex, number, and text commands.
type ConversionData struct {
	Input          string   `json:"input"`
	Mode           string   `json:"mode"` // "hex", "number", or "text"
	Endianness     string   `json:"endianness"`
	Representation string   `json:"representation"`
	Bytes          []string `json:"bytes"`              // Per-byte hex, memory order
	Hex            []string `json:"hex"`                // Grouped hex in byte order
	Unsigned       []uint64 `json:"unsigned,omitempty"` // Per-group unsigned values
	Signed         []int64  `json:"signed,omitempty"`   // Per-group signed values
	Binary         []string `json:"binary"`             // Per-byte binary, memory order
	ASCII          string   `json:"ascii"`
}

// ConfigData is the JSON payload for config show.
type ConfigData struct {
	Path   string            `json:"path"`
	Values map[string]string `json:"values"`
}

// VersionData is the JSON payload for the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Error:     nil,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a new error JSON response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Data:      nil,
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Print outputs the JSON response to stdout.
// Human-readable messages should go to stderr when JSON mode is enabled.
func (r *JSONResponse) Print() error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// String returns the JSON response as a string.
func (r *JSONResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"failed to marshal response: %s","timestamp":"%s"}`,
			err.Error(), time.Now().UTC().Format(time.RFC3339))
	}
	return string(data)
}

