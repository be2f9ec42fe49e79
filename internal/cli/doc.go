// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution for hexlens.
//
// This package implements the non-interactive commands and the interactive
// REPL, leaving the full-screen TUI to the ui packages.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Parsed command-line arguments with global and command-specific flags
//   - JSONResponse: Structured output for scripting and piping
//
// # Usage
//
// Parse and execute commands:
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdHex:
//	    return cli.HandleHex(args)
//	case cli.CmdNumber:
//	    return cli.HandleNumber(args)
//	// ... other commands
//	}
//
// # Commands Overview
//
//   - hex: Convert a hex byte sequence
//   - number: Convert an integer (decimal, hex, octal, or binary literal)
//   - text: Convert a text string to bytes
//   - repl: Interactive conversion shell
//   - config: Configuration management
//
// All conversion commands support --json for machine-readable output.
package cli
