// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for hexlens.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ConvertConfig: Default conversion settings (byte order, width, representation)
//   - UIConfig: TUI appearance settings
//   - REPLConfig: Interactive shell settings
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (HEXLENS_*)
//   - ~/.hexlens/config.toml
//   - ~/.hexlens/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	endian := cfg.Endianness()
//	width := cfg.Convert.Width
package config
