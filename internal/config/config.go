// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for hexlens.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.hexlens/config.toml
//   - ~/.hexlens/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/hexlens/internal/convert"
	"github.com/jeranaias/hexlens/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete hexlens configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// Conversion defaults
	Convert ConvertConfig `toml:"convert" json:"convert"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// REPL configuration
	REPL REPLConfig `toml:"repl" json:"repl"`
}

// ConvertConfig contains the default conversion settings applied at startup.
type ConvertConfig struct {
	// Endianness is the default byte order: "little" or "big"
	Endianness string `toml:"endianness" json:"endianness"`
	// Width is the default width in bytes for number conversions (1-8)
	Width int `toml:"width" json:"width"`
	// Representation is the default signed representation:
	// "unsigned", "twos", "ones", "signmag"
	Representation string `toml:"representation" json:"representation"`
	// GroupSize is the default grouping: 1, 2, 4, or 8 bytes per group.
	// 0 selects custom grouping via GroupPattern.
	GroupSize int `toml:"group_size" json:"group_size"`
	// GroupPattern is the custom grouping pattern (e.g., "1,1,6").
	// Only used when GroupSize is 0.
	GroupPattern string `toml:"group_pattern" json:"group_pattern"`
	// ThousandsSeparator inserts separators into large decimal values
	ThousandsSeparator bool `toml:"thousands_separator" json:"thousands_separator"`
}

// UIConfig contains UI-related configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", or "auto"
	Theme string `toml:"theme" json:"theme"`
	// CompactMode reduces padding in the TUI
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
	// ShowBinary shows the per-byte binary row in the TUI
	ShowBinary bool `toml:"show_binary" json:"show_binary"`
	// WelcomeCompleted skips the welcome screen once set
	WelcomeCompleted bool `toml:"welcome_completed" json:"welcome_completed"`
}

// REPLConfig contains interactive shell configuration.
type REPLConfig struct {
	// HistoryEnabled persists REPL input history to the config directory
	HistoryEnabled bool `toml:"history_enabled" json:"history_enabled"`
	// HistorySize is the maximum number of history entries kept
	HistorySize int `toml:"history_size" json:"history_size"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Convert: ConvertConfig{
			Endianness:         "little",
			Width:              4,
			Representation:     "twos",
			GroupSize:          1,
			GroupPattern:       "",
			ThousandsSeparator: true,
		},

		UI: UIConfig{
			Theme:            "dark",
			CompactMode:      false,
			ShowBinary:       true,
			WelcomeCompleted: false,
		},

		REPL: REPLConfig{
			HistoryEnabled: true,
			HistorySize:    500,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the hexlens configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".hexlens"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// HistoryPath returns the path to the REPL history file.
func HistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
// CONFIG: Comprehensive validation ensures safe configuration
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	// Try TOML first
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				cfg.ApplyEnvOverrides()
				if err := cfg.Validate(); err != nil {
					return nil, fmt.Errorf("invalid config: %w", err)
				}
				return cfg, nil
			}
		}
	}

	// Try JSON as fallback
	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				cfg.ApplyEnvOverrides()
				if err := cfg.Validate(); err != nil {
					return nil, fmt.Errorf("invalid config: %w", err)
				}
				return cfg, nil
			}
		}
	}

	// Apply environment overrides to defaults
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Return defaults (with any load error for informational purposes)
	return cfg, loadErr
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	if cfg.Convert.Endianness == "" {
		cfg.Convert.Endianness = defaults.Convert.Endianness
	}
	if cfg.Convert.Width == 0 {
		cfg.Convert.Width = defaults.Convert.Width
	}
	if cfg.Convert.Representation == "" {
		cfg.Convert.Representation = defaults.Convert.Representation
	}
	if cfg.Convert.GroupSize == 0 && cfg.Convert.GroupPattern == "" {
		cfg.Convert.GroupSize = defaults.Convert.GroupSize
	}

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}

	if cfg.REPL.HistorySize == 0 {
		cfg.REPL.HistorySize = defaults.REPL.HistorySize
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# hexlens configuration file\n")
	sb.WriteString("# Generated by hexlens - edit with care\n")
	sb.WriteString("\n")

	encoder := toml.NewEncoder(&sb)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// CONFIG: Comprehensive validation ensures safe configuration

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if _, err := convert.ParseEndianness(c.Convert.Endianness); err != nil {
		errs = append(errs, ValidationError{
			Field:   "convert.endianness",
			Message: fmt.Sprintf("invalid byte order '%s', must be 'little' or 'big'", c.Convert.Endianness),
		})
	}

	switch c.Convert.Width {
	case 1, 2, 4, 8:
	default:
		errs = append(errs, ValidationError{
			Field:   "convert.width",
			Message: fmt.Sprintf("invalid width %d, must be 1, 2, 4, or 8", c.Convert.Width),
		})
	}

	if _, err := convert.ParseRepresentation(c.Convert.Representation); err != nil {
		errs = append(errs, ValidationError{
			Field:   "convert.representation",
			Message: fmt.Sprintf("invalid representation '%s', must be one of: unsigned, twos, ones, signmag", c.Convert.Representation),
		})
	}

	switch c.Convert.GroupSize {
	case 0, 1, 2, 4, 8:
		// 0 means custom grouping via group_pattern
	default:
		errs = append(errs, ValidationError{
			Field:   "convert.group_size",
			Message: fmt.Sprintf("invalid group size %d, must be 1, 2, 4, 8, or 0 for custom", c.Convert.GroupSize),
		})
	}
	if c.Convert.GroupSize == 0 && len(convert.ParseGroupPattern(c.Convert.GroupPattern)) == 0 {
		errs = append(errs, ValidationError{
			Field:   "convert.group_pattern",
			Message: fmt.Sprintf("custom grouping selected but pattern '%s' has no usable sizes", c.Convert.GroupPattern),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if c.REPL.HistorySize < 0 {
		errs = append(errs, ValidationError{
			Field:   "repl.history_size",
			Message: fmt.Sprintf("invalid history size %d, must be >= 0", c.REPL.HistorySize),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// TYPED ACCESSORS
// =============================================================================

// Endianness returns the configured default byte order.
func (c *Config) Endianness() convert.Endianness {
	e, err := convert.ParseEndianness(c.Convert.Endianness)
	if err != nil {
		return convert.Little
	}
	return e
}

// Representation returns the configured default representation.
func (c *Config) Representation() convert.Representation {
	r, err := convert.ParseRepresentation(c.Convert.Representation)
	if err != nil {
		return convert.TwosComplement
	}
	return r
}

// GroupSizes returns the configured grouping as an explicit size list.
// A fixed group size yields nil; callers use Convert.GroupSize directly.
func (c *Config) GroupSizes() []int {
	if c.Convert.GroupSize != 0 {
		return nil
	}
	return convert.ParseGroupPattern(c.Convert.GroupPattern)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - HEXLENS_ENDIAN: overrides convert.endianness
//   - HEXLENS_WIDTH: overrides convert.width
//   - HEXLENS_REPR: overrides convert.representation
//   - HEXLENS_GROUP: overrides convert.group_size (or pattern when not a single size)
//   - HEXLENS_THEME: overrides ui.theme
//   - HEXLENS_NO_HISTORY: set to "1" or "true" to disable REPL history
func (c *Config) ApplyEnvOverrides() {
	if endian := os.Getenv("HEXLENS_ENDIAN"); endian != "" {
		c.Convert.Endianness = endian
	}

	if width := os.Getenv("HEXLENS_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Convert.Width = w
		}
	}

	if repr := os.Getenv("HEXLENS_REPR"); repr != "" {
		c.Convert.Representation = repr
	}

	if group := os.Getenv("HEXLENS_GROUP"); group != "" {
		if g, err := strconv.Atoi(group); err == nil {
			c.Convert.GroupSize = g
		} else {
			c.Convert.GroupSize = 0
			c.Convert.GroupPattern = group
		}
	}

	if theme := os.Getenv("HEXLENS_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if noHist := os.Getenv("HEXLENS_NO_HISTORY"); noHist != "" {
		disabled := noHist == "1" || strings.ToLower(noHist) == "true"
		c.REPL.HistoryEnabled = !disabled
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "convert.width").
func (c *Config) Get(key string) (interface{}, error) {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return nil, errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		// If this is the last part, return the value
		if i == len(parts)-1 {
			return field.Interface(), nil
		}

		// Otherwise, navigate into the struct
		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// Set sets a configuration value using dot notation (e.g., "convert.width").
func (c *Config) Set(key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		// If this is the last part, set the value
		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("cannot set field: %s", key)
			}
			return setFieldValue(field, value)
		}

		// Otherwise, navigate into the struct
		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	// Handle string input with type conversion
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		}
	}

	// Direct assignment for matching types
	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}

	// Type conversion for compatible types
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"convert.endianness",
		"convert.width",
		"convert.representation",
		"convert.group_size",
		"convert.group_pattern",
		"convert.thousands_separator",
		"ui.theme",
		"ui.compact_mode",
		"ui.show_binary",
		"ui.welcome_completed",
		"repl.history_enabled",
		"repl.history_size",
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a JSON representation of the configuration.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	// Satisfy the once so a later first call to Global() does not
	// overwrite this value with a fresh Load().
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
