// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for hexlens.
//
// CLI: Comprehensive help and examples for all commands
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdHex
	CmdNumber
	CmdText
	CmdConfig
	CmdREPL
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool // Output in JSON format

	// Conversion setting overrides (empty = use config)
	Endian string // "little" or "big"
	Width  int    // Integer width in bytes (0 = use config)
	Repr   string // "unsigned", "twos", "ones", "signmag"
	Group  string // Group size or pattern (e.g. "2" or "1,1,6")

	// Command-specific
	Query      string // Value to convert
	ConfigKey  string
	ConfigVal  string
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `hexlens - hex, integer, and text converter

Hexlens converts between hex byte sequences, integers under a chosen
signed representation, and ASCII text. Byte order, integer width, and
grouping are all configurable.

Usage:
  hexlens                     Start TUI (default)
  hexlens hex <bytes>         Convert hex bytes (e.g. "DE AD BE EF")
  hexlens number <value>      Convert a number (e.g. 1200, -42, 0x4B0)
  hexlens text <string>       Convert text to bytes
  hexlens repl                Interactive prompt
  hexlens config [show|set|path|reset]  Configuration
  hexlens version, -V         Show version

Hex Command:
  hexlens hex "DE AD BE EF"   Spaced byte pairs
  hexlens hex 0x4B0           0x prefix, lone nibbles padded
  hexlens hex "F0,0D"         Comma separators
  hexlens hex F00D            Continuous pairs (even length)

Number Command:
  hexlens number 1200         Decimal
  hexlens number -42          Negative (uses signed representation)
  hexlens number 0x4B0        Hex literal
  hexlens number 0b1011       Binary literal
  hexlens number 0o755        Octal literal

Text Command:
  hexlens text "Hello"        Byte per character (Latin-1, '?' fallback)

Config Commands:
  hexlens config show         Show current configuration
  hexlens config set <key> <value>  Set a value (e.g. convert.width 2)
  hexlens config path         Show config file location
  hexlens config reset        Restore defaults

REPL Commands (inside hexlens repl):
  /mode hex|number|text       Switch input mode
  /endian [little|big]        Show or set byte order
  /width <1|2|4|8>            Set integer width
  /repr <unsigned|twos|ones|signmag>  Set representation
  /group <size|pattern>       Set grouping (e.g. 2 or 1,1,6)
  /help                       Show REPL help
  /quit                       Exit

Conversion Flags:
  --endian little|big   Byte order (default from config)
  --width N             Integer width in bytes: 1, 2, 4, 8
  --repr NAME           unsigned, twos, ones, signmag
  --group SPEC          Group size (1/2/4/8) or pattern (1,1,6)

Global Flags:
  -q, --quiet     Minimal output
  -v, --verbose   Debug output
  --json          Output in JSON format

Examples:
  hexlens hex "E8 03"                 Show 1000 little-endian
  hexlens hex "E8 03" --endian big    Show 59395 big-endian
  hexlens number 1200 --width 2       1200 as two bytes
  hexlens number -5 --repr signmag    Sign-magnitude encoding
  hexlens hex FF --repr ones          One's complement reading
  hexlens hex "00 FF 00 FF" --group 2 Two-byte groups
  hexlens number 1200 --json          Machine-readable output

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("hexlens version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// HandleVersion prints version information, honoring --json.
func HandleVersion(args Args) error {
	if args.JSON {
		return NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
		}).Print()
	}
	PrintVersion()
	return nil
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given arguments. Split out from Parse for testing.
func ParseArgs(args []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(args)

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	// -V is case-sensitive (-v is verbose), so check before lowercasing
	if remaining[0] == "-V" {
		return CmdVersion, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "hex", "h", "bytes":
		parsedArgs.Query = JoinPositionalArgs(NewArgParser(remaining), 0)
		return CmdHex, parsedArgs

	case "number", "num", "n", "int":
		parsedArgs.Query = JoinPositionalArgs(NewArgParser(remaining), 0)
		return CmdNumber, parsedArgs

	case "text", "t", "str", "string":
		parsedArgs.Query = JoinPositionalArgs(NewArgParser(remaining), 0)
		return CmdText, parsedArgs

	case "repl", "i", "interactive":
		return CmdREPL, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// A bare value that parses as hex or a number is treated as a
		// conversion, so "hexlens F00D" works without a subcommand.
		rest := JoinPositionalArgs(NewArgParser(remaining), 0)
		parsedArgs.Query = strings.TrimSpace(cmd + " " + rest)
		if looksLikeNumber(cmd) {
			return CmdNumber, parsedArgs
		}
		return CmdHex, parsedArgs
	}
}

// parseGlobalFlags extracts global and conversion flags, returning the
// remaining positional arguments.
func parseGlobalFlags(args []string) ([]string, Args) {
	parsed := Args{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsed.Quiet = true
		case "-v", "--verbose":
			parsed.Verbose = true
		case "--json":
			parsed.JSON = true
		case "--endian", "-e":
			if i+1 < len(args) {
				parsed.Endian = args[i+1]
				i++
			}
		case "--width", "-w":
			if i+1 < len(args) {
				if n, err := parseFlagInt(args[i+1]); err == nil {
					parsed.Width = n
				}
				i++
			}
		case "--repr", "-r":
			if i+1 < len(args) {
				parsed.Repr = args[i+1]
				i++
			}
		case "--group", "--groups", "-g":
			if i+1 < len(args) {
				parsed.Group = args[i+1]
				i++
			}
		default:
			if strings.HasPrefix(arg, "--endian=") {
				parsed.Endian = strings.TrimPrefix(arg, "--endian=")
			} else if strings.HasPrefix(arg, "--width=") {
				if n, err := parseFlagInt(strings.TrimPrefix(arg, "--width=")); err == nil {
					parsed.Width = n
				}
			} else if strings.HasPrefix(arg, "--repr=") {
				parsed.Repr = strings.TrimPrefix(arg, "--repr=")
			} else if strings.HasPrefix(arg, "--groups=") {
				parsed.Group = strings.TrimPrefix(arg, "--groups=")
			} else if strings.HasPrefix(arg, "--group=") {
				parsed.Group = strings.TrimPrefix(arg, "--group=")
			} else {
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsed
}

// looksLikeNumber reports whether s starts like a decimal or based number,
// including a leading minus sign.
func looksLikeNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	return s[0] >= '0' && s[0] <= '9'
}

// parseConfigArgs parses config command arguments.
func parseConfigArgs(parsed *Args, remaining []string) {
	p := NewArgParser(remaining)

	parsed.Subcommand = strings.ToLower(p.Subcommand())
	if parsed.Subcommand == "" {
		parsed.Subcommand = "show"
		return
	}

	if parsed.Subcommand == "set" {
		parsed.ConfigKey = p.Positional(1)
		parsed.ConfigVal = p.Positional(2)
	}
}

func parseFlagInt(s string) (int, error) {
	return strconv.Atoi(s)
}
