// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Interactive REPL command handler for hexlens CLI.
//
// CLI: Comprehensive help and examples for all commands
// USABILITY: Line editing and persistent history for better CLI experience
//
// Handles the "hexlens repl" command which provides an interactive prompt
// for converting values without restarting the program.
//
// Command: repl
// Short:   Start an interactive conversion shell
// Aliases: i, interactive
//
// Examples:
//   hexlens repl                      Start the interactive shell
//   hexlens repl --endian big         Start with big-endian decoding
//   hexlens repl --width 2            Start with 2-byte integer width
//
// Interactive Commands (inside the REPL):
//   /mode hex|number|text   Switch the input mode
//   /endian [little|big]    Show or set the byte order
//   /width [1|2|4|8]        Show or set the integer width
//   /repr [NAME]            Show or set the signed representation
//   /group [SPEC]           Show or set the hex grouping
//   /help, /h               Show available commands
//   /quit, /q               Exit the shell
//   Ctrl+C                  Exit the shell
//   Ctrl+D                  Exit the shell
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/hexlens/internal/config"
	"github.com/jeranaias/hexlens/internal/convert"
	"github.com/jeranaias/hexlens/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	// Prompt style
	replPromptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	// Welcome banner style
	replWelcomeStyle = lipgloss.NewStyle().
				Foreground(styles.Purple).
				Bold(true)

	// Info style
	replInfoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// Setting value style
	replValueStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	// Warning style
	replWarnStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// REPLInput wraps liner with history persistence in the config directory.
type REPLInput struct {
	line        *liner.State
	historyFile string
	persist     bool
}

// NewREPLInput creates a line reader with history loaded from disk.
func NewREPLInput(persist bool) *REPLInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	in := &REPLInput{line: line, persist: persist}

	if persist {
		if path, err := config.HistoryPath(); err == nil {
			in.historyFile = path
			in.LoadHistory()
		}
	}

	return in
}

// LoadHistory loads input history from file.
func (r *REPLInput) LoadHistory() {
	if r.historyFile == "" {
		return
	}
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
// Supports history navigation with arrow keys.
func (r *REPLInput) ReadInput(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}

	return input, nil
}

// SaveHistory persists input history to file with secure permissions.
func (r *REPLInput) SaveHistory() {
	if !r.persist || r.historyFile == "" {
		return
	}
	if err := config.EnsureConfigDir(); err != nil {
		return
	}

	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	r.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (r *REPLInput) Close() {
	r.SaveHistory()
	r.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// REPLSession holds the mutable state for an interactive session.
type REPLSession struct {
	// Conversion settings, adjustable via slash commands
	Settings settings

	// Input mode: "hex", "number", or "text"
	Mode string

	// Line reader with history
	Input *REPLInput

	// Minimal output
	Quiet bool
}

// prompt returns the mode-aware prompt string.
func (s *REPLSession) prompt() string {
	return replPromptStyle.Render(s.Mode + "> ")
}

// =============================================================================
// COMMAND HANDLER
// =============================================================================

// HandleREPL runs the interactive conversion shell.
func HandleREPL(args Args) error {
	if err := RequiresTTY("run the shell"); err != nil {
		return HandleError(err, args.JSON)
	}

	set, err := resolveSettings(args)
	if err != nil {
		return HandleError(err, args.JSON)
	}

	cfg := config.Global()

	session := &REPLSession{
		Settings: set,
		Mode:     "hex",
		Input:    NewREPLInput(cfg.REPL.HistoryEnabled),
		Quiet:    args.Quiet,
	}
	defer session.Input.Close()

	if !args.Quiet {
		printREPLWelcome(session)
	}

	// Main loop. Liner reports Ctrl+C as ErrPromptAborted, Ctrl+D as EOF.
	for {
		input, err := session.Input.ReadInput(session.prompt())
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Println()
				return nil
			}
			fmt.Println()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			keepGoing, err := handleREPLCommand(input, session)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", replWarnStyle.Render("[!]"), err)
			}
			if !keepGoing {
				return nil
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			return nil
		}

		if err := convertREPLLine(session, input); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", replWarnStyle.Render("[!]"), err)
		}
	}
}

// convertREPLLine parses one line under the current mode and prints the result.
func convertREPLLine(session *REPLSession, input string) error {
	var (
		b   []byte
		err error
	)

	switch session.Mode {
	case "number":
		b, err = encodeNumber(input, session.Settings)
	case "text":
		b = convert.EncodeText(input)
	default:
		b, err = convert.ParseHexBytes(input)
	}
	if err != nil {
		return err
	}

	printConversion(b, session.Settings, session.Quiet)
	return nil
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleREPLCommand processes a slash command. Returns false when the
// session should end.
func handleREPLCommand(cmd string, session *REPLSession) (bool, error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return true, nil
	}

	command := strings.ToLower(parts[0])
	cmdArgs := parts[1:]

	switch command {
	case "/help", "/h", "/?":
		printREPLHelp()
		return true, nil

	case "/mode", "/m":
		return true, handleModeCommand(session, cmdArgs)

	case "/endian", "/e":
		return true, handleEndianCommand(session, cmdArgs)

	case "/width", "/w":
		return true, handleWidthCommand(session, cmdArgs)

	case "/repr", "/r":
		return true, handleReprCommand(session, cmdArgs)

	case "/group", "/g":
		return true, handleGroupCommand(session, cmdArgs)

	case "/quit", "/q", "/exit":
		return false, nil

	case "/":
		printREPLHelp()
		return true, nil

	default:
		return true, fmt.Errorf("unknown command: %s (type /help for commands)", command)
	}
}

// handleModeCommand shows or switches the input mode.
func handleModeCommand(session *REPLSession, args []string) error {
	if len(args) == 0 {
		fmt.Printf("%s %s\n",
			replInfoStyle.Render("Mode:"),
			replValueStyle.Render(session.Mode))
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "hex", "h", "bytes":
		session.Mode = "hex"
	case "number", "num", "n", "int":
		session.Mode = "number"
	case "text", "t", "str", "string":
		session.Mode = "text"
	default:
		return fmt.Errorf("unknown mode %q, expected hex, number, or text", args[0])
	}

	fmt.Printf("%s %s\n",
		replInfoStyle.Render("Mode:"),
		replValueStyle.Render(session.Mode))
	return nil
}

// handleEndianCommand shows, sets, or toggles the byte order.
func handleEndianCommand(session *REPLSession, args []string) error {
	if len(args) == 0 {
		session.Settings.endianness = session.Settings.endianness.Toggle()
	} else {
		e, err := convert.ParseEndianness(args[0])
		if err != nil {
			return err
		}
		session.Settings.endianness = e
	}

	fmt.Printf("%s %s\n",
		replInfoStyle.Render("Byte order:"),
		replValueStyle.Render(session.Settings.endianness.String()+"-endian"))
	return nil
}

// handleWidthCommand shows or sets the integer width.
func handleWidthCommand(session *REPLSession, args []string) error {
	if len(args) == 0 {
		fmt.Printf("%s %s\n",
			replInfoStyle.Render("Width:"),
			replValueStyle.Render(strconv.Itoa(session.Settings.width)+" bytes"))
		return nil
	}

	w, err := strconv.Atoi(args[0])
	if err != nil || !validWidth(w) {
		return fmt.Errorf("width must be 1, 2, 4, or 8 bytes")
	}
	session.Settings.width = w

	fmt.Printf("%s %s\n",
		replInfoStyle.Render("Width:"),
		replValueStyle.Render(strconv.Itoa(w)+" bytes"))
	return nil
}

// handleReprCommand shows or sets the signed representation.
func handleReprCommand(session *REPLSession, args []string) error {
	if len(args) == 0 {
		fmt.Printf("%s %s\n",
			replInfoStyle.Render("Representation:"),
			replValueStyle.Render(session.Settings.repr.String()))
		return nil
	}

	r, err := convert.ParseRepresentation(args[0])
	if err != nil {
		return err
	}
	session.Settings.repr = r

	fmt.Printf("%s %s\n",
		replInfoStyle.Render("Representation:"),
		replValueStyle.Render(r.String()))
	return nil
}

// handleGroupCommand shows or sets the hex grouping.
func handleGroupCommand(session *REPLSession, args []string) error {
	if len(args) == 0 {
		fmt.Printf("%s %s\n",
			replInfoStyle.Render("Grouping:"),
			replValueStyle.Render(groupSpecLabel(session.Settings.sizes)))
		return nil
	}

	sizes, err := parseGroupSpec(args[0])
	if err != nil {
		return err
	}
	session.Settings.sizes = sizes

	fmt.Printf("%s %s\n",
		replInfoStyle.Render("Grouping:"),
		replValueStyle.Render(groupSpecLabel(sizes)))
	return nil
}

// groupSpecLabel renders a group size list for display.
func groupSpecLabel(sizes []int) string {
	if len(sizes) == 1 {
		return "x" + strconv.Itoa(sizes[0])
	}
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// =============================================================================
// OUTPUT
// =============================================================================

// printREPLWelcome shows the session banner and current settings.
func printREPLWelcome(session *REPLSession) {
	fmt.Println()
	fmt.Println(replWelcomeStyle.Render("hexlens interactive shell"))
	fmt.Println(replInfoStyle.Render(strings.Repeat("─", 30)))
	fmt.Printf("%s %s\n",
		replInfoStyle.Render("Mode:"),
		replValueStyle.Render(session.Mode))
	fmt.Printf("%s %s\n",
		replInfoStyle.Render("Byte order:"),
		replValueStyle.Render(session.Settings.endianness.String()+"-endian"))
	fmt.Printf("%s %s\n",
		replInfoStyle.Render("Width:"),
		replValueStyle.Render(strconv.Itoa(session.Settings.width)+" bytes"))
	fmt.Printf("%s %s\n",
		replInfoStyle.Render("Representation:"),
		replValueStyle.Render(session.Settings.repr.String()))
	fmt.Println()
	fmt.Println(replInfoStyle.Render("Type a value to convert it, /help for commands, /quit to exit."))
	fmt.Println()
}

// printREPLHelp lists the slash commands.
func printREPLHelp() {
	fmt.Println()
	fmt.Println(replWelcomeStyle.Render("Commands"))
	help := [][2]string{
		{"/mode hex|number|text", "Switch the input mode"},
		{"/endian [little|big]", "Show, set, or toggle the byte order"},
		{"/width [1|2|4|8]", "Show or set the integer width"},
		{"/repr [NAME]", "Show or set the signed representation"},
		{"/group [SPEC]", "Show or set the hex grouping (e.g. 2 or 1,1,6)"},
		{"/help, /h", "Show this help"},
		{"/quit, /q", "Exit the shell"},
	}
	for _, h := range help {
		fmt.Printf("  %s  %s\n",
			replValueStyle.Render(fmt.Sprintf("%-24s", h[0])),
			replInfoStyle.Render(h[1]))
	}
	fmt.Println()
}
