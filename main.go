// hexlens - A terminal converter for hex bytes, integers, and text.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hexlens/internal/cli"
	"github.com/jeranaias/hexlens/internal/config"
	"github.com/jeranaias/hexlens/internal/convert"
	"github.com/jeranaias/hexlens/internal/ui/components"
	"github.com/jeranaias/hexlens/internal/ui/converter"
	"github.com/jeranaias/hexlens/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global program reference for async config reloads
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdHex:
		exitOnError(cli.HandleHex(args))
	case cli.CmdNumber:
		exitOnError(cli.HandleNumber(args))
	case cli.CmdText:
		exitOnError(cli.HandleText(args))
	case cli.CmdREPL:
		exitOnError(cli.HandleREPL(args))
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(args))
	case cli.CmdVersion:
		exitOnError(cli.HandleVersion(args))
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}

// exitOnError exits with the error's mapped exit code. The error has
// already been displayed by the command handler.
func exitOnError(err error) {
	if err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}

// =============================================================================
// TUI STARTUP
// =============================================================================

func runTUI(args cli.Args) {
	cfg := config.Global()

	// CLI flags override config for this session only
	cfg = overrideFromArgs(cfg, args)

	theme := styles.NewTheme()

	m := newAppModel(theme, cfg)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	programMu.Lock()
	programRef = p
	programMu.Unlock()

	// Live-reload config edits into the running session
	watcher, err := config.NewWatcher(500*time.Millisecond, func(c *config.Config) {
		programMu.Lock()
		ref := programRef
		programMu.Unlock()
		if ref != nil {
			ref.Send(converter.ConfigReloadedMsg{Config: c})
		}
	})
	if err == nil {
		if werr := watcher.Watch(); werr == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running hexlens: %v\n", err)
		os.Exit(1)
	}
}

// overrideFromArgs applies conversion flag overrides to a copy of cfg.
func overrideFromArgs(cfg *config.Config, args cli.Args) *config.Config {
	if args.Endian == "" && args.Width == 0 && args.Repr == "" && args.Group == "" {
		return cfg
	}

	out := cfg.Clone()
	if args.Endian != "" {
		if _, err := convert.ParseEndianness(args.Endian); err == nil {
			out.Convert.Endianness = args.Endian
		}
	}
	switch args.Width {
	case 1, 2, 4, 8:
		out.Convert.Width = args.Width
	}
	if args.Repr != "" {
		if _, err := convert.ParseRepresentation(args.Repr); err == nil {
			out.Convert.Representation = args.Repr
		}
	}
	if args.Group != "" {
		if sizes := convert.ParseGroupPattern(args.Group); len(sizes) > 0 {
			if len(sizes) == 1 {
				out.Convert.GroupSize = sizes[0]
			} else {
				out.Convert.GroupSize = 0
				out.Convert.GroupPattern = args.Group
			}
		}
	}
	return out
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// AppState tracks which screen is active.
type AppState int

const (
	// StateWelcome is the startup splash screen
	StateWelcome AppState = iota

	// StateConverter is the main conversion view
	StateConverter
)

// appModel is the top-level Bubble Tea model. It owns the welcome screen
// and hands off to the converter after the first keypress.
type appModel struct {
	state     AppState
	theme     *styles.Theme
	welcome   *components.Welcome
	converter *converter.Model
	width     int
	height    int
}

func newAppModel(theme *styles.Theme, cfg *config.Config) *appModel {
	welcome := components.NewWelcome(theme, Version)
	welcome.SetSettings(cfg.Endianness(), cfg.Convert.Width, cfg.Representation())

	conv := converter.New(theme, cfg)
	conv.SetVersion(Version)

	return &appModel{
		state:     StateWelcome,
		theme:     theme,
		welcome:   welcome,
		converter: conv,
	}
}

// Init initializes the model.
func (m *appModel) Init() tea.Cmd {
	return tea.Batch(
		m.welcome.Init(),
		m.converter.Init(),
	)
}

// Update handles messages and updates the model.
func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.welcome.SetSize(msg.Width, msg.Height)
		m.converter.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.state == StateWelcome {
			switch msg.Type {
			case tea.KeyCtrlC, tea.KeyEsc:
				return m, tea.Quit
			}
			if msg.String() == "q" {
				return m, tea.Quit
			}
			// Any other key dismisses the welcome screen
			m.state = StateConverter
			return m, nil
		}

	case converter.ConfigReloadedMsg:
		// Reloads apply even while the welcome screen is up
		conv, cmd := m.converter.Update(msg)
		m.converter = conv
		m.welcome.SetSettings(
			msg.Config.Endianness(),
			msg.Config.Convert.Width,
			msg.Config.Representation(),
		)
		return m, cmd
	}

	if m.state == StateConverter {
		conv, cmd := m.converter.Update(msg)
		m.converter = conv
		return m, cmd
	}

	welcome, cmd := m.welcome.Update(msg)
	m.welcome = welcome
	return m, cmd
}

// View renders the active screen.
func (m *appModel) View() string {
	if m.state == StateWelcome {
		return m.welcome.View()
	}
	return m.converter.View()
}
