// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - The config command: show, set, path, reset.
package cli

import (
	"fmt"

	"github.com/jeranaias/hexlens/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args.JSON)
	case "set":
		if args.ConfigKey == "" || args.ConfigVal == "" {
			return HandleError(NewValidationErrorWithExample("config set", "",
				"a key and value are required", "hexlens config set convert.width 2"), args.JSON)
		}
		return handleConfigSet(args.ConfigKey, args.ConfigVal, args.JSON)
	case "path":
		return handleConfigPath(args.JSON)
	case "reset":
		return handleConfigReset(args.JSON)
	default:
		return HandleError(NewValidationErrorWithExample("config", args.Subcommand,
			"unknown subcommand", "hexlens config show"), args.JSON)
	}
}

// handleConfigShow prints every config key and its current value.
func handleConfigShow(jsonMode bool) error {
	cfg := config.Global()

	path, _ := config.ConfigPathTOML()

	if jsonMode {
		values := make(map[string]string)
		for _, key := range config.GetAllKeys() {
			if v, err := cfg.Get(key); err == nil {
				values[key] = fmt.Sprintf("%v", v)
			}
		}
		return NewJSONResponse("config", &ConfigData{
			Path:   path,
			Values: values,
		}).Print()
	}

	fmt.Println(TitleStyle.Render("hexlens configuration"))
	fmt.Println(RenderSeparator(40))
	fmt.Printf("%s %s\n\n", RenderLabel("File:", 16), DimStyle.Render(path))

	for _, key := range config.GetAllKeys() {
		v, err := cfg.Get(key)
		if err != nil {
			continue
		}
		fmt.Printf("%s %s\n", RenderLabel(key, 28), ValueStyle.Render(fmt.Sprintf("%v", v)))
	}
	return nil
}

// handleConfigSet updates one key and saves the config file.
func handleConfigSet(key, value string, jsonMode bool) error {
	cfg := config.Global().Clone()

	if err := cfg.Set(key, value); err != nil {
		return HandleError(NewCommandError("config", "set", "cannot set "+key, err), jsonMode)
	}

	if err := cfg.Validate(); err != nil {
		return HandleError(NewCommandError("config", "set", "invalid value", err), jsonMode)
	}

	if err := config.Save(cfg); err != nil {
		return HandleError(NewCommandError("config", "set", "cannot save config", err), jsonMode)
	}

	config.SetGlobal(cfg)

	if jsonMode {
		return NewJSONResponse("config", map[string]string{key: value}).Print()
	}

	fmt.Printf("%s %s = %s\n", RenderStatus("ok"), key, value)
	return nil
}

// handleConfigPath prints the config file location.
func handleConfigPath(jsonMode bool) error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return HandleError(NewCommandError("config", "path", "cannot resolve config dir", err), jsonMode)
	}

	if jsonMode {
		return NewJSONResponse("config", map[string]string{"path": path}).Print()
	}

	fmt.Println(path)
	return nil
}

// handleConfigReset restores the default configuration.
func handleConfigReset(jsonMode bool) error {
	cfg := config.Default()

	if err := config.Save(cfg); err != nil {
		return HandleError(NewCommandError("config", "reset", "cannot save config", err), jsonMode)
	}

	config.SetGlobal(cfg)

	if jsonMode {
		return NewJSONResponse("config", map[string]string{"status": "reset"}).Print()
	}

	fmt.Printf("%s configuration reset to defaults\n", RenderStatus("ok"))
	return nil
}
