// Demonstrates window configuration from a YAML file, command
// registration, colored output, message sigils, batched appends with a
// manual draw, and the diagnostic mode.
//
// Try paging with page up/page down, navigating command history with
// the arrow keys, and the registered whistle key (Ctrl+R by default).
// Type "quit" to leave.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/duopane/panel"
	"github.com/lixenwraith/duopane/terminal"
	"github.com/lixenwraith/duopane/window"
)

const configPath = "duopane.yaml"

type config struct {
	Height     int    `yaml:"height"`
	Width      int    `yaml:"width"`
	Title      string `yaml:"title"`
	Diagnostic bool   `yaml:"diagnostic"`
	WhistleKey string `yaml:"whistleKey"`
	LogFile    string `yaml:"logFile"`
}

func loadConfig(path string) (config, error) {
	cfg := config{
		Height:     24,
		Width:      80,
		Title:      "Advanced Window",
		Diagnostic: true,
		WhistleKey: "ctrl_r",
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	whistle, ok := terminal.KeyByName(cfg.WhistleKey)
	if !ok {
		return fmt.Errorf("unknown whistle key %q", cfg.WhistleKey)
	}

	// The window owns the terminal, so session logs go to a file
	var log *slog.Logger
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log = slog.New(slog.NewTextHandler(f, nil))
	}

	win, err := window.Open(window.Config{
		Height:     cfg.Height,
		Width:      cfg.Width,
		Title:      cfg.Title,
		Diagnostic: cfg.Diagnostic,
		Log:        log,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	win.Register(whistle, func(w *window.Window) {
		w.Say("You whistle softly.")
	})

	msg := win.Message()
	for {
		if err := msg.Append(panel.SigilPlain,
			"You are standing in a ",
			panel.Styled("bright forest", terminal.Fg(terminal.ColorGreen)), "."); err != nil {
			return err
		}
		if err := msg.Append(panel.SigilPlain,
			"You see a ",
			panel.Styled("chalice", terminal.Fg(terminal.ColorYellow)), " sitting on a stump."); err != nil {
			return err
		}
		if err := msg.Append(panel.Sigil('!'),
			"You see a ",
			panel.Styled("rude goblin", terminal.Fg(terminal.ColorRed)), " nearby."); err != nil {
			return err
		}
		msg.Draw()

		input, err := win.Prompt("What do you do?")
		if err != nil {
			return err
		}
		if input == "quit" {
			return nil
		}
		if err := msg.Append(panel.SigilPlain, fmt.Sprintf("You %s with gusto.", input)); err != nil {
			return err
		}
	}
}
