// Package config loads and persists the tool's own configuration:
// selector behavior, terminal wrapping arguments, and the regex
// handler rules.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/openwith/openwith/internal/appdirs"
	"github.com/openwith/openwith/internal/handler"
)

// Rule is one regex handler from the config file. Declaration order is
// routing order.
type Rule struct {
	Exec     string   `toml:"exec" json:"exec"`
	Terminal bool     `toml:"terminal,omitempty" json:"terminal,omitempty"`
	Regexes  []string `toml:"regexes" json:"regexes"`
}

type Config struct {
	// EnableSelector presents a picker when a mime has several
	// default handlers.
	EnableSelector bool `toml:"enable_selector" json:"enable_selector"`
	// Selector is the external picker command used by the "command"
	// backend; labels go to its stdin, the choice comes from stdout.
	Selector string `toml:"selector" json:"selector"`
	// SelectorBackend picks the picker implementation.
	SelectorBackend string `toml:"selector_backend" json:"selector_backend"`
	// TermExecArgs is appended to a terminal emulator's exec line
	// before the wrapped command. Most xterm-compatible emulators
	// want "-e"; some break on it.
	TermExecArgs string `toml:"term_exec_args" json:"term_exec_args"`
	// Handlers are the regex rules tried before MIME resolution.
	Handlers []Rule `toml:"handlers,omitempty" json:"handlers,omitempty"`
}

func Default() Config {
	return Config{
		EnableSelector:  false,
		Selector:        "rofi -dmenu -i -p 'Open With: '",
		SelectorBackend: "auto",
		TermExecArgs:    "-e",
	}
}

func LoadOrCreate() (Config, string, error) {
	path, err := appdirs.ConfigFilePath()
	if err != nil {
		return Config{}, "", err
	}

	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if _, err := appdirs.EnsureConfigDir(); err != nil {
			return Config{}, "", err
		}
		if err := Save(path, cfg); err != nil {
			return Config{}, "", err
		}
		return cfg, path, nil
	}
	if err != nil {
		return Config{}, "", fmt.Errorf("could not stat config path: %w", err)
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, "", fmt.Errorf("could not read config file: %w", err)
	}
	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, "", fmt.Errorf("could not parse config file: %w", err)
	}
	cfg.normalize()
	return cfg, path, nil
}

func Save(path string, cfg Config) error {
	cfg.normalize()
	payload, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("could not serialize config: %w", err)
	}
	if _, err := appdirs.EnsureConfigDir(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".openwith-config-*.toml")
	if err != nil {
		return fmt.Errorf("could not create temp config file: %w", err)
	}
	tempPath := tempFile.Name()
	cleanup := func() {
		_ = os.Remove(tempPath)
	}

	if _, err := tempFile.Write(payload); err != nil {
		_ = tempFile.Close()
		cleanup()
		return fmt.Errorf("could not write temp config file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		cleanup()
		return fmt.Errorf("could not close temp config file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		cleanup()
		return fmt.Errorf("could not atomically replace config file: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	defaults := Default()
	if strings.TrimSpace(c.Selector) == "" {
		c.Selector = defaults.Selector
	}
	c.SelectorBackend = normalizeBackend(c.SelectorBackend, defaults.SelectorBackend)
}

func normalizeBackend(value, fallback string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "auto", "huh", "bubbletea", "tview", "command", "plain":
		return normalized
	default:
		return fallback
	}
}

// CompileRules compiles the configured regex rules in declaration
// order.
func (c Config) CompileRules() (handler.Rules, error) {
	rules := make(handler.Rules, 0, len(c.Handlers))
	for i, rule := range c.Handlers {
		compiled, err := handler.NewRegexHandler(rule.Exec, rule.Terminal, rule.Regexes)
		if err != nil {
			return nil, fmt.Errorf("handler rule %d: %w", i, err)
		}
		rules = append(rules, compiled)
	}
	return rules, nil
}
