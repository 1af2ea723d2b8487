// Package launch turns a resolved handler entry into an executable
// command line and spawns it.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/openwith/openwith/internal/desktop"
)

// Mode selects how arguments are passed to the handler.
type Mode int

const (
	// ModeLaunch passes all arguments to a single invocation.
	ModeLaunch Mode = iota
	// ModeOpen invokes once per argument unless the template
	// declares multi-file support.
	ModeOpen
)

// ErrNoTerminal is returned when a terminal-requiring handler has no
// resolvable terminal emulator.
var ErrNoTerminal = fmt.Errorf(
	"please specify the default terminal with openwith set x-scheme-handler/terminal")

// placeholder matches the single-file exec tokens, case-insensitively.
var placeholder = regexp.MustCompile(`(?i)%[fu]`)

// Launcher builds and runs handler command lines.
type Launcher struct {
	// Terminal resolves the terminal-emulator launch command. Only
	// consulted for terminal handlers while not already in one.
	Terminal func() (string, error)
	// InTerminal reports whether this process is attached to a
	// terminal. Terminal handlers run attached and block when it is
	// set; everything else is spawned detached.
	InTerminal bool

	run func(command string, attached bool) error
}

// Command assembles the exact shell command for a handler entry and a
// set of arguments.
func (l *Launcher) Command(entry *desktop.Entry, args []string) (string, error) {
	joined := strings.Join(args, " ")
	cmd := entry.Exec

	// Only the first placeholder is substituted; any later ones are
	// left untouched.
	if loc := placeholder.FindStringIndex(cmd); loc != nil {
		cmd = cmd[:loc[0]] + joined + cmd[loc[1]:]
	} else {
		cmd = cmd + " " + joined
	}

	if entry.Terminal && !l.InTerminal {
		if l.Terminal == nil {
			return "", ErrNoTerminal
		}
		term, err := l.Terminal()
		if err != nil {
			return "", err
		}
		cmd = term + " " + cmd
	}

	return strings.TrimSpace(cmd), nil
}

// Exec runs the entry with the given arguments. With no arguments the
// handler is invoked once, bare. Multi-file templates (%F or %U) and
// launch mode get a single invocation with everything; otherwise the
// handler runs once per argument, in order, and the batch stops at the
// first failure.
func (l *Launcher) Exec(entry *desktop.Entry, mode Mode, args []string) error {
	supportsMultiple := strings.Contains(entry.Exec, "%F") || strings.Contains(entry.Exec, "%U")

	switch {
	case len(args) == 0:
		return l.execOne(entry, nil)
	case supportsMultiple || mode == ModeLaunch:
		return l.execOne(entry, args)
	default:
		for _, arg := range args {
			if err := l.execOne(entry, []string{arg}); err != nil {
				return err
			}
		}
		return nil
	}
}

func (l *Launcher) execOne(entry *desktop.Entry, args []string) error {
	command, err := l.Command(entry, args)
	if err != nil {
		return err
	}
	log.Debug().Str("command", command).Msg("executing handler")

	attached := entry.Terminal && l.InTerminal
	if l.run != nil {
		return l.run(command, attached)
	}
	return runShell(command, attached)
}

// runShell executes through the user's shell. Attached commands block
// until the child exits; detached ones are released with their
// standard streams discarded.
func runShell(command string, attached bool) error {
	shell := strings.TrimSpace(os.Getenv("SHELL"))
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell, "-c", command)

	if attached {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// StdoutIsTerminal reports whether standard output is attached to a
// terminal device.
func StdoutIsTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
