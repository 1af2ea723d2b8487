// Package handler defines the two kinds of handler identity: a
// reference to an installed desktop entry, and an inline regex-routed
// command from the config file.
package handler

import (
	"fmt"

	"github.com/openwith/openwith/internal/desktop"
)

// Handler identifies a program capable of opening a resource. The two
// implementations are DesktopHandler and *RegexHandler; callers
// dispatch on these and nothing else.
type Handler interface {
	// Key is a stable identity string used for grouping and display.
	Key() string
	// Entry materializes the descriptor used to build the command.
	Entry(locales []string) (*desktop.Entry, error)
}

// NotFoundError reports a key with no resolvable handler.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no handlers found for %q", e.Key)
}

// DesktopHandler names an installed descriptor by file name. The name
// is not validated eagerly; validity is checked when the descriptor is
// read.
type DesktopHandler string

// ResolveDesktop validates that the named descriptor exists and
// parses, then returns its handler.
func ResolveDesktop(name string) (DesktopHandler, error) {
	path, ok := desktop.FindPath(name)
	if !ok {
		return "", &NotFoundError{Key: name}
	}
	if _, err := desktop.ParseFile(path, nil); err != nil {
		return "", err
	}
	return DesktopHandler(name), nil
}

func (h DesktopHandler) Key() string    { return string(h) }
func (h DesktopHandler) String() string { return string(h) }

func (h DesktopHandler) Entry(locales []string) (*desktop.Entry, error) {
	path, ok := desktop.FindPath(string(h))
	if !ok {
		return nil, &NotFoundError{Key: string(h)}
	}
	return desktop.ParseFile(path, locales)
}
