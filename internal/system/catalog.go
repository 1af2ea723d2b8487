// Package system indexes the installed applications by declared MIME
// support. The catalog is rebuilt from scratch on every invocation and
// is read-only afterward.
package system

import (
	"github.com/openwith/openwith/internal/desktop"
	"github.com/openwith/openwith/internal/handler"
	"github.com/openwith/openwith/internal/mimetype"
)

type Catalog struct {
	// Associations maps each mime to the installed handlers that
	// declared it, in scan order.
	Associations map[mimetype.Type][]handler.DesktopHandler
	// Unassociated holds apps with no declared mime, scanned when
	// guessing a terminal emulator.
	Unassociated []handler.DesktopHandler

	entries map[handler.DesktopHandler]*desktop.Entry
}

// Populate builds a catalog from the installed desktop entries.
func Populate(locales []string) *Catalog {
	return FromEntries(desktop.Scan(locales))
}

// FromEntries builds a catalog from an explicit entry list.
func FromEntries(entries []*desktop.Entry) *Catalog {
	c := &Catalog{
		Associations: map[mimetype.Type][]handler.DesktopHandler{},
		entries:      map[handler.DesktopHandler]*desktop.Entry{},
	}
	for _, entry := range entries {
		h := handler.DesktopHandler(entry.FileName)
		c.entries[h] = entry
		if len(entry.MimeTypes) == 0 {
			c.Unassociated = append(c.Unassociated, h)
			continue
		}
		for _, mime := range entry.MimeTypes {
			c.Associations[mime] = append(c.Associations[mime], h)
		}
	}
	return c
}

// Handlers returns the installed handlers for a mime, primary first.
func (c *Catalog) Handlers(mime mimetype.Type) []handler.DesktopHandler {
	return c.Associations[mime]
}

// Handler returns the primary installed handler for a mime.
func (c *Catalog) Handler(mime mimetype.Type) (handler.DesktopHandler, bool) {
	handlers := c.Associations[mime]
	if len(handlers) == 0 {
		return "", false
	}
	return handlers[0], true
}

// Entry returns the scanned descriptor for a handler, when the catalog
// has one.
func (c *Catalog) Entry(h handler.DesktopHandler) (*desktop.Entry, bool) {
	entry, ok := c.entries[h]
	return entry, ok
}

// TerminalEmulator scans the unassociated bucket for the first entry
// declaring itself a terminal emulator.
func (c *Catalog) TerminalEmulator() (handler.DesktopHandler, *desktop.Entry, bool) {
	for _, h := range c.Unassociated {
		entry, ok := c.entries[h]
		if ok && entry.IsTerminalEmulator() {
			return h, entry, true
		}
	}
	return "", nil, false
}
