package system

import (
	"testing"

	"github.com/openwith/openwith/internal/desktop"
	"github.com/openwith/openwith/internal/mimetype"
)

func catalog() *Catalog {
	return FromEntries([]*desktop.Entry{
		{
			Name:      "mpv",
			Exec:      "mpv %U",
			FileName:  "mpv.desktop",
			MimeTypes: []mimetype.Type{"video/mp4", "video/webm"},
		},
		{
			Name:      "VLC",
			Exec:      "vlc %U",
			FileName:  "vlc.desktop",
			MimeTypes: []mimetype.Type{"video/mp4"},
		},
		{
			Name:       "Alacritty",
			Exec:       "alacritty",
			FileName:   "alacritty.desktop",
			Categories: []string{"System", "TerminalEmulator"},
		},
		{
			Name:     "Calculator",
			Exec:     "galculator",
			FileName: "galculator.desktop",
		},
	})
}

func TestHandlerScanOrderIsPrimary(t *testing.T) {
	c := catalog()

	h, ok := c.Handler("video/mp4")
	if !ok || h != "mpv.desktop" {
		t.Fatalf("expected mpv.desktop, got %q ok=%v", h, ok)
	}
	if handlers := c.Handlers("video/mp4"); len(handlers) != 2 {
		t.Fatalf("expected both handlers, got %v", handlers)
	}
	if _, ok := c.Handler("audio/mpeg"); ok {
		t.Fatal("expected no handler for audio/mpeg")
	}
}

func TestUnassociatedBucket(t *testing.T) {
	c := catalog()
	if len(c.Unassociated) != 2 {
		t.Fatalf("expected 2 unassociated apps, got %v", c.Unassociated)
	}
}

func TestTerminalEmulatorScan(t *testing.T) {
	c := catalog()

	h, entry, ok := c.TerminalEmulator()
	if !ok {
		t.Fatal("expected to find a terminal emulator")
	}
	if h != "alacritty.desktop" || entry.Exec != "alacritty" {
		t.Fatalf("unexpected emulator: %q %+v", h, entry)
	}
}

func TestTerminalEmulatorAbsent(t *testing.T) {
	c := FromEntries([]*desktop.Entry{
		{Name: "Calculator", Exec: "galculator", FileName: "galculator.desktop"},
	})
	if _, _, ok := c.TerminalEmulator(); ok {
		t.Fatal("expected no terminal emulator")
	}
}
