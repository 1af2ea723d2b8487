package ui

import (
	"errors"
	"runtime"
	"testing"
)

func options() []Option {
	return []Option{
		{Label: "mpv Media Player", ID: "mpv.desktop"},
		{Label: "VLC media player", ID: "vlc.desktop"},
	}
}

func TestPickSingleOptionSkipsInteraction(t *testing.T) {
	s := Selector{Backend: BackendHuh}
	id, err := s.Pick("Open With", []Option{{Label: "mpv", ID: "mpv.desktop"}})
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if id != "mpv.desktop" {
		t.Fatalf("expected mpv.desktop, got %q", id)
	}
}

func TestPickNoOptionsCancels(t *testing.T) {
	s := Selector{Backend: BackendPlain}
	if _, err := s.Pick("Open With", nil); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestPickPlainTakesPrimary(t *testing.T) {
	s := Selector{Backend: BackendPlain}
	id, err := s.Pick("Open With", options())
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if id != "mpv.desktop" {
		t.Fatalf("expected the primary option, got %q", id)
	}
}

func TestPickCommandBackendReadsChoiceFromStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on head")
	}
	s := Selector{Backend: BackendCommand, Command: "head -n 1"}
	id, err := s.Pick("Open With", options())
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if id != "mpv.desktop" {
		t.Fatalf("expected mpv.desktop, got %q", id)
	}
}

func TestPickCommandBackendEmptyOutputIsCancel(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on true")
	}
	s := Selector{Backend: BackendCommand, Command: "true"}
	if _, err := s.Pick("Open With", options()); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestPickCommandBackendNonzeroExitWithoutOutputIsCancel(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on false")
	}
	// dmenu-style selectors exit nonzero when dismissed with Escape.
	s := Selector{Backend: BackendCommand, Command: "false"}
	if _, err := s.Pick("Open With", options()); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestPickCommandBackendSpawnFailure(t *testing.T) {
	s := Selector{Backend: BackendCommand, Command: "/nonexistent/selector"}
	_, err := s.Pick("Open With", options())
	var selErr *SelectorError
	if !errors.As(err, &selErr) {
		t.Fatalf("expected SelectorError, got %v", err)
	}
}

func TestNormalizeBackendFallsBackToAuto(t *testing.T) {
	if got := NormalizeBackend("fzf"); got != BackendAuto {
		t.Fatalf("expected auto, got %q", got)
	}
	if got := NormalizeBackend(" Command "); got != BackendCommand {
		t.Fatalf("expected command, got %q", got)
	}
}

func TestSplitCommandHonorsQuotes(t *testing.T) {
	args := splitCommand(`rofi -dmenu -i -p 'Open With: '`)
	want := []string{"rofi", "-dmenu", "-i", "-p", "Open With: "}
	if len(args) != len(want) {
		t.Fatalf("expected %v, got %v", want, args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d: expected %q, got %q", i, want[i], args[i])
		}
	}
}

func TestPickerSizeStandardTerminal(t *testing.T) {
	width, height := pickerSize(90, 30, 3)
	if width != 86 {
		t.Fatalf("expected width 86, got %d", width)
	}
	if height != 9 {
		t.Fatalf("expected height 9, got %d", height)
	}
}

func TestPickerSizeTinyTerminalStillFits(t *testing.T) {
	width, height := pickerSize(20, 5, 25)
	if width > 20 {
		t.Fatalf("expected width to fit terminal, got %d", width)
	}
	if height > 5 {
		t.Fatalf("expected height to fit terminal, got %d", height)
	}
	if width <= 0 || height <= 0 {
		t.Fatalf("expected positive dimensions, got width=%d height=%d", width, height)
	}
}

func TestHuhSelectHeightBounds(t *testing.T) {
	if got := huhSelectHeight(0); got != 4 {
		t.Fatalf("expected minimum huh height 4, got %d", got)
	}
	if got := huhSelectHeight(20); got != 10 {
		t.Fatalf("expected max huh height 10, got %d", got)
	}
}
