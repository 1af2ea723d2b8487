package desktop

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeEntry(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s failed: %v", name, err)
	}
	return path
}

const mpvEntry = `[Desktop Entry]
Type=Application
Name=mpv Media Player
Name[de]=mpv Medienspieler
Exec=mpv --player-operation-mode=pseudo-gui -- %U
Terminal=false
MimeType=video/mp4;video/webm;;audio/mpeg;
Categories=AudioVideo;Player;
`

func TestParseFileReadsFields(t *testing.T) {
	path := writeEntry(t, t.TempDir(), "mpv.desktop", mpvEntry)

	entry, err := ParseFile(path, nil)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if entry.Name != "mpv Media Player" {
		t.Fatalf("unexpected name: %q", entry.Name)
	}
	if entry.FileName != "mpv.desktop" {
		t.Fatalf("unexpected file name: %q", entry.FileName)
	}
	if entry.Terminal {
		t.Fatal("mpv should not be a terminal app")
	}
	if len(entry.MimeTypes) != 3 {
		t.Fatalf("expected 3 mimes, got %v", entry.MimeTypes)
	}
	if entry.MimeTypes[0] != "video/mp4" {
		t.Fatalf("unexpected first mime: %q", entry.MimeTypes[0])
	}
	if entry.IsTerminalEmulator() {
		t.Fatal("mpv is not a terminal emulator")
	}
}

func TestParseFilePrefersLocalizedName(t *testing.T) {
	path := writeEntry(t, t.TempDir(), "mpv.desktop", mpvEntry)

	entry, err := ParseFile(path, []string{"de"})
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if entry.Name != "mpv Medienspieler" {
		t.Fatalf("expected localized name, got %q", entry.Name)
	}
}

func TestParseFileIgnoresOtherSections(t *testing.T) {
	path := writeEntry(t, t.TempDir(), "term.desktop", `[Desktop Entry]
Name=Alacritty
Exec=alacritty
Categories=System;TerminalEmulator;
[Desktop Action New]
Name=Shadowed
Exec=ignored
`)

	entry, err := ParseFile(path, nil)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if entry.Name != "Alacritty" || entry.Exec != "alacritty" {
		t.Fatalf("action section leaked into entry: %+v", entry)
	}
	if !entry.IsTerminalEmulator() {
		t.Fatal("expected a terminal emulator")
	}
}

func TestParseFileRejectsMissingExec(t *testing.T) {
	path := writeEntry(t, t.TempDir(), "broken.desktop", "[Desktop Entry]\nName=Broken\n")

	_, err := ParseFile(path, nil)
	var bad *BadEntryError
	if !errors.As(err, &bad) {
		t.Fatalf("expected BadEntryError, got %v", err)
	}
}

func TestScanFirstSeenFileNameWins(t *testing.T) {
	high := t.TempDir()
	low := t.TempDir()
	t.Setenv("XDG_DATA_HOME", high)
	t.Setenv("XDG_DATA_DIRS", low)

	if err := os.MkdirAll(filepath.Join(high, "applications"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(low, "applications"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeEntry(t, filepath.Join(high, "applications"), "editor.desktop",
		"[Desktop Entry]\nName=User Editor\nExec=uedit %f\n")
	writeEntry(t, filepath.Join(low, "applications"), "editor.desktop",
		"[Desktop Entry]\nName=System Editor\nExec=sedit %f\n")
	writeEntry(t, filepath.Join(low, "applications"), "other.desktop",
		"[Desktop Entry]\nName=Other\nExec=other\n")

	entries := Scan(nil)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "User Editor" {
		t.Fatalf("expected the user-level entry to shadow, got %q", entries[0].Name)
	}
}

func TestLocalesStripEncoding(t *testing.T) {
	t.Setenv("LANG", "de_DE.UTF-8")
	t.Setenv("LANGUAGE", "")

	locales := Locales()
	if len(locales) != 2 || locales[0] != "de_DE" || locales[1] != "de" {
		t.Fatalf("unexpected locales: %v", locales)
	}
}
