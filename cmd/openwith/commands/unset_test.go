package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openwith/openwith/internal/registry"
)

func TestUnsetUnknownMimeSucceedsWithoutSaving(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mimeapps.list")
	reg = registry.New(path)

	if err := unsetCmd.RunE(unsetCmd, []string{"video/mp4"}); err != nil {
		t.Fatalf("unset of an unknown mime must succeed, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("nothing changed, the registry must not be written")
	}
}

func TestUnsetRemovesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mimeapps.list")
	reg = registry.New(path)
	reg.SetHandler("video/mp4", "mpv.desktop")

	if err := unsetCmd.RunE(unsetCmd, []string{"video/mp4"}); err != nil {
		t.Fatalf("unset failed: %v", err)
	}

	saved, err := registry.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := saved.DefaultApps["video/mp4"]; ok {
		t.Fatalf("expected the default removed on disk, got %v", saved.DefaultApps)
	}
}

func TestRemoveUnknownHandlerSucceedsWithoutSaving(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mimeapps.list")
	reg = registry.New(path)
	reg.SetHandler("video/mp4", "mpv.desktop")

	if err := removeCmd.RunE(removeCmd, []string{"video/mp4", "vlc.desktop"}); err != nil {
		t.Fatalf("remove of an unknown handler must succeed, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("nothing changed, the registry must not be written")
	}
	if h, ok := reg.DefaultApps["video/mp4"].Front(); !ok || h != "mpv.desktop" {
		t.Fatalf("existing default must be untouched, got %v", reg.DefaultApps)
	}
}
