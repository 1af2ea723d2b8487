// Package desktop reads installed application descriptors and
// enumerates them from the standard data directories.
package desktop

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/openwith/openwith/internal/appdirs"
	"github.com/openwith/openwith/internal/mimetype"
)

// Entry is the subset of a desktop descriptor the resolver cares about.
type Entry struct {
	Name       string
	Exec       string
	FileName   string
	Terminal   bool
	MimeTypes  []mimetype.Type
	Categories []string
}

// BadEntryError reports a descriptor missing a usable Name or Exec.
type BadEntryError struct {
	Path string
}

func (e *BadEntryError) Error() string {
	return fmt.Sprintf("the desktop entry at %q lacks a valid Name or Exec field", e.Path)
}

// IsTerminalEmulator reports whether the entry declares itself a
// terminal emulator through its categories.
func (e *Entry) IsTerminalEmulator() bool {
	for _, c := range e.Categories {
		if c == "TerminalEmulator" {
			return true
		}
	}
	return false
}

// Locales returns the configured message locales from $LANG and
// $LANGUAGE, most specific first, with encoding suffixes stripped.
func Locales() []string {
	var locales []string
	add := func(raw string) {
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == "C" || raw == "POSIX" {
			return
		}
		if i := strings.IndexByte(raw, '.'); i >= 0 {
			raw = raw[:i]
		}
		locales = append(locales, raw)
		// en_US also answers to plain en
		if i := strings.IndexByte(raw, '_'); i >= 0 {
			locales = append(locales, raw[:i])
		}
	}
	add(os.Getenv("LANG"))
	for _, lang := range strings.Split(os.Getenv("LANGUAGE"), ":") {
		add(lang)
	}
	return locales
}

// ParseFile reads a descriptor from disk. Entries without a Name or
// Exec are rejected with BadEntryError.
func ParseFile(path string, locales []string) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entry := &Entry{FileName: filepath.Base(path)}
	localizedNames := map[string]string{}
	inDesktopSection := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inDesktopSection = line == "[Desktop Entry]"
			continue
		}
		if !inDesktopSection {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case key == "Name":
			entry.Name = value
		case strings.HasPrefix(key, "Name[") && strings.HasSuffix(key, "]"):
			locale := key[len("Name[") : len(key)-1]
			localizedNames[locale] = value
		case key == "Exec":
			entry.Exec = value
		case key == "Terminal":
			entry.Terminal = value == "true"
		case key == "MimeType":
			for _, raw := range strings.Split(value, ";") {
				if raw = strings.TrimSpace(raw); raw == "" {
					continue
				}
				if mt, err := mimetype.Parse(raw); err == nil {
					entry.MimeTypes = append(entry.MimeTypes, mt)
				}
			}
		case key == "Categories":
			for _, c := range strings.Split(value, ";") {
				if c = strings.TrimSpace(c); c != "" {
					entry.Categories = append(entry.Categories, c)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, locale := range locales {
		if name, ok := localizedNames[locale]; ok {
			entry.Name = name
			break
		}
	}

	if entry.Name == "" || entry.Exec == "" {
		return nil, &BadEntryError{Path: path}
	}
	return entry, nil
}

// FindPath locates a descriptor by file name across the application
// directories, highest precedence first.
func FindPath(name string) (string, bool) {
	for _, dir := range appdirs.ApplicationDirs() {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// Scan parses every installed descriptor, first-seen file name wins.
// Unparseable descriptors are skipped. Results are ordered by
// directory precedence, then by file name for determinism.
func Scan(locales []string) []*Entry {
	seen := map[string]struct{}{}
	var entries []*Entry

	for _, dir := range appdirs.ApplicationDirs() {
		names, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		files := make([]string, 0, len(names))
		for _, de := range names {
			if de.IsDir() || !strings.HasSuffix(de.Name(), ".desktop") {
				continue
			}
			files = append(files, de.Name())
		}
		sort.Strings(files)

		for _, name := range files {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			entry, err := ParseFile(filepath.Join(dir, name), locales)
			if err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}
	return entries
}
