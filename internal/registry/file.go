package registry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/openwith/openwith/internal/handler"
	"github.com/openwith/openwith/internal/mimetype"
)

const (
	sectionAdded    = "Added Associations"
	sectionDefaults = "Default Applications"
)

// Load reads the registry from path. A missing file yields an empty
// registry rather than an error.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return New(path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	r, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	r.path = path
	return r, nil
}

// Parse reads the two-section flat format. Unknown sections are
// ignored. Invalid handler tokens and unparseable mime keys are
// silently dropped; a line whose list ends up empty is dropped whole.
func Parse(reader io.Reader) (*Registry, error) {
	r := New("")
	section := ""

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			continue
		}
		if section != sectionAdded && section != sectionDefaults {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		mime, err := mimetype.Parse(key)
		if err != nil {
			continue
		}
		list := parseHandlerList(value)
		if len(list) == 0 {
			continue
		}
		switch section {
		case sectionAdded:
			r.AddedAssociations[mime] = list
		case sectionDefaults:
			r.DefaultApps[mime] = list
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

func parseHandlerList(value string) HandlerList {
	var list HandlerList
	for _, token := range strings.Split(value, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if !validHandlerToken(token) {
			continue
		}
		list = list.push(handler.DesktopHandler(token))
	}
	return list
}

// validHandlerToken filters tokens that cannot name a descriptor file.
// Existence on disk is deliberately not checked here; that stays lazy.
func validHandlerToken(token string) bool {
	return strings.HasSuffix(token, ".desktop") && !strings.ContainsAny(token, "/\x00")
}

// Save rewrites the whole file in place: both sections, mime keys
// sorted ascending, lists joined with ';' and a trailing ';'. The
// write is truncate+rewrite, not an atomic rename; concurrent writers
// are last-writer-wins by design.
func (r *Registry) Save() error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("could not write %s: %w", r.path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeSection(w, sectionAdded, r.AddedAssociations); err != nil {
		return err
	}
	if _, err := w.WriteString("\n"); err != nil {
		return err
	}
	if err := writeSection(w, sectionDefaults, r.DefaultApps); err != nil {
		return err
	}
	return w.Flush()
}

func writeSection(w *bufio.Writer, name string, entries map[mimetype.Type]HandlerList) error {
	if _, err := fmt.Fprintf(w, "[%s]\n", name); err != nil {
		return err
	}
	keys := make([]mimetype.Type, 0, len(entries))
	for mime := range entries {
		keys = append(keys, mime)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, mime := range keys {
		tokens := make([]string, 0, len(entries[mime]))
		for _, h := range entries[mime] {
			tokens = append(tokens, string(h))
		}
		if _, err := fmt.Fprintf(w, "%s=%s;\n", mime, strings.Join(tokens, ";")); err != nil {
			return err
		}
	}
	return nil
}
