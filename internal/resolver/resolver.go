// Package resolver decides which handler opens a given mime or path,
// combining the regex rules, the user registry, and the system catalog.
package resolver

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/openwith/openwith/internal/config"
	"github.com/openwith/openwith/internal/desktop"
	"github.com/openwith/openwith/internal/handler"
	"github.com/openwith/openwith/internal/launch"
	"github.com/openwith/openwith/internal/mimetype"
	"github.com/openwith/openwith/internal/registry"
	"github.com/openwith/openwith/internal/system"
	"github.com/openwith/openwith/internal/ui"
)

// TerminalMime keys the user's preferred terminal emulator in the
// registry.
const TerminalMime = mimetype.Type("x-scheme-handler/terminal")

// Resolver owns one invocation's resolution state. The terminal
// emulator lookup is memoized for the lifetime of the process.
type Resolver struct {
	Registry *registry.Registry
	System   *system.Catalog
	Config   config.Config
	Rules    handler.Rules
	Locales  []string
	// Notify delivers advisory messages the user should see even when
	// stderr is invisible. May be nil.
	Notify func(title, body string)

	pick func(title string, options []ui.Option) (string, error)

	terminalCmd  string
	terminalErr  error
	terminalDone bool
}

// Assignment pairs a resolved handler with the paths it should open,
// in input order.
type Assignment struct {
	Handler handler.Handler
	Paths   []string
}

// Resolve finds the handler for a mime. Precedence is the user's
// default list, then the one-level wildcard default list, then added
// associations, then the system catalog. The selector only ever runs
// over a default list with several entries; a cancelled selection
// aborts resolution instead of falling through.
func (r *Resolver) Resolve(mime mimetype.Type) (handler.Handler, error) {
	if list, ok := r.Registry.DefaultApps[mime]; ok && len(list) > 0 {
		return r.choose(mime, list)
	}

	if wildcard := mime.Wildcard(); wildcard != mime {
		if list, ok := r.Registry.DefaultApps[wildcard]; ok && len(list) > 0 {
			return r.choose(mime, list)
		}
	}

	if h, ok := r.Registry.AddedAssociations[mime].Front(); ok {
		return h, nil
	}
	if h, ok := r.System.Handler(mime); ok {
		return h, nil
	}
	return nil, &handler.NotFoundError{Key: string(mime)}
}

// choose returns the primary handler, or asks the user when the list
// has several entries and the selector is enabled.
func (r *Resolver) choose(mime mimetype.Type, list registry.HandlerList) (handler.Handler, error) {
	if len(list) == 1 || !r.Config.EnableSelector {
		return list[0], nil
	}

	options := make([]ui.Option, 0, len(list))
	for _, h := range list {
		options = append(options, ui.Option{Label: r.label(h), ID: string(h)})
	}

	id, err := r.pickOption("Open "+string(mime)+" with:", options)
	if err != nil {
		return nil, err
	}
	return handler.DesktopHandler(id), nil
}

// label prefers the localized application name over the file name.
func (r *Resolver) label(h handler.DesktopHandler) string {
	if entry, ok := r.System.Entry(h); ok && entry.Name != "" {
		return entry.Name
	}
	entry, err := h.Entry(r.Locales)
	if err != nil || entry.Name == "" {
		return string(h)
	}
	return entry.Name
}

func (r *Resolver) pickOption(title string, options []ui.Option) (string, error) {
	if r.pick != nil {
		return r.pick(title, options)
	}
	selector := ui.Selector{
		Backend: r.Config.SelectorBackend,
		Command: r.Config.Selector,
	}
	return selector.Pick(title, options)
}

// ResolvePath finds the handler for a command-line path or URL. The
// regex rules are consulted first and bypass MIME classification
// entirely.
func (r *Resolver) ResolvePath(path *mimetype.UserPath) (handler.Handler, error) {
	if rule, ok := r.Rules.Match(path.String()); ok {
		return rule, nil
	}
	mime, err := path.Mime()
	if err != nil {
		return nil, err
	}
	return r.Resolve(mime)
}

// AssignPaths resolves every path and groups them per handler. Handler
// groups appear in order of first use and each group keeps the input
// order of its paths. The first resolution failure aborts the batch.
func (r *Resolver) AssignPaths(paths []*mimetype.UserPath) ([]*Assignment, error) {
	var assignments []*Assignment
	byKey := map[string]*Assignment{}

	for _, path := range paths {
		h, err := r.ResolvePath(path)
		if err != nil {
			return nil, err
		}
		key := h.Key()
		assignment, ok := byKey[key]
		if !ok {
			assignment = &Assignment{Handler: h}
			byKey[key] = assignment
			assignments = append(assignments, assignment)
		}
		assignment.Paths = append(assignment.Paths, path.String())
	}
	return assignments, nil
}

// EnsureTerminal returns the launch command for the user's terminal
// emulator, with the configured exec arguments appended. When nothing
// is registered it falls back to scanning installed applications for a
// terminal emulator, persists the discovery, and notifies the user
// once. The result is memoized.
func (r *Resolver) EnsureTerminal() (string, error) {
	if r.terminalDone {
		return r.terminalCmd, r.terminalErr
	}
	r.terminalDone = true
	r.terminalCmd, r.terminalErr = r.resolveTerminal()
	return r.terminalCmd, r.terminalErr
}

func (r *Resolver) resolveTerminal() (string, error) {
	h, err := r.Resolve(TerminalMime)
	if err == nil {
		entry, err := h.Entry(r.Locales)
		if err != nil {
			return "", err
		}
		return r.terminalCommand(entry), nil
	}

	var notFound *handler.NotFoundError
	if !errors.As(err, &notFound) {
		return "", err
	}

	guess, entry, ok := r.System.TerminalEmulator()
	if !ok {
		return "", launch.ErrNoTerminal
	}

	r.Registry.AddAssociation(TerminalMime, guess)
	if err := r.Registry.Save(); err != nil {
		log.Warn().Err(err).Msg("could not persist guessed terminal emulator")
	}
	if r.Notify != nil {
		r.Notify("default terminal",
			entry.Name+" will be used as the default terminal emulator. Run 'openwith set x-scheme-handler/terminal' to change it.")
	}
	log.Debug().Str("terminal", string(guess)).Msg("guessed terminal emulator")
	return r.terminalCommand(entry), nil
}

func (r *Resolver) terminalCommand(entry *desktop.Entry) string {
	if r.Config.TermExecArgs == "" {
		return entry.Exec
	}
	return entry.Exec + " " + r.Config.TermExecArgs
}
