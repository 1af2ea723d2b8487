// Package ui implements the interactive handler picker with several
// interchangeable backends.
package ui

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rivo/tview"
)

// ErrCancelled is returned when the user dismisses the picker without
// choosing. Callers must treat it as a clean exit, not a failure.
var ErrCancelled = errors.New("selection cancelled")

// SelectorError reports a selector process that could not be run.
type SelectorError struct {
	Cmd string
	Err error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("error spawning selector process %q: %v", e.Cmd, e.Err)
}

func (e *SelectorError) Unwrap() error { return e.Err }

// Option is one pickable handler: a human-readable label and the
// identity handed back on selection.
type Option struct {
	Label string
	ID    string
}

// Selector runs the configured picker over a set of options.
type Selector struct {
	// Backend is one of auto|huh|bubbletea|tview|command|plain.
	Backend string
	// Command is the external picker invocation for the command
	// backend. Labels are written to its stdin, one per line; the
	// choice is read from stdout; empty output means cancel.
	Command string
}

// Pick returns the ID of the chosen option. The plain backend takes
// the first option without interaction.
func (s Selector) Pick(title string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", ErrCancelled
	}
	if len(options) == 1 {
		return options[0].ID, nil
	}

	var firstErr error
	for _, candidate := range backendCandidates(s.Backend) {
		var (
			id  string
			err error
		)
		switch candidate {
		case BackendHuh:
			id, err = pickWithHuh(title, options)
		case BackendBubbleTea:
			id, err = pickWithBubbleTea(title, options)
		case BackendTView:
			id, err = pickWithTView(title, options)
		case BackendCommand:
			id, err = s.pickWithCommand(options)
		case BackendPlain:
			return options[0].ID, nil
		default:
			continue
		}
		if err != nil && !errors.Is(err, ErrCancelled) {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return id, err
	}
	if firstErr != nil {
		return "", firstErr
	}
	return options[0].ID, nil
}

func (s Selector) pickWithCommand(options []Option) (string, error) {
	fields := splitCommand(s.Command)
	if len(fields) == 0 {
		return "", &SelectorError{Cmd: s.Command, Err: errors.New("empty selector command")}
	}

	labels := make([]string, 0, len(options))
	byLabel := make(map[string]string, len(options))
	for _, option := range options {
		labels = append(labels, option.Label)
		byLabel[option.Label] = option.ID
	}

	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdin = strings.NewReader(strings.Join(labels, "\n"))
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		// A nonzero exit is how dmenu-style selectors signal dismissal;
		// only a process that could not run at all is a real failure.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", &SelectorError{Cmd: s.Command, Err: err}
		}
	}

	choice := strings.TrimRight(out.String(), "\n")
	if choice == "" {
		return "", ErrCancelled
	}
	id, ok := byLabel[choice]
	if !ok {
		return "", ErrCancelled
	}
	return id, nil
}

// splitCommand splits a selector invocation into argv, honoring
// single and double quotes. Escapes are not interpreted.
func splitCommand(command string) []string {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inArg   bool
	)
	for _, r := range command {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}

func pickWithHuh(title string, options []Option) (string, error) {
	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, option := range options {
		huhOptions = append(huhOptions, huh.NewOption(option.Label, option.ID))
	}

	choice := huhOptions[0].Value
	prompt := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Filtering(true).
		Height(huhSelectHeight(len(huhOptions))).
		Value(&choice).
		WithTheme(huh.ThemeCharm())

	if err := prompt.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return choice, nil
}

type pickerItem struct {
	label string
	id    string
}

func (i pickerItem) Title() string       { return i.label }
func (i pickerItem) Description() string { return "" }
func (i pickerItem) FilterValue() string { return i.label }

type pickerModel struct {
	list      list.Model
	selection string
	cancelled bool
	options   int
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch k := msg.(type) {
	case tea.WindowSizeMsg:
		width, height := pickerSize(k.Width, k.Height, m.options)
		m.list.SetSize(width, height)
		return m, nil
	case tea.KeyMsg:
		switch k.String() {
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				m.selection = item.id
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

func pickWithBubbleTea(title string, options []Option) (string, error) {
	items := make([]list.Item, 0, len(options))
	for _, option := range options {
		items = append(items, pickerItem{label: option.Label, id: option.ID})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	initialWidth, initialHeight := pickerSize(80, 24, len(items))
	picker := list.New(items, delegate, initialWidth, initialHeight)
	picker.Title = title
	picker.SetShowHelp(false)
	picker.SetFilteringEnabled(true)

	model := pickerModel{list: picker, options: len(items)}
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}
	out, ok := final.(pickerModel)
	if !ok || out.cancelled || out.selection == "" {
		return "", ErrCancelled
	}
	return out.selection, nil
}

func pickWithTView(title string, options []Option) (string, error) {
	app := tview.NewApplication()
	listView := tview.NewList()
	listView.SetBorder(true)
	listView.SetTitle(title)
	listView.ShowSecondaryText(false)

	selection := ""
	chosen := false
	for _, option := range options {
		current := option
		listView.AddItem(current.Label, "", 0, func() {
			selection = current.ID
			chosen = true
			app.Stop()
		})
	}
	listView.SetDoneFunc(func() {
		app.Stop()
	})

	if err := app.SetRoot(listView, true).SetFocus(listView).Run(); err != nil {
		return "", err
	}
	if !chosen {
		return "", ErrCancelled
	}
	return selection, nil
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func pickerSize(termWidth, termHeight, optionCount int) (int, int) {
	if termWidth <= 0 {
		termWidth = 80
	}
	if termHeight <= 0 {
		termHeight = 24
	}
	if optionCount < 1 {
		optionCount = 1
	}

	maxWidth := termWidth
	minWidth := 32
	if maxWidth < minWidth {
		minWidth = maxWidth
	}
	width := clampInt(termWidth-4, minWidth, maxWidth)

	visibleItems := clampInt(optionCount, 3, 12)
	desiredHeight := visibleItems + 6

	maxHeight := termHeight - 2
	if maxHeight <= 0 {
		maxHeight = 1
	}
	minHeight := 8
	if maxHeight < minHeight {
		minHeight = maxHeight
	}
	height := clampInt(desiredHeight, minHeight, maxHeight)
	return width, height
}

func huhSelectHeight(optionCount int) int {
	if optionCount < 1 {
		optionCount = 1
	}
	return clampInt(optionCount+1, 4, 10)
}
