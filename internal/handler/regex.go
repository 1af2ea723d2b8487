package handler

import (
	"regexp"
	"strings"

	"github.com/openwith/openwith/internal/desktop"
)

// RegexHandler is an inline command bound to a set of patterns. A path
// matching any pattern routes to it, bypassing MIME resolution.
type RegexHandler struct {
	Exec     string
	Terminal bool

	patterns []*regexp.Regexp
	sources  []string
}

// NewRegexHandler compiles the pattern set. Identity is defined over
// the pattern source strings, not the compiled values.
func NewRegexHandler(exec string, terminal bool, patterns []string) (*RegexHandler, error) {
	h := &RegexHandler{
		Exec:     exec,
		Terminal: terminal,
		sources:  append([]string(nil), patterns...),
	}
	for _, src := range patterns {
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, err
		}
		h.patterns = append(h.patterns, re)
	}
	return h, nil
}

// Patterns returns the pattern source strings.
func (h *RegexHandler) Patterns() []string {
	return append([]string(nil), h.sources...)
}

// Match reports whether any pattern matches the rendered path.
func (h *RegexHandler) Match(path string) bool {
	for _, re := range h.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Equal compares two regex handlers by exec, terminal flag, and
// pattern source text.
func (h *RegexHandler) Equal(other *RegexHandler) bool {
	if other == nil || h.Exec != other.Exec || h.Terminal != other.Terminal {
		return false
	}
	if len(h.sources) != len(other.sources) {
		return false
	}
	for i, src := range h.sources {
		if other.sources[i] != src {
			return false
		}
	}
	return true
}

func (h *RegexHandler) Key() string {
	return "regex:" + h.Exec + "\x1f" + strings.Join(h.sources, "\x1f")
}

// Entry fabricates a descriptor carrying only the exec template and
// terminal flag; the other fields stay empty.
func (h *RegexHandler) Entry([]string) (*desktop.Entry, error) {
	return &desktop.Entry{
		Exec:     h.Exec,
		Terminal: h.Terminal,
	}, nil
}

// Rules is the ordered regex router. First matching rule wins; there
// is no notion of specificity.
type Rules []*RegexHandler

// Match returns the first rule matching the rendered path.
func (r Rules) Match(path string) (*RegexHandler, bool) {
	for _, rule := range r {
		if rule.Match(path) {
			return rule, true
		}
	}
	return nil, false
}
