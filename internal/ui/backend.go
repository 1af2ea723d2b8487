package ui

import "strings"

const (
	BackendAuto      = "auto"
	BackendBubbleTea = "bubbletea"
	BackendHuh       = "huh"
	BackendTView     = "tview"
	BackendCommand   = "command"
	BackendPlain     = "plain"
)

func NormalizeBackend(backend string) string {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendAuto, "":
		return BackendAuto
	case BackendBubbleTea:
		return BackendBubbleTea
	case BackendHuh:
		return BackendHuh
	case BackendTView:
		return BackendTView
	case BackendCommand:
		return BackendCommand
	case BackendPlain:
		return BackendPlain
	default:
		return BackendAuto
	}
}

func backendCandidates(backend string) []string {
	switch NormalizeBackend(backend) {
	case BackendBubbleTea:
		return []string{BackendBubbleTea, BackendHuh, BackendTView}
	case BackendHuh:
		return []string{BackendHuh, BackendBubbleTea, BackendTView}
	case BackendTView:
		return []string{BackendTView, BackendBubbleTea, BackendHuh}
	case BackendCommand:
		return []string{BackendCommand}
	case BackendPlain:
		return []string{BackendPlain}
	default:
		return []string{BackendHuh, BackendBubbleTea, BackendTView}
	}
}
