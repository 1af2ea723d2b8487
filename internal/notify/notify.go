// Package notify surfaces desktop notifications for users who will
// not see stderr.
package notify

import (
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Send fires a desktop notification and does not wait for delivery.
// Failures are logged and swallowed; notifications are advisory.
func Send(title, body string) {
	cmd := exec.Command("notify-send", "--app-name", "openwith", title, body)
	if err := cmd.Start(); err != nil {
		log.Debug().Err(err).Msg("could not spawn notify-send")
		return
	}
	if err := cmd.Process.Release(); err != nil {
		log.Debug().Err(err).Msg("could not release notify-send process")
	}
}
