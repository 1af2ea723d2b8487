package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openwith/openwith/internal/mimetype"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get <mime|.ext>",
	Short: "Show the handler that would open a MIME type or extension",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "emit JSON with name and command")
	addSelectorFlags(getCmd)
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	mime, err := mimetype.ParseMimeOrExtension(args[0])
	if err != nil {
		return err
	}
	h, err := res.Resolve(mime)
	if err != nil {
		return err
	}

	if !getJSON {
		fmt.Println(h.Key())
		return nil
	}

	entry, err := h.Entry(locales)
	if err != nil {
		return err
	}
	command, err := newLauncher().Command(entry, nil)
	if err != nil {
		return err
	}
	return writeJSON(map[string]string{
		"handler": h.Key(),
		"name":    entry.Name,
		"cmd":     command,
	})
}
