package commands

import (
	"github.com/spf13/cobra"

	"github.com/openwith/openwith/internal/mimetype"
)

var unsetCmd = &cobra.Command{
	Use:   "unset <mime|.ext>",
	Short: "Remove all default handlers for a MIME type or extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mime, err := mimetype.ParseMimeOrExtension(args[0])
		if err != nil {
			return err
		}
		if !reg.UnsetHandler(mime) {
			return nil
		}
		return reg.Save()
	},
}

func init() {
	rootCmd.AddCommand(unsetCmd)
}
