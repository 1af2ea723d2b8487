package commands

import (
	"github.com/spf13/cobra"

	"github.com/openwith/openwith/internal/handler"
	"github.com/openwith/openwith/internal/mimetype"
)

var removeCmd = &cobra.Command{
	Use:   "remove <mime|.ext> <handler.desktop>",
	Short: "Remove one handler from a MIME type or extension",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mime, err := mimetype.ParseMimeOrExtension(args[0])
		if err != nil {
			return err
		}
		if !reg.RemoveHandler(mime, handler.DesktopHandler(args[1])) {
			return nil
		}
		return reg.Save()
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
