package commands

import (
	"github.com/spf13/cobra"

	"github.com/openwith/openwith/internal/handler"
	"github.com/openwith/openwith/internal/mimetype"
)

var setCmd = &cobra.Command{
	Use:   "set <mime|.ext> <handler.desktop>",
	Short: "Set the default handler for a MIME type or extension",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mime, err := mimetype.ParseMimeOrExtension(args[0])
		if err != nil {
			return err
		}
		h, err := handler.ResolveDesktop(args[1])
		if err != nil {
			return err
		}
		reg.SetHandler(mime, h)
		return reg.Save()
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
