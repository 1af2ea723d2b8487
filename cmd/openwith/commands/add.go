package commands

import (
	"github.com/spf13/cobra"

	"github.com/openwith/openwith/internal/handler"
	"github.com/openwith/openwith/internal/mimetype"
)

var addCmd = &cobra.Command{
	Use:   "add <mime|.ext> <handler.desktop>",
	Short: "Add a handler for a MIME type or extension",
	Long: `Add a handler to the default list for a MIME type or extension. An
existing primary handler keeps its position; use set to replace it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mime, err := mimetype.ParseMimeOrExtension(args[0])
		if err != nil {
			return err
		}
		h, err := handler.ResolveDesktop(args[1])
		if err != nil {
			return err
		}
		reg.AddHandler(mime, h)
		return reg.Save()
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
