package commands

import (
	"github.com/spf13/cobra"

	"github.com/openwith/openwith/internal/launch"
	"github.com/openwith/openwith/internal/mimetype"
)

var launchCmd = &cobra.Command{
	Use:   "launch <mime|.ext> [args...]",
	Short: "Launch the handler for a MIME type with the given arguments",
	Long: `Launch the handler for a MIME type or extension, passing all trailing
arguments to a single invocation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mime, err := mimetype.ParseMimeOrExtension(args[0])
		if err != nil {
			return err
		}
		h, err := res.Resolve(mime)
		if err != nil {
			return err
		}
		entry, err := h.Entry(locales)
		if err != nil {
			return err
		}
		return newLauncher().Exec(entry, launch.ModeLaunch, args[1:])
	},
}

func init() {
	addSelectorFlags(launchCmd)
	rootCmd.AddCommand(launchCmd)
}
