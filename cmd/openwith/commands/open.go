package commands

import (
	"github.com/spf13/cobra"

	"github.com/openwith/openwith/internal/launch"
	"github.com/openwith/openwith/internal/mimetype"
)

var openCmd = &cobra.Command{
	Use:   "open <path|url>...",
	Short: "Open paths and URLs with their resolved handlers",
	Long: `Open each path or URL with its resolved handler. Paths resolving to
the same handler are grouped into a single invocation. The first
invocation that fails aborts the rest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

func init() {
	addSelectorFlags(openCmd)
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	paths := make([]*mimetype.UserPath, 0, len(args))
	for _, arg := range args {
		path, err := mimetype.ParseUserPath(arg)
		if err != nil {
			return err
		}
		paths = append(paths, path)
	}

	assignments, err := res.AssignPaths(paths)
	if err != nil {
		return err
	}

	launcher := newLauncher()
	for _, assignment := range assignments {
		entry, err := assignment.Handler.Entry(locales)
		if err != nil {
			return err
		}
		if err := launcher.Exec(entry, launch.ModeOpen, assignment.Paths); err != nil {
			return err
		}
	}
	return nil
}
