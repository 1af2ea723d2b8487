package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openwith/openwith/internal/desktop"
	"github.com/openwith/openwith/internal/mimetype"
)

var (
	completeDesktopFiles bool
	completeMimes        bool
)

// Consumed by the shell completion scripts, not by humans.
var autocompleteCmd = &cobra.Command{
	Use:    "autocomplete",
	Short:  "Print completion candidates",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runAutocomplete,
}

func init() {
	autocompleteCmd.Flags().BoolVarP(&completeDesktopFiles, "desktop-files", "d", false,
		"list installed desktop entries")
	autocompleteCmd.Flags().BoolVarP(&completeMimes, "mimes", "m", false,
		"list known MIME types and extensions")
	rootCmd.AddCommand(autocompleteCmd)
}

func runAutocomplete(cmd *cobra.Command, args []string) error {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	switch {
	case completeDesktopFiles:
		for _, entry := range desktop.Scan(locales) {
			fmt.Fprintf(w, "%s\t%s\n", entry.FileName, entry.Name)
		}
	case completeMimes:
		for _, ext := range mimetype.KnownExtensions() {
			fmt.Fprintln(w, ext)
		}
		for _, t := range mimetype.KnownTypes() {
			fmt.Fprintln(w, t)
		}
	}
	return w.Flush()
}
