package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openwith/openwith/internal/mimetype"
	"github.com/openwith/openwith/internal/render"
)

var mimeJSON bool

var mimeCmd = &cobra.Command{
	Use:   "mime <path|url>...",
	Short: "Show the MIME type each path or URL classifies to",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMime,
}

func init() {
	mimeCmd.Flags().BoolVar(&mimeJSON, "json", false, "emit JSON")
	rootCmd.AddCommand(mimeCmd)
}

func runMime(cmd *cobra.Command, args []string) error {
	type classified struct {
		Path string `json:"path"`
		Mime string `json:"mime"`
	}

	results := make([]classified, 0, len(args))
	for _, arg := range args {
		path, err := mimetype.ParseUserPath(arg)
		if err != nil {
			return err
		}
		mime, err := path.Mime()
		if err != nil {
			return err
		}
		results = append(results, classified{Path: path.String(), Mime: string(mime)})
	}

	if mimeJSON {
		return writeJSON(results)
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Path, r.Mime})
	}
	return render.Table(os.Stdout, terminalOutput, []string{"Path", "Mime"}, rows)
}
