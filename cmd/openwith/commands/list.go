package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/openwith/openwith/internal/handler"
	"github.com/openwith/openwith/internal/mimetype"
	"github.com/openwith/openwith/internal/render"
)

var (
	listAll  bool
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the configured default applications",
	Long: `Show the configured default applications per MIME type. With --all,
the added associations and the installed-application catalog are
included. Output degrades to tab-separated lines when piped.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false,
		"include added associations and installed applications")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "emit JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	defaults := associationRows(reg.DefaultApps)
	if !listAll {
		if listJSON {
			return writeJSON(associationMap(reg.DefaultApps))
		}
		return render.Table(os.Stdout, terminalOutput, []string{"MIME", "Handlers"}, defaults)
	}

	if listJSON {
		return writeJSON(map[string]map[string][]string{
			"default_apps":       associationMap(reg.DefaultApps),
			"added_associations": associationMap(reg.AddedAssociations),
			"system_apps":        associationMap(catalog.Associations),
		})
	}

	fmt.Println("Default Apps")
	if err := render.Table(os.Stdout, terminalOutput, []string{"MIME", "Handlers"}, defaults); err != nil {
		return err
	}
	if len(reg.AddedAssociations) > 0 {
		fmt.Println("Added Associations")
		if err := render.Table(os.Stdout, terminalOutput, []string{"MIME", "Handlers"},
			associationRows(reg.AddedAssociations)); err != nil {
			return err
		}
	}
	fmt.Println("System Apps")
	return render.Table(os.Stdout, terminalOutput, []string{"MIME", "Handlers"},
		associationRows(catalog.Associations))
}

func associationRows[L ~[]handler.DesktopHandler](associations map[mimetype.Type]L) [][]string {
	mimes := sortedMimes(associations)
	rows := make([][]string, 0, len(mimes))
	for _, mime := range mimes {
		rows = append(rows, []string{string(mime), joinHandlers(associations[mime])})
	}
	return rows
}

func associationMap[L ~[]handler.DesktopHandler](associations map[mimetype.Type]L) map[string][]string {
	out := make(map[string][]string, len(associations))
	for mime, handlers := range associations {
		names := make([]string, 0, len(handlers))
		for _, h := range handlers {
			names = append(names, string(h))
		}
		out[string(mime)] = names
	}
	return out
}

func sortedMimes[L ~[]handler.DesktopHandler](associations map[mimetype.Type]L) []mimetype.Type {
	mimes := make([]mimetype.Type, 0, len(associations))
	for mime := range associations {
		mimes = append(mimes, mime)
	}
	sort.Slice(mimes, func(i, j int) bool { return mimes[i] < mimes[j] })
	return mimes
}

func joinHandlers(handlers []handler.DesktopHandler) string {
	out := ""
	for i, h := range handlers {
		if i > 0 {
			out += ", "
		}
		out += string(h)
	}
	return out
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(v)
}
