// Package commands wires the CLI surface: one file per subcommand, a
// shared invocation built once before any command runs.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/openwith/openwith/internal/appdirs"
	"github.com/openwith/openwith/internal/config"
	"github.com/openwith/openwith/internal/desktop"
	"github.com/openwith/openwith/internal/launch"
	"github.com/openwith/openwith/internal/logging"
	"github.com/openwith/openwith/internal/notify"
	"github.com/openwith/openwith/internal/registry"
	"github.com/openwith/openwith/internal/resolver"
	"github.com/openwith/openwith/internal/system"
	"github.com/openwith/openwith/internal/ui"
)

var (
	verbose   bool
	logCloser io.Closer

	// Selector overrides, registered on open/get/launch only.
	enableSelector  bool
	selectorCommand string

	// Invocation state, built by setup and shared by every command.
	cfg            config.Config
	reg            *registry.Registry
	catalog        *system.Catalog
	res            *resolver.Resolver
	locales        []string
	terminalOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "openwith",
	Short: "Manage and launch default applications for files, URLs, and MIME types",
	Long: `openwith resolves which application opens a file, URL, or MIME type
and launches it. Associations live in the standard mimeapps.list; regex
rules in the config file can bypass MIME resolution for matching URLs.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log debug detail to stderr")
}

func setup(cmd *cobra.Command, args []string) error {
	logCloser = logging.Setup(verbose)
	terminalOutput = launch.StdoutIsTerminal()

	loaded, path, err := config.LoadOrCreate()
	if err != nil {
		return err
	}
	cfg = loaded
	log.Debug().Str("path", path).Msg("config loaded")

	if enableSelector {
		cfg.EnableSelector = true
	}
	if cmd.Flags().Changed("selector") {
		cfg.Selector = selectorCommand
		cfg.SelectorBackend = ui.BackendCommand
	}

	rules, err := cfg.CompileRules()
	if err != nil {
		return err
	}

	mimeappsPath, err := appdirs.MimeappsPath()
	if err != nil {
		return err
	}
	reg, err = registry.Load(mimeappsPath)
	if err != nil {
		return err
	}

	locales = desktop.Locales()
	catalog = system.Populate(locales)

	res = &resolver.Resolver{
		Registry: reg,
		System:   catalog,
		Config:   cfg,
		Rules:    rules,
		Locales:  locales,
		Notify:   notify.Send,
	}
	return nil
}

func newLauncher() *launch.Launcher {
	return &launch.Launcher{
		Terminal:   res.EnsureTerminal,
		InTerminal: terminalOutput,
	}
}

func addSelectorFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&enableSelector, "enable-selector", false,
		"offer a choice when several default handlers are set")
	cmd.Flags().StringVar(&selectorCommand, "selector", "",
		"external selector command, overrides the configured one")
}

// Execute runs the CLI and maps the outcome to an exit code. A
// cancelled selection exits 1 without an error report; other errors go
// to stderr on a terminal and to a desktop notification otherwise.
func Execute() int {
	err := rootCmd.Execute()
	if logCloser != nil {
		defer logCloser.Close()
	}
	if err == nil {
		return 0
	}
	if errors.Is(err, ui.ErrCancelled) {
		log.Info().Msg("selection cancelled")
		return 1
	}
	if launch.StdoutIsTerminal() {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	} else {
		notify.Send("openwith error", err.Error())
	}
	return 1
}
