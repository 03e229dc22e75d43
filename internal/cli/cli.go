// Package cli implements the meetlayout command-line interface.
//
// # Commands
//
//   - layout: compute the regions for a state file
//   - grid: pack camera tiles into a canvas
//   - plan: show the calculator dependency plan
//   - watch: recompute live whenever a state file changes
//   - preview: interactive terminal preview driven by the terminal size
//   - serve: run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --log-format json for machine-readable logs. The logger is attached to the
// command context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/meetlayout/pkg/buildinfo"
	pkgio "github.com/matzehuels/meetlayout/pkg/io"
	"github.com/matzehuels/meetlayout/pkg/layout"
)

const appName = "meetlayout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	defaultsPath string
	logFormat    string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Meetlayout computes video conference screen layouts",
		Long:         `Meetlayout computes where the bars, sidebars, presentation and camera dock of a video conference go for a given window and device, and packs camera tiles into the dock.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setLogFormat(c.Logger, c.logFormat); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.defaultsPath, "defaults", "", "layout constants file (.json, .toml, .yaml)")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", logFormatText, "log format: text or json")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// defaults returns the stock constants, overlaid with --defaults if set.
func (c *CLI) defaults() (layout.Defaults, error) {
	if c.defaultsPath == "" {
		return layout.DefaultDefaults(), nil
	}
	d, err := pkgio.ImportDefaults(c.defaultsPath)
	if err != nil {
		return layout.Defaults{}, err
	}
	c.Logger.Debug("loaded defaults", "path", c.defaultsPath)
	return d, nil
}
