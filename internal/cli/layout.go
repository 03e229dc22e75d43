package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/meetlayout/pkg/grid"
	pkgio "github.com/matzehuels/meetlayout/pkg/io"
	"github.com/matzehuels/meetlayout/pkg/layout"
	"github.com/matzehuels/meetlayout/pkg/render"
)

type layoutOptions struct {
	output string
	reset  bool
	table  bool
	text   bool
	svg    string
}

// layoutCommand creates the layout command for computing one pass.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout [state.json|state.toml|state.yaml]",
		Short: "Compute the screen regions for a layout state",
		Long: `Compute the screen regions for a layout state.

The state file describes the device class, the window size and the inputs of
every region (open sidebars, camera count, current slide, ...). Fields left out
keep their session-start values for a desktop.

The result is written as JSON to stdout, or to --output. Use --table for a
human-readable summary, --text for a character map of the screen and --svg to
draw the regions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.reset, "reset", false, "apply the session-start input of the device class first")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print a region table instead of JSON")
	cmd.Flags().BoolVar(&opts.text, "text", false, "print a character map of the regions")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "also draw the regions to an SVG file")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, cmd *cobra.Command, input string, opts layoutOptions) error {
	logger := loggerFromContext(ctx)

	defaults, err := c.defaults()
	if err != nil {
		return fmt.Errorf("load defaults: %w", err)
	}
	state, err := pkgio.ImportState(input)
	if err != nil {
		return fmt.Errorf("load state %s: %w", input, err)
	}
	if opts.reset {
		state = layout.Reset(state)
	}

	prog := newProgress(logger)
	out, err := layout.Calculate(state, defaults)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	spec := dockGrid(state, out, defaults)
	prog.done("Computed layout")

	if opts.svg != "" {
		svg := render.OutputSVG(out, render.WithLabels(), render.WithGrid(spec, defaults.GridGutter))
		if err := os.WriteFile(opts.svg, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.svg, err)
		}
		logger.Debug("wrote svg", "path", opts.svg)
	}

	stdout := cmd.OutOrStdout()
	switch {
	case opts.table:
		fmt.Fprintln(stdout, StyleTitle.Render(fmt.Sprintf("%s %.0fx%.0f", state.DeviceClass, state.Window.Width, state.Window.Height)))
		fmt.Fprintln(stdout, regionTable(out))
		if !spec.IsZero() {
			fmt.Fprintln(stdout, StyleDim.Render(fmt.Sprintf("camera grid %dx%d, %dx%d px", spec.Columns, spec.Rows, spec.Width, spec.Height)))
		}
	case opts.text:
		fmt.Fprint(stdout, colorize(render.Text(out, textColumns, textRows)))
	case opts.output == "":
		if err := pkgio.WriteOutput(out, stdout); err != nil {
			return err
		}
	}

	if opts.output != "" {
		if err := pkgio.ExportOutput(out, opts.output); err != nil {
			return fmt.Errorf("write output %s: %w", opts.output, err)
		}
		printSuccess("Layout complete")
		printFile(opts.output)
		if opts.svg != "" {
			printFile(opts.svg)
		}
		printNewline()
		printNextStep("Watch for changes", appName+" watch "+input)
	}
	return nil
}

// dockGrid packs the state's cameras into the dock of out. It returns the
// zero spec when there is nothing to pack.
func dockGrid(state layout.State, out layout.Output, d layout.Defaults) grid.Spec {
	n := state.Input.CameraDock.NumCameras
	if n < 1 || out.CameraDock.Area() == 0 {
		return grid.Spec{}
	}
	spec, err := grid.Pack(grid.Params{
		CanvasWidth:  int(out.CameraDock.Width),
		CanvasHeight: int(out.CameraDock.Height),
		Gutter:       d.GridGutter,
		AspectRatio:  d.GridAspectRatio,
		Items:        n,
	})
	if err != nil {
		return grid.Spec{}
	}
	return spec
}
