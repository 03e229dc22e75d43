package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/meetlayout/pkg/errors"
	"github.com/matzehuels/meetlayout/pkg/grid"
)

type gridOptions struct {
	width      int
	height     int
	gutter     int
	aspect     string
	items      int
	focused    bool
	candidates bool
}

// gridCommand creates the grid command for packing camera tiles.
func (c *CLI) gridCommand() *cobra.Command {
	var opts gridOptions

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Pack camera tiles into a canvas",
		Long: `Pack camera tiles into a canvas.

Every column count from 1 to the number of tiles is tried; the one covering the
largest area with tiles of the given aspect ratio wins. With --focused and more
than two tiles, the first tile takes four cells and single-row or
single-column grids are ruled out.`,
		Example: `  meetlayout grid --width 1200 --height 800 --items 4
  meetlayout grid --width 1200 --height 800 --items 6 --aspect 16:9 --focused --candidates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGrid(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in px")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in px")
	cmd.Flags().IntVar(&opts.gutter, "gutter", -1, "gap between tiles in px (default: from --defaults)")
	cmd.Flags().StringVar(&opts.aspect, "aspect", "", "tile aspect ratio as W:H or a number (default: from --defaults)")
	cmd.Flags().IntVarP(&opts.items, "items", "n", 1, "number of tiles")
	cmd.Flags().BoolVar(&opts.focused, "focused", false, "enlarge the first tile")
	cmd.Flags().BoolVar(&opts.candidates, "candidates", false, "list every evaluated column count")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")

	return cmd
}

func (c *CLI) runGrid(cmd *cobra.Command, opts gridOptions) error {
	defaults, err := c.defaults()
	if err != nil {
		return fmt.Errorf("load defaults: %w", err)
	}
	p := grid.Params{
		CanvasWidth:  opts.width,
		CanvasHeight: opts.height,
		Gutter:       defaults.GridGutter,
		AspectRatio:  defaults.GridAspectRatio,
		Items:        opts.items,
		Focused:      opts.focused,
	}
	if opts.gutter >= 0 {
		p.Gutter = opts.gutter
	}
	if opts.aspect != "" {
		if p.AspectRatio, err = parseAspect(opts.aspect); err != nil {
			return err
		}
	}

	spec, err := grid.Pack(p)
	if err != nil {
		return fmt.Errorf("pack grid: %w", err)
	}

	stdout := cmd.OutOrStdout()
	if opts.candidates {
		cands, err := grid.Candidates(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, candidateTable(cands, spec))
	}
	printKeyValueTo(stdout, "grid", fmt.Sprintf("%d x %d", spec.Columns, spec.Rows))
	printKeyValueTo(stdout, "size", fmt.Sprintf("%d x %d px", spec.Width, spec.Height))
	printKeyValueTo(stdout, "cell", fmt.Sprintf("%d x %d px", spec.CellWidth(p.Gutter), spec.CellHeight(p.Gutter)))
	printKeyValueTo(stdout, "tile area", strconv.Itoa(spec.FilledArea))
	if p.FocusApplies() {
		printKeyValueTo(stdout, "focus", fmt.Sprintf("%d cells for %d tiles", p.EffectiveItems(), p.Items))
	}
	return nil
}

// parseAspect reads "16:9", "4/3" or "1.5".
func parseAspect(s string) (float64, error) {
	sep := strings.IndexAny(s, ":/")
	if sep < 0 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return 0, errors.New(errors.ErrCodeInvalidInput, "invalid aspect ratio %q", s)
		}
		return v, nil
	}
	w, errW := strconv.ParseFloat(s[:sep], 64)
	h, errH := strconv.ParseFloat(s[sep+1:], 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid aspect ratio %q", s)
	}
	return w / h, nil
}
