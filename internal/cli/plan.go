package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/meetlayout/pkg/layout"
	"github.com/matzehuels/meetlayout/pkg/render"
)

// planCommand prints the order in which region calculators run.
func (c *CLI) planCommand() *cobra.Command {
	var (
		svgPath string
		dot     bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the region calculator dependency plan",
		Long: `Show the region calculator dependency plan.

Each pass runs the region calculators in an order where every calculator comes
after the ones whose results it reads. Without flags the order is listed; --dot
prints the graph in Graphviz DOT format and --svg renders it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := layout.DefaultPlan()
			switch {
			case svgPath != "":
				return renderPlan(cmd.Context(), p, svgPath)
			case dot:
				fmt.Fprint(cmd.OutOrStdout(), p.ToDOT())
			default:
				needs := make(map[layout.StepID][]layout.StepID)
				for _, s := range p.Steps() {
					needs[s.ID] = s.Needs
				}
				for i, id := range p.Order() {
					line := fmt.Sprintf("%2d. %-24s", i+1, id)
					if len(needs[id]) > 0 {
						line += StyleDim.Render(fmt.Sprintf("after %v", needs[id]))
					}
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "render the plan to an SVG file")
	cmd.Flags().BoolVar(&dot, "dot", false, "print the plan as Graphviz DOT")
	return cmd
}

func renderPlan(ctx context.Context, p *layout.Plan, path string) error {
	spinner := newSpinner(ctx, "Rendering plan...")
	spinner.Start()
	svg, err := render.PlanSVG(p)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render plan: %w", err)
	}
	spinner.Stop()

	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess("Plan rendered")
	printFile(path)
	return nil
}
