package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/meetlayout/pkg/geom"
	"github.com/matzehuels/meetlayout/pkg/layout"
	"github.com/matzehuels/meetlayout/pkg/render"
	"github.com/matzehuels/meetlayout/pkg/session"
)

// A terminal cell stands for this many pixels; cells are about twice as
// tall as they are wide.
const (
	pxPerColumn = 10
	pxPerRow    = 20

	// previewChrome is the number of rows taken by the header and help.
	previewChrome = 4
)

// previewCommand runs the interactive layout preview.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		device  string
		cameras int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the layout interactively in the terminal",
		Long: `Preview the layout interactively in the terminal.

The terminal is treated as the browser window: resize it and the layout
follows. Keys toggle the sidebars, change the camera count and the device
class.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := layout.ParseDeviceClass(device)
			if err != nil {
				return err
			}
			defaults, err := c.defaults()
			if err != nil {
				return fmt.Errorf("load defaults: %w", err)
			}
			ctx := cmd.Context()
			sess, err := session.New(ctx, class, geom.Size{},
				session.WithDefaults(defaults), session.WithLogger(loggerFromContext(ctx)))
			if err != nil {
				return err
			}
			defer sess.Close()
			if err := sess.SetCameras(cameras); err != nil {
				return err
			}

			_, err = tea.NewProgram(newPreviewModel(sess), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&device, "device", layout.Desktop.String(), "device class: desktop, mobile, tablet-portrait, tablet-landscape, tablet")
	cmd.Flags().IntVar(&cameras, "cameras", 0, "number of cameras")
	cmd.RegisterFlagCompletionFunc("device", completeDeviceClass)
	return cmd
}

// previewModel is the bubbletea model of the preview.
type previewModel struct {
	sess *session.Session
	view session.View
	cols int
	rows int
	err  error
}

func newPreviewModel(sess *session.Session) previewModel {
	return previewModel{sess: sess, view: sess.View()}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(msg.Height-previewChrome, 1)
		m.sess.Apply(layout.WindowResized(float64(m.cols*pxPerColumn), float64(m.rows*pxPerRow)))
	case tea.KeyMsg:
		state := m.sess.Store().State()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n":
			m.sess.Apply(layout.SidebarNavigationToggled(!state.Input.SidebarNavigation.IsOpen))
		case "c":
			if state.Input.SidebarContent.IsOpen {
				m.sess.Apply(layout.SidebarContentToggled(false))
			} else {
				m.sess.Apply(layout.PanelSelected(layout.PanelChat))
			}
		case "+", "=":
			if err := m.sess.SetCameras(state.Input.CameraDock.NumCameras + 1); err != nil {
				m.err = err
				return m, nil
			}
		case "-":
			_ = m.sess.SetCameras(max(state.Input.CameraDock.NumCameras-1, 0))
		case "d":
			classes := layout.DeviceClasses()
			m.sess.Apply(layout.DeviceClassChanged(classes[(int(state.DeviceClass)+1)%len(classes)]))
		case "b":
			m.sess.Apply(layout.BannerChanged(!state.Input.Banner.HasBanner, state.Input.Notifications.HasNotification))
		case "f":
			if state.Fullscreen.Element == layout.ElementPresentation {
				m.sess.Apply(layout.FullscreenChanged(layout.ElementNone, ""))
			} else {
				m.sess.Apply(layout.FullscreenChanged(layout.ElementPresentation, ""))
			}
		case "m":
			mode := layout.Both
			if state.LoadedMode == layout.Both {
				mode = layout.Single
			}
			m.sess.Apply(layout.LoadedModeChanged(mode))
		default:
			return m, nil
		}
	default:
		return m, nil
	}

	m.view, m.err = m.sess.Settle()
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	s := m.view.State
	header := fmt.Sprintf("%s  %.0fx%.0f px  cameras %d", s.DeviceClass, s.Window.Width, s.Window.Height, s.Input.CameraDock.NumCameras)
	if g := m.view.Grid; !g.IsZero() {
		header += fmt.Sprintf("  grid %dx%d", g.Columns, g.Rows)
	}
	b.WriteString(StyleTitle.Render(header))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("n nav  c chat  +/- cameras  d device  b banner  f fullscreen  m split  q quit"))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(printableError(m.err))
	}
	b.WriteString("\n")

	// The output covers Main, which is half the window when split.
	cols, rows := m.cols, m.rows
	if s.LoadedMode == layout.Both {
		cols, rows = cols/2, rows/2
	}
	b.WriteString(colorize(render.Text(m.view.Output, cols, rows)))
	return b.String()
}

var glyphStyles = map[byte]lipgloss.Style{
	render.Glyph(layout.RegionNavbar):            lipgloss.NewStyle().Foreground(colorBlue),
	render.Glyph(layout.RegionActionBar):         lipgloss.NewStyle().Foreground(colorGreen),
	render.Glyph(layout.RegionSidebarNavigation): lipgloss.NewStyle().Foreground(colorYellow),
	render.Glyph(layout.RegionSidebarContent):    lipgloss.NewStyle().Foreground(colorRed),
	render.Glyph(layout.RegionCameraDock):        lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	render.Glyph(layout.RegionPresentation):      lipgloss.NewStyle().Foreground(colorWhite),
	'.': lipgloss.NewStyle().Foreground(colorDim),
}

// colorize styles each run of equal glyphs of a character map.
func colorize(text string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		body := strings.TrimSuffix(line, "\n")
		for i := 0; i < len(body); {
			j := i
			for j < len(body) && body[j] == body[i] {
				j++
			}
			if st, ok := glyphStyles[body[i]]; ok {
				b.WriteString(st.Render(body[i:j]))
			} else {
				b.WriteString(body[i:j])
			}
			i = j
		}
		if len(body) < len(line) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
