// Command dashboard runs a small live dashboard on the layout engine. The
// tree is spawned once; every resize triggers a fresh layout pass and every
// frame repaints the same entities.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"elemtui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	world  *elemtui.World
	root   elemtui.Entity
	gauge  *elemtui.Gauge
	status *elemtui.Text
	width  int
	height int
	ratio  float64
	err    error
}

func newModel() (*model, error) {
	gauge := elemtui.NewGauge(0).Styled(elemtui.DefaultStyle().Foreground(elemtui.Green))
	status := elemtui.NewText("live")

	tree := elemtui.Ui(elemtui.NewBlock("dashboard")).
		With(elemtui.Vertical, elemtui.Gap(1)).
		Children(
			elemtui.Ui(nil).
				With(elemtui.Height(elemtui.Fixed(1)), elemtui.Gap(2)).
				Children(
					elemtui.Ui(elemtui.NewText("elemtui").Bold()),
					elemtui.Ui(elemtui.NewSpacer()).With(elemtui.Width(elemtui.Grow())),
					elemtui.Ui(status),
				),
			elemtui.Ui(nil).
				With(elemtui.Height(elemtui.Grow()), elemtui.Gap(1)).
				Children(
					elemtui.Ui(elemtui.NewFill('·').Styled(elemtui.DefaultStyle().Foreground(elemtui.BrightBlack))).
						With(elemtui.Width(elemtui.Grow(1)), elemtui.Height(elemtui.Grow())),
					elemtui.Ui(elemtui.NewFill(' ')).
						With(elemtui.Width(elemtui.Grow(3)), elemtui.Height(elemtui.Grow())),
				),
			elemtui.Ui(gauge).With(elemtui.Height(elemtui.Fixed(1))),
		)

	world := elemtui.NewWorld()
	root, err := world.Spawn(tree)
	if err != nil {
		return nil, err
	}
	return &model{world: world, root: root, gauge: gauge, status: status}, nil
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.err = m.world.CalculateLayout(m.root, elemtui.NewRect(0, 0, m.width, m.height))
	case tickMsg:
		m.ratio += 0.05
		if m.ratio > 1 {
			m.ratio = 0
		}
		m.gauge.SetRatio(m.ratio)
		m.status.SetContent(fmt.Sprintf("%3.0f%%", m.ratio*100))
		if m.width > 0 && m.height > 0 {
			m.err = m.world.CalculateLayout(m.root, elemtui.NewRect(0, 0, m.width, m.height))
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("layout: %v", m.err)
	}
	buf := elemtui.NewBuffer(m.width, m.height)
	m.world.Render(m.root, buf.Area(), buf)
	return ansiRender(buf)
}

// ansiRender flattens a buffer into a frame string, styling each run of
// identically styled cells once.
func ansiRender(buf *elemtui.Buffer) string {
	var b strings.Builder
	for y := 0; y < buf.Height(); y++ {
		var run strings.Builder
		var runStyle elemtui.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(termStyle(runStyle).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < buf.Width(); x++ {
			c := buf.Get(x, y)
			if c.Style != runStyle {
				flush()
				runStyle = c.Style
			}
			run.WriteRune(c.Rune)
		}
		flush()
		if y < buf.Height()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func termStyle(s elemtui.Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if c, ok := termColor(s.FG); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := termColor(s.BG); ok {
		ls = ls.Background(c)
	}
	if s.Attr.Has(elemtui.AttrBold) {
		ls = ls.Bold(true)
	}
	if s.Attr.Has(elemtui.AttrItalic) {
		ls = ls.Italic(true)
	}
	if s.Attr.Has(elemtui.AttrUnderline) {
		ls = ls.Underline(true)
	}
	if s.Attr.Has(elemtui.AttrDim) {
		ls = ls.Faint(true)
	}
	if s.Attr.Has(elemtui.AttrInverse) {
		ls = ls.Reverse(true)
	}
	return ls
}

func termColor(c elemtui.Color) (lipgloss.TerminalColor, bool) {
	switch c.Mode {
	case elemtui.Color16, elemtui.Color256:
		return lipgloss.Color(fmt.Sprintf("%d", c.Index)), true
	case elemtui.ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
	default:
		return nil, false
	}
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dashboard"})

	m, err := newModel()
	if err != nil {
		logger.Fatal("spawn failed", "err", err)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Fatal("program exited", "err", err)
	}
}
