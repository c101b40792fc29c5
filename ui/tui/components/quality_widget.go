package components

import (
	"fmt"

	"prodtable/internal/catalog"
	"prodtable/internal/output"
	"prodtable/internal/rating"
	"prodtable/internal/table"
	"prodtable/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// QualityWidget charts how many products sit at each quality value.
type QualityWidget struct {
	Chart   barchart.Model
	Summary output.Summary
	Width   int
	Height  int
}

func NewQualityWidget(width, height int) *QualityWidget {
	return &QualityWidget{
		Chart:  barchart.New(width, height),
		Width:  width,
		Height: height,
	}
}

func (c *QualityWidget) Init() tea.Cmd {
	return nil
}

// Push replaces the charted summary.
func (c *QualityWidget) Push(s output.Summary) {
	c.Summary = s
	c.redraw()
}

func (c *QualityWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *QualityWidget) Resize(w, h int) {
	if w == c.Width && h == c.Height {
		return
	}
	c.Width = w
	c.Height = h
	c.redraw()
}

// redraw rebuilds the chart; barchart keeps pushed data across resizes, so a
// fresh model is simpler than clearing.
func (c *QualityWidget) redraw() {
	c.Chart = barchart.New(c.Width, c.Height)
	bars := make([]barchart.BarData, 0, catalog.MaxQuality)
	for q := catalog.MinQuality; q <= catalog.MaxQuality; q++ {
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("%d", q),
			Values: []barchart.BarValue{{
				Name:  fmt.Sprintf("q%d", q),
				Value: float64(c.Summary.CountFor(q)),
				Style: lipgloss.NewStyle().Foreground(table.GradeColor(rating.Grade(q))),
			}},
		})
	}
	c.Chart.PushAll(bars)
	c.Chart.Draw()
}

func (c *QualityWidget) View() string {
	caption := fmt.Sprintf("%d products · mean %.2f", c.Summary.Count, c.Summary.MeanQuality)
	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render("Quality"),
			c.Chart.View(),
			styles.StatusStyle.Render(caption),
		),
	)
}
