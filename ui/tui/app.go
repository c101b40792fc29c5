package tui

import (
	"fmt"
	"time"

	"prodtable/internal/catalog"
	"prodtable/internal/columns"
	"prodtable/internal/config"
	"prodtable/internal/logging"
	"prodtable/internal/output"
	"prodtable/internal/reorder"
	"prodtable/internal/table"
	"prodtable/ui/tui/components"
	"prodtable/ui/tui/state"
	"prodtable/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
)

const (
	chartWidth  = 30
	chartHeight = 7
	detailWidth = 40
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	cfg     config.Config
	columns table.Set
	state   state.AppState
	keys    keyMap
	help    help.Model
	chart   components.Component
	hit     HitTester

	// floating drag indicator, smoothed towards the pointer
	spring     harmonica.Spring
	indX, indY float64
	velX, velY float64
	animating  bool

	lastHover columns.ID
	width     int
	height    int
	quitting  bool
}

// Messages
type AnimateMsg time.Time

// Option customises a MainModel.
type Option func(*MainModel)

// WithHitTester replaces the bubblezone hit testing, mainly for tests.
func WithHitTester(h HitTester) Option {
	return func(m *MainModel) { m.hit = h }
}

func InitialModel(cfg config.Config, products catalog.Products, opts ...Option) MainModel {
	zone.NewGlobal()

	set := table.DefaultColumns()
	order := cfg.Order()

	chart := components.NewQualityWidget(chartWidth, chartHeight)
	chart.Push(output.BuildSummary(products))

	m := MainModel{
		cfg:     cfg,
		columns: set,
		keys:    newKeyMap(cfg.KeyMappings),
		help:    help.New(),
		chart:   chart,
		hit:     zoneHitTester{},
		spring:  harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9),
		state: state.AppState{
			Products:   products,
			Reorder:    reorder.New(order),
			Widths:     table.DefaultWidths(set).Merge(set, cfg.Widths()),
			FocusCol:   order[0],
			ShowFooter: cfg.ShowFooter,
		},
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m *MainModel) Init() tea.Cmd {
	return nil
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Cancel):
		m.applyReorder(reorder.Cancel(m.state.Reorder))

	case key.Matches(msg, m.keys.Drop):
		if m.state.Reorder.Active() {
			m.applyReorder(reorder.Drop(m.state.Reorder, m.state.Reorder.Drag.Column))
		}

	case key.Matches(msg, m.keys.PickUp):
		if m.state.Reorder.Active() {
			m.applyReorder(reorder.Drop(m.state.Reorder, m.state.Reorder.Drag.Column))
			break
		}
		x, y := m.headerPos(m.state.FocusCol)
		return m, m.press(m.state.FocusCol, x, y)

	case key.Matches(msg, m.keys.PrevColumn):
		m.stepColumn(-1)

	case key.Matches(msg, m.keys.NextColumn):
		m.stepColumn(1)

	case key.Matches(msg, m.keys.PrevRow):
		if m.state.FocusRow > 0 {
			m.state.FocusRow--
		}

	case key.Matches(msg, m.keys.NextRow):
		if m.state.FocusRow < len(m.state.Products)-1 {
			m.state.FocusRow++
		}

	case key.Matches(msg, m.keys.Widen):
		m.resize(m.state.FocusCol, 1)

	case key.Matches(msg, m.keys.Narrow):
		m.resize(m.state.FocusCol, -1)

	case key.Matches(msg, m.keys.QualityUp):
		m.bumpQuality(1)

	case key.Matches(msg, m.keys.QualityDown):
		m.bumpQuality(-1)

	case key.Matches(msg, m.keys.ToggleFooter):
		m.state.ShowFooter = !m.state.ShowFooter
	}

	return m, nil
}

// stepColumn moves focus to the neighbouring column, or while a drag is in
// progress, hovers the dragged column over the nearest movable neighbour.
func (m *MainModel) stepColumn(dir int) {
	order := m.state.Order()
	if !m.state.Reorder.Active() {
		if i := order.IndexOf(m.state.FocusCol) + dir; i >= 0 && i < len(order) {
			m.state.FocusCol = order[i]
		}
		return
	}

	dragged := m.state.Reorder.Drag.Column
	for i := order.IndexOf(dragged) + dir; i >= 0 && i < len(order); i += dir {
		if reorder.CanDrop(order[i]) {
			m.applyReorder(reorder.Hover(m.state.Reorder, order[i]))
			x, y := m.headerPos(dragged)
			m.state.Reorder = reorder.Motion(m.state.Reorder, x, y)
			return
		}
	}
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	order := m.state.Order()

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if pid, _, ok := m.hit.QualityAt(msg, m.state.Products); ok {
			delta := 1
			if msg.Button == tea.MouseButtonWheelDown {
				delta = -1
			}
			if p, found := m.state.Products.Find(pid); found {
				m.setQuality(pid, p.Quality+delta)
			}
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if id, ok := m.hit.HeaderAt(msg, order); ok {
			if m.state.Reorder.Active() {
				break
			}
			m.state.FocusCol = id
			m.lastHover = id
			return m, m.press(id, msg.X, msg.Y)
		}
		if pid, relX, ok := m.hit.QualityAt(msg, m.state.Products); ok {
			m.state.FocusRow = m.state.Products.Index(pid)
			m.state.FocusCol = columns.Quality
			if v, ok := table.SliderValueAt(relX, m.state.Widths.Of(m.columns, columns.Quality)); ok {
				m.setQuality(pid, v)
			}
		}

	case msg.Action == tea.MouseActionMotion:
		if !m.state.Reorder.Active() {
			break
		}
		m.state.Reorder = reorder.Motion(m.state.Reorder, msg.X, msg.Y)
		id, ok := m.hit.HeaderAt(msg, order)
		if !ok {
			m.lastHover = ""
			break
		}
		// Only entering a header counts as a hover, so the order does not
		// flip back and forth while the pointer rests on a moved column.
		if id != m.lastHover {
			m.lastHover = id
			m.applyReorder(reorder.Hover(m.state.Reorder, id))
		}

	case msg.Action == tea.MouseActionRelease:
		if !m.state.Reorder.Active() {
			break
		}
		target, _ := m.hit.HeaderAt(msg, order)
		m.applyReorder(reorder.Drop(m.state.Reorder, target))
	}

	return m, nil
}

// press starts a drag and, if it took, the indicator animation. A drag
// already in flight is left alone.
func (m *MainModel) press(id columns.ID, x, y int) tea.Cmd {
	if m.state.Reorder.Active() {
		return nil
	}
	next := reorder.Press(m.state.Reorder, id, x, y)
	if !next.Active() {
		logging.Logger.Debug("drag refused", "column", id)
		return nil
	}
	logging.Logger.Debug("drag start", "column", id, "origin", next.Drag.Origin)
	m.state.Reorder = next
	m.indX, m.indY = float64(x), float64(y)
	m.velX, m.velY = 0, 0
	if m.animating {
		return nil
	}
	m.animating = true
	return animateCmd()
}

// applyReorder installs the next controller state, settling a finished
// gesture back to idle.
func (m *MainModel) applyReorder(next reorder.State) {
	prev := m.state.Reorder
	if !next.Order.Equal(prev.Order) {
		logging.Logger.Debug("column order", "order", next.Order.String())
	}
	switch next.Phase {
	case reorder.Dropped, reorder.Cancelled:
		logging.Logger.Debug("drag end", "column", prev.Drag.Column, "phase", next.Phase.String(), "order", next.Order.String())
		m.state.FocusCol = prev.Drag.Column
		m.lastHover = ""
		next = reorder.Settle(next)
	}
	m.state.Reorder = next
}

// headerPos is the screen cell of the header of id.
func (m *MainModel) headerPos(id columns.ID) (int, int) {
	x := 0
	for _, c := range m.state.Order() {
		if c == id {
			break
		}
		x += m.state.Widths.Of(m.columns, c) + 1
	}
	return x, views.TableTop
}

func (m *MainModel) resize(id columns.ID, delta int) {
	if next, ok := m.state.Widths.Resize(m.columns, id, delta); ok {
		m.state.Widths = next
	}
}

func (m *MainModel) bumpQuality(delta int) {
	p, ok := m.state.FocusedProduct()
	if !ok {
		return
	}
	m.setQuality(p.ID, p.Quality+delta)
}

// setQuality is the quality mutation callback: it swaps in a new product list
// with one record replaced.
func (m *MainModel) setQuality(id string, q int) {
	next, err := m.state.Products.WithQuality(id, q, m.cfg.Policy())
	if err != nil {
		logging.Logger.Error("quality edit", "product", id, "quality", q, "error", err)
		m.state.Err = err
		return
	}
	m.state.Products = next
	m.state.Err = nil
	if p, ok := next.Find(id); ok {
		m.state.Status = fmt.Sprintf("%s quality set to %d", p.Name, p.Quality)
		logging.Logger.Info("quality edit", "product", id, "quality", p.Quality)
	}
	if w, ok := m.chart.(*components.QualityWidget); ok {
		w.Push(output.BuildSummary(next))
	}
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	if !m.state.Reorder.Active() {
		m.animating = false
		return m, nil
	}
	d := m.state.Reorder.Drag
	m.indX, m.velX = m.spring.Update(m.indX, m.velX, float64(d.X))
	m.indY, m.velY = m.spring.Update(m.indY, m.velY, float64(d.Y))
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.chart.Resize(max(chartWidth, msg.Width/4), chartHeight)
	return m, nil
}

func (m *MainModel) indicator() views.Indicator {
	if !m.state.Reorder.Active() {
		return views.Indicator{}
	}
	return views.Indicator{
		Visible: true,
		Label:   string(m.state.Reorder.Drag.Column),
		X:       int(m.indX + 0.5),
		Y:       int(m.indY+0.5) + 1,
	}
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	detail := views.EmptyDetail()
	if p, ok := m.state.FocusedProduct(); ok {
		detail = views.RenderDetail(p, m.cfg.MarkdownStyle, detailWidth)
	}

	return views.RenderTable(m.state, views.ViewProps{
		Width:      m.width,
		Height:     m.height,
		Title:      m.cfg.Title,
		Columns:    m.columns,
		ChartView:  m.chart.View(),
		DetailView: detail,
		HelpView:   m.help.View(m.keys),
		Indicator:  m.indicator(),
	})
}

func Start(cfg config.Config, products catalog.Products) error {
	m := InitialModel(cfg, products)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
