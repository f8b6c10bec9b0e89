package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spincube/internal/config"
	"github.com/san-kum/spincube/internal/engine"
	"github.com/san-kum/spincube/internal/render"
)

const historyCapacity = 120

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the interactive dashboard. Unlike the classic loop there is
// no background reader: Bubble Tea owns the terminal, so key events arrive
// as messages and the angles live on the model itself.
type Model struct {
	renderer *engine.Renderer
	cfg      *config.Config

	ax, ay   float64
	running  bool
	frames   int
	lastTick time.Time
	fps      float64

	xHistory []float64
	yHistory []float64
}

func NewModel(cfg *config.Config) Model {
	proj := render.Projector{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Scale:    cfg.Scale,
		Distance: cfg.Distance,
	}
	return Model{
		renderer: engine.NewRenderer(proj, cfg.CubeSize, cfg.MarkerByte()),
		cfg:      cfg,
		running:  true,
		xHistory: make([]float64, 0, historyCapacity),
		yHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.cfg.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.ax, m.ay = 0, 0
			m.xHistory = m.xHistory[:0]
			m.yHistory = m.yHistory[:0]
		case "up":
			m.ax += m.cfg.Step
		case "down":
			m.ax -= m.cfg.Step
		case "right":
			m.ay += m.cfg.Step
		case "left":
			m.ay -= m.cfg.Step
		}
	case TickMsg:
		if m.running {
			m.xHistory = appendCapped(m.xHistory, m.ax)
			m.yHistory = appendCapped(m.yHistory, m.ay)
		}
		m.frames++
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			if dt := now.Sub(m.lastTick).Seconds(); dt > 0 {
				m.fps = 1 / dt
			}
		}
		m.lastTick = now
		return m, tea.Tick(m.cfg.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func appendCapped(hist []float64, v float64) []float64 {
	hist = append(hist, v)
	if len(hist) > historyCapacity {
		hist = hist[1:]
	}
	return hist
}

func (m Model) View() string {
	fb := m.renderer.Frame(m.ax, m.ay)
	canvasView := canvasStyle.Render(fb.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("SPINCUBE") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	s.WriteString(labelStyle.Render("Angle X") + valueStyle.Render(fmt.Sprintf("%.2f rad", m.ax)) + "\n")
	s.WriteString(labelStyle.Render("Angle Y") + valueStyle.Render(fmt.Sprintf("%.2f rad", m.ay)) + "\n")
	s.WriteString(labelStyle.Render("Angle Z") + valueStyle.Render(fmt.Sprintf("%.2f rad", engine.DeriveZ(m.ax, m.ay))) + "\n")
	s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%.0f", m.fps)) + "\n")
	s.WriteString(labelStyle.Render("Frames") + valueStyle.Render(fmt.Sprintf("%d", m.frames)) + "\n")

	if len(m.xHistory) > 1 {
		chart := asciigraph.Plot(m.xHistory, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("angle x"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.yHistory) > 1 {
		chart := asciigraph.Plot(m.yHistory, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("angle y"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("──────────────────\n←↑↓→ rotate  SP pause\nR reset  Q quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
