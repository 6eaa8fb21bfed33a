package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/docksim/internal/dynamo"
	"github.com/san-kum/docksim/internal/experiment"
	"github.com/san-kum/docksim/internal/physics"
	"github.com/san-kum/docksim/internal/rendezvous"
)

const (
	canvasWidth     = 60
	canvasHeight    = 24
	trailCapacity   = 300
	historyCapacity = 600
	defaultScale    = 40.0
	frameRate       = time.Second / 30
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model steps an experiment once per frame and draws the approach in a
// target-centred frame.
type Model struct {
	exp        *experiment.Experiment
	name       string
	state      dynamo.State
	u          dynamo.Control
	steps      int
	dt         float64
	maxSteps   int
	canvas     *Canvas
	view       Viewport
	trail      [][2]float64
	errHistory []float64
	running    bool
	done       bool
	err        error
	showHelp   bool
}

func NewModel(exp *experiment.Experiment, name string) Model {
	cfg := exp.Config()
	return Model{
		exp:        exp,
		name:       name,
		state:      exp.InitialState(),
		u:          make(dynamo.Control, 3),
		dt:         cfg.Dt,
		maxSteps:   int(math.Round(cfg.Duration / cfg.Dt)),
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		view:       Viewport{Scale: defaultScale, Width: canvasWidth * 2, Height: canvasHeight * 4},
		trail:      make([][2]float64, 0, trailCapacity),
		errHistory: make([]float64, 0, historyCapacity),
		running:    true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			if !m.done {
				m.running = !m.running
			}
		case "r":
			m.reset()
		case "+", "=":
			m.view.Scale *= 1.25
		case "-", "_":
			m.view.Scale /= 1.25
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) elapsed() float64 { return float64(m.steps) * m.dt }

func (m *Model) step() {
	if m.done {
		return
	}
	next, u, err := m.exp.Simulator().Step(m.state, m.elapsed(), m.dt)
	m.u = u
	if err != nil {
		m.err = err
		m.halt()
		return
	}
	m.state = next
	m.steps++

	chase, target := physics.Bodies(m.state)
	m.trail = appendCapped(m.trail, [2]float64{chase.Pose.X - target.Pose.X, chase.Pose.Y - target.Pose.Y}, trailCapacity)
	sp := rendezvous.Standoff(target.Pose)
	m.errHistory = appendCapped(m.errHistory, math.Hypot(chase.Pose.X-sp.X, chase.Pose.Y-sp.Y), historyCapacity)

	if m.steps >= m.maxSteps {
		m.halt()
	}
}

func (m *Model) halt() {
	m.running = false
	m.done = true
}

func appendCapped[T any](s []T, v T, capacity int) []T {
	s = append(s, v)
	if len(s) > capacity {
		s = s[1:]
	}
	return s
}

func (m *Model) reset() {
	m.exp.Reset()
	m.state = m.exp.InitialState()
	m.u = make(dynamo.Control, 3)
	m.steps = 0
	m.trail = m.trail[:0]
	m.errHistory = m.errHistory[:0]
	m.err = nil
	m.done = false
	m.running = true
}

// draw renders the scene relative to the target so a drifting target stays
// centred.
func (m *Model) draw() {
	m.canvas.Clear()
	chase, target := physics.Bodies(m.state)
	rel := func(x, y float64) (int, int) {
		return m.view.Project(x-target.Pose.X, y-target.Pose.Y)
	}

	for _, p := range m.trail {
		px, py := m.view.Project(p[0], p[1])
		m.canvas.Set(px, py)
	}

	tx, ty := rel(target.Pose.X, target.Pose.Y)
	m.canvas.DrawCircle(tx, ty, int(math.Round(rendezvous.DefaultSafetyRadius*m.view.Scale)))
	m.drawHeading(tx, ty, target.Pose.Theta)
	m.canvas.Label(tx, ty, 'T')

	sp := rendezvous.Standoff(target.Pose)
	sx, sy := rel(sp.X, sp.Y)
	m.canvas.DrawCross(sx, sy, 2)

	cx, cy := rel(chase.Pose.X, chase.Pose.Y)
	m.drawHeading(cx, cy, chase.Pose.Theta)
	m.canvas.Label(cx, cy, 'C')
}

func (m *Model) drawHeading(x, y int, theta float64) {
	const length = 6.0
	m.canvas.DrawLine(x, y, x+int(math.Round(length*math.Cos(theta))), y-int(math.Round(length*math.Sin(theta))))
}

func (m Model) status() string {
	switch {
	case m.err != nil:
		return StatusFault.Render("FAULT: " + m.err.Error())
	case m.done:
		return StatusPaused.Render("DONE")
	case !m.running:
		return StatusPaused.Render("PAUSED")
	}
	return StatusRunning.Render("RUNNING")
}

func (m Model) View() string {
	m.draw()
	chase, target := physics.Bodies(m.state)
	summary := m.exp.Summary()

	var s strings.Builder
	s.WriteString(HeaderStyle.Render(strings.ToUpper(m.name)) + "\n")
	if summary.Identity.Name != "" {
		s.WriteString(Subtle.Render(fmt.Sprintf("%s #%d", summary.Identity.Name, summary.Identity.ID)) + "\n")
	}
	s.WriteString(m.status() + "\n\n")
	s.WriteString(Metric("Time", fmt.Sprintf("%.2fs", m.elapsed())) + "\n")
	s.WriteString(MetricLabel.Render("Mode") + ModeBadge(summary.Last.Mode) + "\n")
	s.WriteString(Metric("Command", fmt.Sprintf("%+.3f %+.3f %+.3f", m.u[0], m.u[1], m.u[2])) + "\n")
	s.WriteString(Metric("Separation", fmt.Sprintf("%.3f m", rendezvous.Separation(chase, target))) + "\n")
	s.WriteString(Metric("Speed", fmt.Sprintf("%.3f m/s", chase.Speed())) + "\n")
	if n := len(m.errHistory); n > 0 {
		s.WriteString(Metric("Standoff err", fmt.Sprintf("%.4f m", m.errHistory[n-1])) + "\n")
	}
	s.WriteString(MetricLabel.Render("Warnings") + WarningCount(summary.Warnings) + "\n")
	s.WriteString(Metric("Gated ticks", fmt.Sprintf("%d", summary.GatedTicks)) + "\n")
	if m.maxSteps > 0 {
		s.WriteString(MetricLabel.Render("Progress") + ProgressBar(float64(m.steps)/float64(m.maxSteps), 20) + "\n")
	}
	if len(m.errHistory) > 1 {
		chart := asciigraph.Plot(m.errHistory, asciigraph.Height(5), asciigraph.Width(36), asciigraph.Caption("standoff error"))
		s.WriteString("\n" + GraphStyle.Render(chart) + "\n")
	}
	s.WriteString("\n" + KeyHint.Render("space pause  r reset  +/- zoom  ? help  q quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, Panel.Render(m.canvas.String()), Panel.Render(s.String()))
	if m.showHelp {
		return Panel.Render(helpText) + "\n" + main
	}
	return main
}

const helpText = `C  chase      T  target      +  standoff point
circle: safety radius around the target
trail is drawn in the target frame

space  pause / resume
r      reset the run and the controller
+ -    zoom in / out
q      quit`
