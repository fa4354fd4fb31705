// Package tui is the terminal frontend: the same simulation as the GUI,
// rendered as a braille wireframe at a gentler frame rate. Fill has no
// monochrome braille answer, so filled and outlined cells both draw as
// edges here.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang/geo/r2"
	"github.com/guptarohit/asciigraph"

	"github.com/salt-die/soap/internal/arena"
	"github.com/salt-die/soap/internal/config"
	"github.com/salt-die/soap/internal/input"
	"github.com/salt-die/soap/internal/palette"
	"github.com/salt-die/soap/internal/partition"
	"github.com/salt-die/soap/internal/view"
)

const (
	canvasCols   = 80
	canvasRows   = 24
	frameRate    = 30
	speedHistory = 120
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// keyNames translates bubbletea key strings into logical keys. Steering
// keys are handled separately since terminals deliver repeats, not
// key-down state.
var keyNames = map[string]input.Key{
	"esc": input.KeyEscape,
	"r":   input.KeyR,
	"v":   input.KeyV,
	"b":   input.KeyB,
	"f":   input.KeyF,
	"o":   input.KeyO,
	"h":   input.KeyH,
	"up":  input.KeyUp,
	" ":   input.KeySpace,
	"q":   input.KeyQ,
}

// Model carries the simulation and its braille rendering state.
type Model struct {
	field     *arena.Field
	toggles   view.Toggles
	focusCell bool
	bounds    r2.Rect
	canvas    *Canvas
	regions   []partition.Region

	// heading collects steering keys between ticks; the next frame
	// consumes it.
	heading arena.Heading

	speeds []float64
	frame  int
}

func NewModel(cfg *config.Config) Model {
	field := arena.New(cfg.Params(), cfg.Seed)
	field.Bouncing = cfg.Bouncing
	return Model{
		field:     field,
		toggles:   cfg.Toggles(),
		focusCell: cfg.FocusCell,
		bounds:    cfg.Params().Bounds(),
		canvas:    NewCanvas(canvasCols, canvasRows),
		speeds:    make([]float64, 0, speedHistory),
	}
}

// Run blocks in the bubbletea program until quit.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch s := msg.String(); s {
		case "ctrl+c":
			return m, tea.Quit
		case "w":
			m.heading |= arena.HeadUp
		case "s":
			m.heading |= arena.HeadDown
		case "a":
			m.heading |= arena.HeadLeft
		case "d":
			m.heading |= arena.HeadRight
		default:
			if key, ok := keyNames[s]; ok {
				ev := input.Event{Action: input.Bindings[key]}
				if input.Apply(ev, m.field, &m.toggles) {
					return m, tea.Quit
				}
			}
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			at := m.arenaPoint(msg.X, msg.Y)
			switch msg.Button {
			case tea.MouseButtonLeft:
				input.Apply(input.Event{Action: input.PokeAt, At: at}, m.field, &m.toggles)
			case tea.MouseButtonRight:
				input.Apply(input.Event{Action: input.SpawnAt, At: at}, m.field, &m.toggles)
			}
		}
	case TickMsg:
		m.step()
		return m, tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step is one frame: apply the steering collected since the last tick,
// rebuild the partition, redraw the canvas.
func (m *Model) step() {
	m.field.Advance(m.heading)
	m.heading = 0
	m.frame++

	if m.toggles.Fill || m.toggles.Outline {
		sites := m.field.Points()
		if m.focusCell {
			sites = append(sites, m.field.Focus.Pos)
		}
		mode := partition.ModeFor(m.toggles.Dual)
		m.regions = partition.Build(mode, sites, m.field.Focus.Pos, m.bounds)
	} else {
		m.regions = nil
	}

	m.speeds = append(m.speeds, m.field.MeanSpeed())
	if len(m.speeds) > speedHistory {
		m.speeds = m.speeds[1:]
	}

	m.draw()
}

func (m *Model) draw() {
	m.canvas.Clear()
	sx := float64(m.canvas.DotWidth()) / m.field.Params.Width
	sy := float64(m.canvas.DotHeight()) / m.field.Params.Height

	for _, reg := range m.regions {
		n := len(reg.Verts)
		for i := 0; i < n; i++ {
			p, q := reg.Verts[i], reg.Verts[(i+1)%n]
			m.canvas.Line(int(p.X*sx), int(p.Y*sy), int(q.X*sx), int(q.Y*sy))
		}
	}
	if m.toggles.Centers {
		for _, c := range m.field.Centers {
			m.canvas.Mark(int(c.Pos.X*sx), int(c.Pos.Y*sy))
		}
	}
	// The focus marker ignores the centers toggle; a monochrome frame has
	// no colored cell to find it by.
	f := m.field.Focus.Pos
	m.canvas.Mark(int(f.X*sx), int(f.Y*sy))
}

// arenaPoint maps a terminal cell to arena coordinates. The canvas sits
// behind one row and two columns of style padding.
func (m Model) arenaPoint(cellX, cellY int) r2.Point {
	p := m.field.Params
	x := float64(cellX-2) * 2 / float64(m.canvas.DotWidth()) * p.Width
	y := float64(cellY-1) * 4 / float64(m.canvas.DotHeight()) * p.Height
	return r2.Point{X: clamp(x, 0, p.Width), Y: clamp(y, 0, p.Height)}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("SOAP") + "\n")
	s.WriteString(labelStyle.Render("Mode") + valueStyle.Render(partition.ModeFor(m.toggles.Dual).String()) + "\n")
	s.WriteString(labelStyle.Render("Centers") + valueStyle.Render(fmt.Sprintf("%d", len(m.field.Centers))) + "\n")
	s.WriteString(labelStyle.Render("Palette") + swatchStyle(m.toggles.Palette).Render(palette.At(m.toggles.Palette).Name) + "\n")
	s.WriteString(labelStyle.Render("Bounce") + valueStyle.Render(onOff(m.field.Bouncing)) + "\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.frame)) + "\n")

	if len(m.speeds) > 1 {
		chart := asciigraph.Plot(m.speeds, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("mean speed"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("wasd:steer  space:poke  click:poke\nv:dual b:bounce o:outline h:centers\nr:reset up:palette esc:help q:quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.toggles.Help {
		return helpOverlay() + "\n" + mainView
	}
	return mainView
}

// swatchStyle tints the palette name with that palette's own hue at phase
// zero.
func swatchStyle(idx int) lipgloss.Style {
	c := palette.At(idx).Apply(palette.Rainbow(0))
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).Bold(true)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func helpOverlay() string {
	var b strings.Builder
	b.WriteString("╭" + strings.Repeat("─", 54) + "╮\n")
	for _, line := range view.HelpLines {
		fmt.Fprintf(&b, "│ %-52s │\n", line)
	}
	b.WriteString("╰" + strings.Repeat("─", 54) + "╯")
	return b.String()
}
