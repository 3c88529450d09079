package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/drop"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/history"
	"github.com/samuelgirmametaferia/Oil-dropv2/internal/sim"
)

const (
	canvasWidth  = 56
	canvasHeight = 22
	frameRate    = 30
	historyCap   = 360
	pulseLength  = 0.5 // s
)

type TickMsg time.Time

// Model is the live view of the cell: the drop between the plates on
// the left, readouts and a position history graph on the right.
type Model struct {
	params *drop.Parameters
	state  *drop.State
	noise  drop.NoiseSource
	rng    *rand.Rand

	canvas   *Canvas
	hist     *history.Buffer
	trail    []struct{ x, y int }
	t        float64
	field    float64
	running  bool
	showHelp bool
}

// NewModel wires the live view to an existing parameter/state pair.
func NewModel(p *drop.Parameters, s *drop.State, noise drop.NoiseSource, seed int64) Model {
	return Model{
		params:  p,
		state:   s,
		noise:   noise,
		rng:     rand.New(rand.NewSource(seed)),
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		hist:    history.NewBuffer(historyCap),
		trail:   make([]struct{ x, y int }, 0, 120),
		field:   p.Field(),
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
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
			m.reset()
		case "n":
			m.state.Randomize(m.params, m.rng)
			m.trail = m.trail[:0]
		case "f":
			m.params.FieldOn = !m.params.FieldOn
		case "p":
			m.params.Pulse(pulseLength)
		case "v":
			m.params.SetVoltage(m.params.Voltage - 100)
		case "V":
			m.params.SetVoltage(m.params.Voltage + 100)
		case "c":
			m.state.SetChargeCount(m.state.ChargeCount - 1)
		case "C":
			m.state.SetChargeCount(m.state.ChargeCount + 1)
		case "[":
			m.state.SetRadius(m.state.Radius-0.1e-6, m.params)
		case "]":
			m.state.SetRadius(m.state.Radius+0.1e-6, m.params)
		case "t":
			m.params.SetTemperature(m.params.Temperature - 5)
		case "T":
			m.params.SetTemperature(m.params.Temperature + 5)
		case "b":
			m.params.SetNoiseBoost(m.params.NoiseBoost - 0.1)
		case "B":
			m.params.SetNoiseBoost(m.params.NoiseBoost + 0.1)
		case "g":
			m.state.SetGap(m.params.PlateGap-0.5e-3, m.params, true)
		case "G":
			m.state.SetGap(m.params.PlateGap+0.5e-3, m.params, true)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.field = sim.Advance(m.state, m.params, 1.0/frameRate, m.noise)
			m.t += 1.0 / frameRate
			m.hist.Push(history.Sample{
				Time:     m.t,
				Position: m.state.Position,
				Velocity: m.state.Velocity,
				Field:    m.field,
			})
			x, y := m.dropXY()
			m.trail = append(m.trail, struct{ x, y int }{x, y})
			if len(m.trail) > 120 {
				m.trail = m.trail[1:]
			}
		}
		return m, tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) reset() {
	m.t = 0
	m.trail = m.trail[:0]
	m.hist.Clear()
	*m.params = *drop.DefaultParameters()
	m.state.Reset(m.params)
	m.field = m.params.Field()
}

// dropXY maps the drop position into sub-pixel canvas coordinates
// between the plate rows.
func (m *Model) dropXY() (int, int) {
	cw, ch := canvasWidth*2, canvasHeight*4
	topY, botY := 3, ch-4
	frac := 0.0
	if m.params.PlateGap > 0 {
		frac = m.state.Position / m.params.PlateGap
	}
	y := botY - int(frac*float64(botY-topY))
	return cw / 2, y
}

func (m *Model) draw() {
	cw, ch := canvasWidth*2, canvasHeight*4
	topY, botY := 3, ch-4
	m.canvas.Clear()

	// Plates.
	m.canvas.HLine(2, cw-3, topY)
	m.canvas.HLine(2, cw-3, topY-2)
	m.canvas.HLine(2, cw-3, botY)
	m.canvas.HLine(2, cw-3, botY+2)

	// Field lines with an arrowhead at the end the field points to.
	// The drop's own column stays clear.
	if m.params.FieldOn && m.field != 0 {
		for _, x := range []int{cw / 6, cw / 3, 2 * cw / 3, 5 * cw / 6} {
			m.canvas.VLine(x, topY+5, botY-5)
			if m.field < 0 { // field points down
				m.canvas.Set(x-2, botY-7)
				m.canvas.Set(x+2, botY-7)
				m.canvas.Set(x-1, botY-6)
				m.canvas.Set(x+1, botY-6)
			} else {
				m.canvas.Set(x-2, topY+7)
				m.canvas.Set(x+2, topY+7)
				m.canvas.Set(x-1, topY+6)
				m.canvas.Set(x+1, topY+6)
			}
		}
	}

	// Trail and drop.
	for _, pt := range m.trail {
		m.canvas.Set(pt.x, pt.y)
	}
	x, y := m.dropXY()
	m.canvas.Blob(x, y, 2)
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("MILLIKAN CELL") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.params.PulseTimer > 0 {
		status += fmt.Sprintf("  PULSE %.2fs", m.params.PulseTimer)
	}
	s.WriteString(status + "\n\n")

	if positions := m.hist.Positions(); len(positions) > 1 {
		mm := make([]float64, len(positions))
		for i, p := range positions {
			mm[i] = p * 1e3
		}
		chart := asciigraph.Plot(mm,
			asciigraph.Height(5),
			asciigraph.Width(32),
			asciigraph.Caption("height (mm)"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	fieldDesc := "off"
	if m.params.FieldOn {
		fieldDesc = fmt.Sprintf("%+.1f kV/m", m.field/1e3)
	}

	vt := drop.TerminalVelocity(m.state, m.params, m.field)
	rows := []struct{ label, value string }{
		{"Time", fmt.Sprintf("%.1fs", m.t)},
		{"Voltage", fmt.Sprintf("%.2f kV", m.params.Voltage/1e3)},
		{"Gap", fmt.Sprintf("%.1f mm", m.params.PlateGap*1e3)},
		{"Radius", fmt.Sprintf("%.2f um", m.state.Radius*1e6)},
		{"Charge", fmt.Sprintf("%+de", m.state.ChargeCount)},
		{"Temperature", fmt.Sprintf("%.0f K", m.params.Temperature)},
		{"Noise boost", fmt.Sprintf("%.1f", m.params.NoiseBoost)},
		{"Height", fmt.Sprintf("%.3f mm", m.state.Position*1e3)},
		{"Velocity", fmt.Sprintf("%+.1f um/s", m.state.Velocity*1e6)},
		{"Terminal v", fmt.Sprintf("%+.1f um/s", vt*1e6)},
	}
	for _, row := range rows {
		s.WriteString(labelStyle.Render(row.label) + valueStyle.Render(row.value) + "\n")
	}
	s.WriteString(labelStyle.Render("Field") + fieldStyle.Render(fieldDesc) + "\n")

	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset N:New drop Q:Quit\nF:Field P:Pulse v/V:Voltage c/C:Charge\n[ ]:Radius t/T:Temp b/B:Noise g/G:Gap ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset to defaults        ║
║  N        - Spray a new random drop  ║
║  F        - Toggle the field         ║
║  P        - Polarity pulse (0.5s)    ║
║  v / V    - Voltage -/+ 100V         ║
║  c / C    - Charge -/+ 1e            ║
║  [ / ]    - Radius -/+ 0.1um         ║
║  t / T    - Temperature -/+ 5K       ║
║  b / B    - Noise boost -/+ 0.1      ║
║  g / G    - Plate gap -/+ 0.5mm      ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
