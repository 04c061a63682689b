// Package tui is the interactive flight console: keyboard control over
// the throttle and RCS with a live ascii view of the flight.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rocketsim/internal/env"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type trailPoint struct {
	x, alt float64
}

type model struct {
	e    *env.Env
	seed int64

	pending int // discrete action queued by the last keypress
	paused  bool
	done    bool
	speed   float64

	totalReward float64
	steps       int
	lastInfo    env.Info

	trail   []trailPoint
	history []float64 // altitude trace for the sparkline

	err    error
	width  int
	height int
}

func newModel(e *env.Env, seed int64) *model {
	return &model{
		e:       e,
		seed:    seed,
		speed:   1.0,
		trail:   make([]trailPoint, 0, 120),
		history: make([]float64, 0, 60),
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return tick() }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.paused || m.done {
			return m, tick()
		}
		steps := int(m.speed)
		if steps < 1 {
			steps = 1
		}
		for i := 0; i < steps && !m.done; i++ {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.restart()
		return m, tea.ClearScreen
	case "+", "=":
		m.speed = math.Min(m.speed*2, 8)
	case "-", "_":
		m.speed = math.Max(m.speed/2, 1)
	case "up", "k":
		m.pending = env.ActionThrottleUp
	case "down", "j":
		m.pending = env.ActionThrottleDown
	case "left", "h":
		m.pending = env.ActionRCSLeft
	case "right", "l":
		m.pending = env.ActionRCSRight
	case "o":
		m.pending = env.ActionCutoff
	}
	return m, nil
}

func (m *model) restart() {
	_, _, err := m.e.Reset(m.seed, nil)
	if err != nil {
		m.err = err
		m.done = true
		return
	}
	m.pending = 0
	m.paused = false
	m.done = false
	m.totalReward = 0
	m.steps = 0
	m.lastInfo = env.Info{}
	m.trail = m.trail[:0]
	m.history = m.history[:0]
}

func (m *model) step() {
	res, err := m.e.StepDiscrete(m.pending)
	m.pending = env.ActionNoop
	if err != nil {
		m.err = err
		m.done = true
		return
	}

	m.steps++
	m.totalReward += res.Reward
	m.lastInfo = res.Info

	s := m.e.Snapshot()
	m.trail = append(m.trail, trailPoint{s.Position.X, s.Altitude()})
	if len(m.trail) > 120 {
		m.trail = m.trail[1:]
	}
	m.history = append(m.history, s.Altitude())
	if len(m.history) > 60 {
		m.history = m.history[1:]
	}

	if res.Terminated || res.Truncated {
		m.done = true
	}
}

func (m model) View() string {
	if m.err != nil {
		return red.Render(fmt.Sprintf("\n   error: %v\n", m.err)) +
			dim.Render("   q quit\n")
	}

	cw := m.width - 6
	ch := m.height - 12
	if cw < 50 {
		cw = 50
	}
	if ch < 10 {
		ch = 10
	}

	canvas := make([][]rune, ch)
	for i := range canvas {
		canvas[i] = make([]rune, cw)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}
	m.drawFlight(canvas, cw, ch)

	var b strings.Builder

	b.WriteString("\n   " + m.statusLine() + "\n\n")

	for _, row := range canvas {
		b.WriteString("   " + string(row) + "\n")
	}

	b.WriteString("\n" + m.statsLine() + "\n")
	b.WriteString(m.consoleLine() + "\n")

	if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("alt"), cyan.Render(sparkline(m.history, 24))))
	}

	b.WriteString("\n" + dim.Render("   ↑↓ throttle  ←→ rcs  o cutoff  space pause  ± speed  r reset  q quit") + "\n")

	return b.String()
}

func (m model) statusLine() string {
	phase := m.e.Phase()
	var status string
	switch {
	case m.err != nil:
		status = red.Render("error")
	case phase == env.PhaseLanded:
		status = green.Render("● landed")
	case phase == env.PhaseCrashed:
		status = red.Render("✖ crashed")
	case phase == env.PhaseTimedOut:
		status = yellow.Render("◷ timed out")
	case m.paused:
		status = yellow.Render("○ paused")
	default:
		status = green.Render("● flying")
	}

	space := ""
	if m.e.ReachedSpace() {
		space = "  " + magenta.Render("★ space")
	}

	cfg := m.e.Config()
	s := m.e.Snapshot()
	timeStr := fmt.Sprintf("t=%.1fs/%.0fs", s.TimeElapsed, cfg.MaxEpisodeTime)
	return fmt.Sprintf("%s %s  %s%s  %s",
		cyan.Render("rocketsim"), status, dim.Render(timeStr), space,
		dim.Render(fmt.Sprintf("reward %.1f", m.totalReward)))
}

func (m model) statsLine() string {
	s := m.e.Snapshot()
	return "   " +
		dim.Render("alt=") + white.Render(fmt.Sprintf("%.0fm", s.Altitude())) + "  " +
		dim.Render("x=") + white.Render(fmt.Sprintf("%.0fm", s.Position.X)) + "  " +
		dim.Render("vy=") + white.Render(fmt.Sprintf("%.1f", s.Velocity.Y)) + "  " +
		dim.Render("vx=") + white.Render(fmt.Sprintf("%.1f", s.Velocity.X)) + "  " +
		dim.Render("θ=") + white.Render(fmt.Sprintf("%.2f", s.Angle)) + "  " +
		dim.Render("wind=") + white.Render(fmt.Sprintf("%.1f", m.lastInfo.Wind.X))
}

func (m model) consoleLine() string {
	s := m.e.Snapshot()
	cfg := m.e.Config()

	setting, engineOn := m.e.ThrottleSetting()
	throttle := 0.0
	if engineOn {
		throttle = setting
	}
	barWidth := 16
	tFilled := int(throttle * float64(barWidth))
	tBar := green.Render(strings.Repeat("█", tFilled)) + dimmer.Render(strings.Repeat("░", barWidth-tFilled))

	fuelFrac := 0.0
	if cfg.Params.FuelCapacity > 0 {
		fuelFrac = s.FuelMass / cfg.Params.FuelCapacity
	}
	fFilled := int(fuelFrac * float64(barWidth))
	fStyle := yellow
	if fuelFrac < 0.2 {
		fStyle = red
	}
	fBar := fStyle.Render(strings.Repeat("█", fFilled)) + dimmer.Render(strings.Repeat("░", barWidth-fFilled))

	engine := dim.Render("off")
	if engineOn {
		engine = green.Render(fmt.Sprintf("%3.0f%%", throttle*100))
	}
	return fmt.Sprintf("   %s %s %s   %s %s %s",
		dim.Render("throttle"), tBar, engine,
		dim.Render("fuel"), fBar, dim.Render(fmt.Sprintf("%.0fkg", s.FuelMass)))
}

// drawFlight renders a camera that follows the rocket: the horizontal
// axis is downrange position, the vertical axis altitude, rescaled each
// frame so the flight so far stays on screen.
func (m model) drawFlight(canvas [][]rune, w, h int) {
	s := m.e.Snapshot()
	cfg := m.e.Config()

	maxAlt := 60.0
	maxX := 120.0
	if s.Altitude() > maxAlt {
		maxAlt = s.Altitude()
	}
	for _, pt := range m.trail {
		if pt.alt > maxAlt {
			maxAlt = pt.alt
		}
		if math.Abs(pt.x) > maxX {
			maxX = math.Abs(pt.x)
		}
	}
	if math.Abs(s.Position.X) > maxX {
		maxX = math.Abs(s.Position.X)
	}

	gy := h - 2
	toCanvas := func(x, alt float64) (int, int) {
		cx := w/2 + int(x/maxX*float64(w/2-2))
		cy := gy - int(alt/maxAlt*float64(gy-2))
		return cx, cy
	}

	// ground and pad
	for i := 0; i < w; i++ {
		canvas[gy+1][i] = '▀'
	}
	if cfg.PadHalfWidth > 0 {
		lx, _ := toCanvas(-cfg.PadHalfWidth, 0)
		rx, _ := toCanvas(cfg.PadHalfWidth, 0)
		for i := lx; i <= rx && i < w; i++ {
			if i >= 0 {
				canvas[gy+1][i] = '█'
			}
		}
	}

	for _, pt := range m.trail {
		tx, ty := toCanvas(pt.x, pt.alt)
		set(canvas, tx, ty, '·', w, h)
	}

	rx, ry := toCanvas(s.Position.X, s.Altitude())
	// body points along the rocket's attitude, flame below when burning
	nx := rx + int(3*math.Sin(s.Angle))
	ny := ry - int(3*math.Cos(s.Angle))
	drawLine(canvas, w, h, rx, ry, nx, ny, '│')
	set(canvas, nx, ny, '▲', w, h)
	set(canvas, rx, ry, '█', w, h)

	if _, engineOn := m.e.ThrottleSetting(); engineOn && !m.e.Phase().Done() {
		fx := rx - int(2*math.Sin(s.Angle))
		fy := ry + int(2*math.Cos(s.Angle))
		set(canvas, fx, fy, '▼', w, h)
	}
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func set(canvas [][]rune, x, y int, c rune, w, h int) {
	if x >= 0 && x < w && y >= 0 && y < h {
		canvas[y][x] = c
	}
}

func drawLine(canvas [][]rune, w, h, x1, y1, x2, y2 int, c rune) {
	dx := intAbs(x2 - x1)
	dy := intAbs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		set(canvas, x1, y1, c, w, h)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Play runs the interactive console until the user quits.
func Play(e *env.Env, seed int64) error {
	p := tea.NewProgram(newModel(e, seed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
