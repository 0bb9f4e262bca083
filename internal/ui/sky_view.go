package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/EthanLiu015/SkyTrackr/internal/astro"
	"github.com/EthanLiu015/SkyTrackr/internal/ephemeris"
	"github.com/EthanLiu015/SkyTrackr/internal/locate"
	"github.com/EthanLiu015/SkyTrackr/internal/state"
)

const (
	// Field of view in degrees
	fovAz  = 120.0 // horizontal FOV
	fovAlt = 60.0  // vertical FOV

	// Camera pan step per keypress
	panStep = 10.0

	// Animation
	animDuration  = 400 * time.Millisecond
	animFrameRate = 30 * time.Millisecond

	// Focus marker
	glyphFocus = '◎'
	colorFocus = "229" // bright gold

	// Planet glyphs by apparent size
	glyphPlanetLarge = '●'
	glyphPlanetSmall = '•'

	// Star glyphs by magnitude
	glyphStarBright  = '✶' // mag < 1.5
	glyphStarMedium  = '✸' // mag 1.5-3.0
	glyphStarDim     = '·' // mag >= 3.0

	// Star colors (grayscale so planets stand out)
	colorStarBright = "255"
	colorStarMedium = "250"
	colorStarDim    = "244"
)

// LabelMode controls how object labels are displayed.
type LabelMode int

const (
	LabelFocused LabelMode = iota // only the focus target
	LabelPlanets                  // planets and the focus target
	LabelNone
)

// SkyViewModel renders the sky dome with stars and planets.
type SkyViewModel struct {
	width  int
	height int

	// Camera position (center of view)
	camAz  float64
	camAlt float64

	// Animation state
	animating    bool
	animStartAz  float64
	animStartAlt float64
	animTargAz   float64
	animTargAlt  float64
	animStart    time.Time

	// Label display mode
	labelMode LabelMode

	// Session snapshot
	snapshot state.Snapshot
}

// NewSkyViewModel creates a new sky view model looking south at 45°.
func NewSkyViewModel() SkyViewModel {
	return SkyViewModel{
		camAz:     180,
		camAlt:    45,
		labelMode: LabelFocused,
	}
}

// SetSize updates the viewport size.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a fresh session snapshot.
func (m SkyViewModel) UpdateData(snapshot state.Snapshot) SkyViewModel {
	m.snapshot = snapshot
	return m
}

// FocusOn pans the camera to a located object with an eased animation.
func (m SkyViewModel) FocusOn(aim locate.Aim) (SkyViewModel, tea.Cmd) {
	m.animating = true
	m.animStartAz = m.camAz
	m.animStartAlt = m.camAlt
	m.animTargAz = aim.Horizontal.AzDeg
	m.animTargAlt = aim.Horizontal.AltDeg
	m.animStart = time.Now()
	return m, animTick()
}

// animTickMsg is sent during animation
type animTickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(animFrameRate, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Update handles messages.
func (m SkyViewModel) Update(msg tea.Msg) (SkyViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			m.camAz = normalizeAngle360(m.camAz - panStep)
			m.animating = false
		case "right":
			m.camAz = normalizeAngle360(m.camAz + panStep)
			m.animating = false
		case "up":
			m.camAlt = clampF(m.camAlt+panStep, 0, 90)
			m.animating = false
		case "down":
			m.camAlt = clampF(m.camAlt-panStep, 0, 90)
			m.animating = false
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		}

	case animTickMsg:
		if m.animating {
			return m.updateAnimation()
		}
	}

	return m, nil
}

func (m SkyViewModel) updateAnimation() (SkyViewModel, tea.Cmd) {
	elapsed := time.Since(m.animStart)
	t := float64(elapsed) / float64(animDuration)

	if t >= 1.0 {
		m.animating = false
		m.camAz = normalizeAngle360(m.animTargAz)
		m.camAlt = m.animTargAlt
		return m, nil
	}

	// Ease-out cubic
	t = 1 - math.Pow(1-t, 3)

	m.camAz = normalizeAngle360(lerpAngle(m.animStartAz, m.animTargAz, t))
	m.camAlt = lerp(m.animStartAlt, m.animTargAlt, t)

	return m, animTick()
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Sky view requires larger terminal"
	}

	viewHeight := m.height - 3
	viewWidth := m.width

	canvas := m.renderSkyCanvas(viewWidth, viewHeight)

	var b strings.Builder
	b.WriteString(m.renderViewHeader())
	b.WriteString("\n")
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m SkyViewModel) renderViewHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FD1F7"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := titleStyle.Render("Sky")

	var labelStr string
	switch m.labelMode {
	case LabelFocused:
		labelStr = dimStyle.Render("Labels: focus")
	case LabelPlanets:
		labelStr = dimStyle.Render("Labels: planets")
	case LabelNone:
		labelStr = dimStyle.Render("Labels: off")
	}

	compass := dimStyle.Render(fmt.Sprintf("Az:%.0f° Alt:%.0f°", m.camAz, m.camAlt))

	return fmt.Sprintf("  %s | %s | %s", title, labelStr, compass)
}

func (m SkyViewModel) renderStatus() string {
	focus := m.snapshot.Focus
	if focus == nil {
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
		return "  " + dimStyle.Render("No focus target, press / to find an object")
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorFocus))
	line := fmt.Sprintf(">>> %s (%s) | Az:%.1f° Alt:%.1f°",
		focus.Name, focus.Kind, focus.Horizontal.AzDeg, focus.Horizontal.AltDeg)
	return "  " + accentStyle.Render(line)
}

// objectPos tracks a drawn object for label rendering.
type objectPos struct {
	x, y      int
	name      string
	isFocused bool
	isPlanet  bool
	color     lipgloss.Color
}

func (m SkyViewModel) renderSkyCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236"
		}
	}

	horizonY := m.horizonRow(height)
	obs := m.snapshot.Observer
	now := m.snapshot.SimTime

	var positions []objectPos
	focusName := ""
	if m.snapshot.Focus != nil {
		focusName = m.snapshot.Focus.Name
	}

	// Stars first so planets draw over them on collisions.
	for _, star := range m.snapshot.Catalog.Stars {
		h := astro.EquatorialToHorizontal(star.Equatorial, obs, now)
		if !h.Visible() {
			continue
		}
		x, y, ok := m.projectToScreen(h.AzDeg, h.AltDeg, width, height)
		if !ok || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}

		glyph, color := starGlyph(star.Vmag)
		canvas[y][x] = glyph
		colors[y][x] = color

		if star.Label() == focusName {
			positions = append(positions, objectPos{x: x, y: y, name: star.Label(), isFocused: true, color: colorFocus})
		}
	}

	// Planets at the simulated time.
	for _, p := range ephemeris.Positions(now) {
		h := astro.EquatorialToHorizontal(p.Equatorial, obs, now)
		if !h.Visible() {
			continue
		}
		x, y, ok := m.projectToScreen(h.AzDeg, h.AltDeg, width, height)
		if !ok || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}

		glyph := glyphPlanetSmall
		if p.RelativeSize >= 1 {
			glyph = glyphPlanetLarge
		}
		color := lipgloss.Color(p.Color)
		isFocused := p.Name == focusName
		if isFocused {
			glyph = glyphFocus
			color = colorFocus
		}
		canvas[y][x] = glyph
		colors[y][x] = color

		positions = append(positions, objectPos{x: x, y: y, name: p.Name, isFocused: isFocused, isPlanet: true, color: color})
	}

	// Horizon line.
	for x := 0; x < width; x++ {
		canvas[horizonY][x] = '─'
		colors[horizonY][x] = "60"
	}

	// Cardinal directions on the horizon.
	m.drawCardinal(canvas, colors, width, height, 'N', 0)
	m.drawCardinal(canvas, colors, width, height, 'E', 90)
	m.drawCardinal(canvas, colors, width, height, 'S', 180)
	m.drawCardinal(canvas, colors, width, height, 'W', 270)

	m.renderLabels(canvas, colors, width, horizonY, positions)

	// Observer marker at bottom center.
	obsX, obsY := width/2, height-1
	if obsY >= 0 && obsX >= 0 && obsX < width {
		canvas[obsY][obsX] = '▲'
		colors[obsY][obsX] = "46"
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderLabels draws object labels. Focused labels always win collisions.
func (m SkyViewModel) renderLabels(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY int, positions []objectPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	for _, pos := range positions {
		show := false
		switch m.labelMode {
		case LabelFocused:
			show = pos.isFocused
		case LabelPlanets:
			show = pos.isFocused || pos.isPlanet
		}
		if !show {
			continue
		}

		labelText := pos.name
		if pos.isFocused {
			labelText = "◄ " + pos.name
		}

		start := pos.x + 2
		for i, r := range []rune(labelText) {
			x := start + i
			if x < 0 || x >= width || pos.y < 0 || pos.y >= horizonY {
				continue
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = pos.color
		}
	}
}

// starGlyph returns the glyph and color for a star's magnitude. Brighter
// stars (lower magnitude) get more prominent symbols.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

func (m SkyViewModel) drawCardinal(canvas [][]rune, colors [][]lipgloss.Color, width, height int, label rune, az float64) {
	x, _, ok := m.projectToScreen(az, 0, width, height)
	if !ok {
		return
	}
	y := m.horizonRow(height)

	if x >= 0 && x < width && y >= 0 && y < height {
		canvas[y][x] = label
		colors[y][x] = "252"
	}
}

// horizonRow is the canvas row used for the horizon line.
func (m SkyViewModel) horizonRow(height int) int {
	return height - 2
}

// projectToScreen converts az/alt to screen coordinates relative to
// the camera. The third return value is false outside the field of view.
func (m SkyViewModel) projectToScreen(az, alt float64, width, height int) (int, int, bool) {
	dAz := normalizeAngle(az - m.camAz)
	dAlt := alt - m.camAlt

	if dAz < -fovAz/2 || dAz > fovAz/2 {
		return 0, 0, false
	}
	if dAlt < -fovAlt/2 || dAlt > fovAlt/2 {
		return 0, 0, false
	}

	// X: -fovAz/2..+fovAz/2 -> 0..width
	// Y: +fovAlt/2..-fovAlt/2 -> 0..horizonY (higher alt = higher on screen)
	horizonY := m.horizonRow(height)

	x := int((dAz + fovAz/2) / fovAz * float64(width))
	y := int((fovAlt/2 - dAlt) / fovAlt * float64(horizonY))

	return x, y, true
}

// normalizeAngle wraps an angle to the -180..+180 range.
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

// normalizeAngle360 wraps an angle to the 0..360 range.
func normalizeAngle360(a float64) float64 {
	for a >= 360 {
		a -= 360
	}
	for a < 0 {
		a += 360
	}
	return a
}

// lerpAngle interpolates between angles, taking the shortest path.
func lerpAngle(a, b, t float64) float64 {
	diff := normalizeAngle(b - a)
	return a + diff*t
}

// lerp linear interpolation
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Init returns nil cmd
func (m SkyViewModel) Init() tea.Cmd {
	return nil
}
