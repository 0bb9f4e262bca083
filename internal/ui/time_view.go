package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/EthanLiu015/SkyTrackr/internal/clock"
	"github.com/EthanLiu015/SkyTrackr/internal/state"
)

// Rate bounds for the double/halve keys.
const (
	minRateMagnitude = 0.125
	maxRateMagnitude = 1 << 20
)

// TimeControlModel drives the virtual clock: pause, rate changes,
// stepping and reset.
type TimeControlModel struct {
	width  int
	height int

	clock    *clock.Clock
	snapshot state.Snapshot
}

// NewTimeControlModel creates the time control view around a clock.
func NewTimeControlModel(clk *clock.Clock) TimeControlModel {
	return TimeControlModel{clock: clk}
}

// SetSize updates the viewport size.
func (m TimeControlModel) SetSize(width, height int) TimeControlModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a fresh session snapshot.
func (m TimeControlModel) UpdateData(snapshot state.Snapshot) TimeControlModel {
	m.snapshot = snapshot
	return m
}

// Update handles messages.
func (m TimeControlModel) Update(msg tea.Msg) (TimeControlModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.clock == nil {
		return m, nil
	}

	switch key.String() {
	case " ", "space":
		m.clock.TogglePause()
	case "+", "=":
		m.clock.SetRate(scaleRate(m.clock.Rate(), 2))
	case "-", "_":
		m.clock.SetRate(scaleRate(m.clock.Rate(), 0.5))
	case "n":
		m.clock.SetRate(-m.clock.Rate())
	case "h":
		m.clock.Step(time.Hour)
	case "H":
		m.clock.Step(-time.Hour)
	case "d":
		m.clock.Step(24 * time.Hour)
	case "D":
		m.clock.Step(-24 * time.Hour)
	case "r":
		m.clock.SetTime(time.Now())
		m.clock.SetRate(1)
		if m.clock.Paused() {
			m.clock.TogglePause()
		}
	}
	return m, nil
}

// scaleRate multiplies a rate while clamping its magnitude and
// preserving its sign.
func scaleRate(rate, factor float64) float64 {
	scaled := rate * factor
	mag := scaled
	if mag < 0 {
		mag = -mag
	}
	if mag < minRateMagnitude {
		mag = minRateMagnitude
	}
	if mag > maxRateMagnitude {
		mag = maxRateMagnitude
	}
	if scaled < 0 {
		return -mag
	}
	return mag
}

// View renders the time control view.
func (m TimeControlModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FD1F7"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	snap := m.snapshot

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Time Control") + "\n\n")

	simLine := snap.SimTime.UTC().Format("2006-01-02 15:04:05 UTC")
	b.WriteString("  " + dimStyle.Render("Simulated ") + accentStyle.Render(simLine) + "\n")

	wallLine := time.Now().UTC().Format("2006-01-02 15:04:05 UTC")
	b.WriteString("  " + dimStyle.Render("Wall      ") + valueStyle.Render(wallLine) + "\n")

	offset := snap.SimTime.Sub(time.Now()).Round(time.Second)
	b.WriteString("  " + dimStyle.Render("Offset    ") + valueStyle.Render(formatOffset(offset)) + "\n\n")

	if snap.Paused {
		b.WriteString("  " + dimStyle.Render("Rate      ") + accentStyle.Render("paused") + "\n")
	} else {
		b.WriteString("  " + dimStyle.Render("Rate      ") + accentStyle.Render("×"+formatRate(snap.Rate)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + dimStyle.Render("space  pause/resume") + "\n")
	b.WriteString("  " + dimStyle.Render("+ / -  double/halve rate") + "\n")
	b.WriteString("  " + dimStyle.Render("n      reverse direction") + "\n")
	b.WriteString("  " + dimStyle.Render("h / H  step +1h / -1h") + "\n")
	b.WriteString("  " + dimStyle.Render("d / D  step +1d / -1d") + "\n")
	b.WriteString("  " + dimStyle.Render("r      reset to real time") + "\n")

	return b.String()
}

// formatOffset renders a duration like "+3h12m" or "-2d4h".
func formatOffset(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	days := int(d / (24 * time.Hour))
	rem := d % (24 * time.Hour)
	if days > 0 {
		return fmt.Sprintf("%s%dd%s", sign, days, rem.Round(time.Minute))
	}
	return sign + d.String()
}

// Init returns nil cmd
func (m TimeControlModel) Init() tea.Cmd {
	return nil
}
