package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/EthanLiu015/SkyTrackr/internal/astro"
	"github.com/EthanLiu015/SkyTrackr/internal/ephemeris"
	"github.com/EthanLiu015/SkyTrackr/internal/state"
)

// InfoViewModel summarizes the session: observer, catalog provenance and
// what is above the horizon at the simulated time.
type InfoViewModel struct {
	width  int
	height int

	snapshot state.Snapshot
}

// NewInfoViewModel creates the scene info view.
func NewInfoViewModel() InfoViewModel {
	return InfoViewModel{}
}

// SetSize updates the viewport size.
func (m InfoViewModel) SetSize(width, height int) InfoViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a fresh session snapshot.
func (m InfoViewModel) UpdateData(snapshot state.Snapshot) InfoViewModel {
	m.snapshot = snapshot
	return m
}

// Update handles messages. The info view is read-only.
func (m InfoViewModel) Update(msg tea.Msg) (InfoViewModel, tea.Cmd) {
	return m, nil
}

// View renders the scene info view.
func (m InfoViewModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FD1F7"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	snap := m.snapshot
	obs := snap.Observer

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Scene Info") + "\n\n")

	b.WriteString("  " + dimStyle.Render("Observer  ") +
		valueStyle.Render(fmt.Sprintf("%s (%.4f, %.4f)", observerName(obs.Name), obs.LatDeg, obs.LonDeg)) + "\n")

	lst := astro.LocalSiderealTime(snap.SimTime, obs.LonDeg)
	b.WriteString("  " + dimStyle.Render("LST       ") +
		valueStyle.Render(fmt.Sprintf("%.3f°", lst)) + "\n\n")

	source := snap.Catalog.Source
	if source == "" {
		source = "unknown"
	}
	b.WriteString("  " + dimStyle.Render("Catalog   ") + valueStyle.Render(source) + "\n")
	b.WriteString("  " + dimStyle.Render("Stars     ") +
		valueStyle.Render(fmt.Sprintf("%d", len(snap.Catalog.Stars))) + "\n")
	if !snap.Catalog.LoadedAt.IsZero() {
		b.WriteString("  " + dimStyle.Render("Loaded    ") +
			valueStyle.Render(snap.Catalog.LoadedAt.UTC().Format("2006-01-02 15:04:05 UTC")) + "\n")
	}
	b.WriteString("\n")

	visStars, visPlanets, brightest := countVisible(snap)
	b.WriteString("  " + dimStyle.Render("Above horizon") + "\n")
	b.WriteString("  " + dimStyle.Render("  Stars   ") +
		accentStyle.Render(fmt.Sprintf("%d", visStars)) + "\n")
	b.WriteString("  " + dimStyle.Render("  Planets ") +
		accentStyle.Render(fmt.Sprintf("%d", visPlanets)) + "\n")
	if brightest != "" {
		b.WriteString("  " + dimStyle.Render("  Brightest ") + accentStyle.Render(brightest) + "\n")
	}
	b.WriteString("\n")

	if snap.Focus != nil {
		hz := astro.EquatorialToHorizontal(snap.Focus.Equatorial, obs, snap.SimTime)
		b.WriteString("  " + dimStyle.Render("Focus     ") +
			accentStyle.Render(fmt.Sprintf("%s (%s)", snap.Focus.Name, snap.Focus.Kind)) + "\n")
		b.WriteString("  " + dimStyle.Render("          ") +
			valueStyle.Render(fmt.Sprintf("Az %.1f°  Alt %.1f°", hz.AzDeg, hz.AltDeg)) + "\n")
	} else {
		b.WriteString("  " + dimStyle.Render("Focus     none (press / to find an object)") + "\n")
	}

	if snap.Searches > 0 {
		b.WriteString("\n  " + dimStyle.Render(fmt.Sprintf("Searches this session: %d", snap.Searches)) + "\n")
	}

	return b.String()
}

// countVisible tallies catalog stars and planets above the horizon at the
// simulated time and names the brightest visible object.
func countVisible(snap state.Snapshot) (stars, planets int, brightest string) {
	obs := snap.Observer
	bestMag := 99.0

	for _, s := range snap.Catalog.Stars {
		hz := astro.EquatorialToHorizontal(s.Equatorial, obs, snap.SimTime)
		if !hz.Visible() {
			continue
		}
		stars++
		if s.Vmag < bestMag {
			bestMag = s.Vmag
			brightest = s.Label()
		}
	}
	for _, p := range ephemeris.Positions(snap.SimTime) {
		hz := astro.EquatorialToHorizontal(p.Equatorial, obs, snap.SimTime)
		if !hz.Visible() {
			continue
		}
		planets++
		if p.Magnitude < bestMag {
			bestMag = p.Magnitude
			brightest = p.Name
		}
	}
	if brightest != "" {
		brightest = fmt.Sprintf("%s (mag %.1f)", brightest, bestMag)
	}
	return stars, planets, brightest
}

// Init returns nil cmd
func (m InfoViewModel) Init() tea.Cmd {
	return nil
}
