// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/EthanLiu015/SkyTrackr/internal/state"
	"github.com/EthanLiu015/SkyTrackr/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewSky ViewMode = iota
	ViewTime
	ViewInfo
)

const viewCount = 3

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time

	// SearchResultMsg signals a completed object search.
	SearchResultMsg struct {
		Query string
		Err   error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	animTick int

	// Search overlay
	searching   bool
	searchInput string

	// Sub-models
	skyView  SkyViewModel
	timeView TimeControlModel
	infoView InfoViewModel

	// Session snapshot (refreshed on TickMsg)
	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:    stateMgr,
		viewMode: ViewSky,
		skyView:  NewSkyViewModel(),
		timeView: NewTimeControlModel(stateMgr.Clock()),
		infoView: NewInfoViewModel(),
		snapshot: stateMgr.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), animTickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "s":
			m.viewMode = ViewSky
		case "2", "t":
			m.viewMode = ViewTime
		case "3", "i":
			m.viewMode = ViewInfo

		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount

		case "/":
			m.searching = true
			m.searchInput = ""

		case "esc":
			m.state.ClearFocus()
			m.snapshot = m.state.Snapshot()
			m.skyView = m.skyView.UpdateData(m.snapshot)

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes 3 lines, footer 2.
		contentHeight := msg.Height - 5
		m.skyView = m.skyView.SetSize(msg.Width, contentHeight)
		m.timeView = m.timeView.SetSize(msg.Width, contentHeight)
		m.infoView = m.infoView.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.snapshot = m.state.Snapshot()
		m.skyView = m.skyView.UpdateData(m.snapshot)
		m.timeView = m.timeView.UpdateData(m.snapshot)
		m.infoView = m.infoView.UpdateData(m.snapshot)

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++
		cmds = append(cmds, m.updateActiveView(msg))

	case SearchResultMsg:
		// Snapshot already carries the focus target or the failure banner.
		m.snapshot = m.state.Snapshot()
		m.skyView = m.skyView.UpdateData(m.snapshot)
		if msg.Err == nil && m.snapshot.Focus != nil {
			var cmd tea.Cmd
			m.skyView, cmd = m.skyView.FocusOn(*m.snapshot.Focus)
			cmds = append(cmds, cmd)
			m.viewMode = ViewSky
		}

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// updateSearch handles key input while the search overlay is open.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput = ""
		return m, nil

	case "enter":
		query := strings.TrimSpace(m.searchInput)
		m.searching = false
		m.searchInput = ""
		if query == "" {
			return m, nil
		}
		return m, m.runSearch(query)

	case "backspace":
		if len(m.searchInput) > 0 {
			runes := []rune(m.searchInput)
			m.searchInput = string(runes[:len(runes)-1])
		}
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			m.searchInput += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.searchInput += " "
		}
		return m, nil
	}
}

func (m Model) runSearch(query string) tea.Cmd {
	mgr := m.state
	return func() tea.Msg {
		_, err := mgr.Search(query)
		return SearchResultMsg{Query: query, Err: err}
	}
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewSky:
		m.skyView, cmd = m.skyView.Update(msg)
	case ViewTime:
		m.timeView, cmd = m.timeView.Update(msg)
	case ViewInfo:
		m.infoView, cmd = m.infoView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewSky:
		content = m.skyView.View()
	case ViewTime:
		content = m.timeView.View()
	case ViewInfo:
		content = m.infoView.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FD1F7"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := titleStyle.Render("SkyTrackr")
	tagline := muted.Render(fmt.Sprintf("Night Sky Viewer · v%s", version.Version))
	obs := muted.Render(fmt.Sprintf("%s (%.4f, %.4f)",
		observerName(m.snapshot.Observer.Name), m.snapshot.Observer.LatDeg, m.snapshot.Observer.LonDeg))

	return fmt.Sprintf("  %s  %s  %s\n%s", title, tagline, obs, m.renderTabs())
}

func observerName(name string) string {
	if name == "" {
		return "observer"
	}
	return name
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Sky", "[2] Time", "[3] Info"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7FD1F7")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	if m.searching {
		return "  " + accentStyle.Render("Find: "+m.searchInput+"▌") +
			"  " + dimStyle.Render("enter: search | esc: cancel")
	}

	clock := renderClockStatus(m.snapshot)

	var help string
	switch m.viewMode {
	case ViewTime:
		help = dimStyle.Render("space: pause | +/-: rate | n: reverse | h/H d/D: step | r: reset")
	case ViewInfo:
		help = dimStyle.Render("/: find | tab: switch view | q: quit")
	default:
		help = dimStyle.Render("←→↑↓: pan | /: find | esc: clear focus | tab: switch view")
	}

	footer := "  " + accentStyle.Render(clock) + "  " + dimStyle.Render("|") + "  " + help

	if m.snapshot.Banner.Message != "" {
		style := warnStyle
		if m.snapshot.Banner.Level == state.BannerError {
			style = errorStyle
		}
		footer += "\n  " + style.Render(m.snapshot.Banner.Message)
	}

	return footer
}

// renderClockStatus formats the simulated clock for the footer.
func renderClockStatus(snap state.Snapshot) string {
	t := snap.SimTime.UTC().Format("2006-01-02 15:04:05 UTC")
	if snap.Paused {
		return t + " ⏸"
	}
	return fmt.Sprintf("%s ×%s", t, formatRate(snap.Rate))
}

// formatRate renders a rate multiplier without trailing zeros.
func formatRate(rate float64) string {
	if rate == float64(int64(rate)) {
		return fmt.Sprintf("%d", int64(rate))
	}
	return fmt.Sprintf("%.2f", rate)
}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}
