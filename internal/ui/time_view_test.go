package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EthanLiu015/SkyTrackr/internal/clock"
	"github.com/EthanLiu015/SkyTrackr/internal/state"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTimeControl_PauseAndRate(t *testing.T) {
	clk := clock.New()
	m := NewTimeControlModel(clk)

	m, _ = m.Update(keyMsg(" "))
	if !clk.Paused() {
		t.Error("space did not pause the clock")
	}
	m, _ = m.Update(keyMsg(" "))
	if clk.Paused() {
		t.Error("space did not resume the clock")
	}

	m, _ = m.Update(keyMsg("+"))
	if got := clk.Rate(); got != 2 {
		t.Errorf("rate after + = %v, want 2", got)
	}
	m, _ = m.Update(keyMsg("-"))
	m, _ = m.Update(keyMsg("-"))
	if got := clk.Rate(); got != 0.5 {
		t.Errorf("rate after two - = %v, want 0.5", got)
	}

	m, _ = m.Update(keyMsg("n"))
	if got := clk.Rate(); got != -0.5 {
		t.Errorf("rate after n = %v, want -0.5", got)
	}
	_ = m
}

func TestTimeControl_StepAndReset(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewAt(start)
	wall := time.Unix(9000, 0)
	clk.SetNowFunc(func() time.Time { return wall })
	clk.TogglePause()

	m := NewTimeControlModel(clk)

	m, _ = m.Update(keyMsg("h"))
	if got := clk.Sample(); !got.Equal(start.Add(time.Hour)) {
		t.Errorf("after h: %v, want %v", got, start.Add(time.Hour))
	}
	m, _ = m.Update(keyMsg("D"))
	want := start.Add(time.Hour - 24*time.Hour)
	if got := clk.Sample(); !got.Equal(want) {
		t.Errorf("after D: %v, want %v", got, want)
	}

	m, _ = m.Update(keyMsg("r"))
	if clk.Paused() {
		t.Error("reset left the clock paused")
	}
	if got := clk.Rate(); got != 1 {
		t.Errorf("rate after reset = %v, want 1", got)
	}
	_ = m
}

func TestScaleRate_Clamps(t *testing.T) {
	if got := scaleRate(minRateMagnitude, 0.5); got != minRateMagnitude {
		t.Errorf("scaleRate below min = %v", got)
	}
	if got := scaleRate(maxRateMagnitude, 2); got != maxRateMagnitude {
		t.Errorf("scaleRate above max = %v", got)
	}
	if got := scaleRate(-4, 2); got != -8 {
		t.Errorf("scaleRate(-4, 2) = %v, want -8", got)
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{3 * time.Hour, "+3h0m0s"},
		{-2 * time.Minute, "-2m0s"},
		{26 * time.Hour, "+1d2h0m0s"},
	}
	for _, tt := range tests {
		if got := formatOffset(tt.d); got != tt.want {
			t.Errorf("formatOffset(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := formatRate(60); got != "60" {
		t.Errorf("formatRate(60) = %q", got)
	}
	if got := formatRate(0.5); got != "0.50" {
		t.Errorf("formatRate(0.5) = %q", got)
	}
	if got := formatRate(-2); got != "-2" {
		t.Errorf("formatRate(-2) = %q", got)
	}
}

func TestTimeControl_ViewRenders(t *testing.T) {
	clk := clock.New()
	m := NewTimeControlModel(clk)
	m = m.SetSize(80, 24)
	m = m.UpdateData(state.Snapshot{SimTime: time.Now(), Rate: 1})

	out := m.View()
	if !strings.Contains(out, "Time Control") {
		t.Errorf("view missing title:\n%s", out)
	}
	if !strings.Contains(out, "pause/resume") {
		t.Errorf("view missing key help:\n%s", out)
	}
}
