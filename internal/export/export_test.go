package export

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/EthanLiu015/SkyTrackr/internal/astro"
	"github.com/EthanLiu015/SkyTrackr/internal/catalog"
)

var testObserver = astro.Observer{LatDeg: 45, LonDeg: -100, Name: "test"}

func testScene(t *testing.T) (*SceneExport, time.Time) {
	t.Helper()
	now := time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC)
	lst := astro.LocalSiderealTime(now, testObserver.LonDeg)
	stars := []catalog.Star{
		{Name: "Zen 1", DisplayName: "Zenith Star", Equatorial: astro.Equatorial{RAdeg: lst, DecDeg: testObserver.LatDeg}, Vmag: 1},
		{Name: "Sou 1", DisplayName: "Southern Star", Equatorial: astro.Equatorial{RAdeg: 10, DecDeg: -80}, Vmag: 2},
	}
	return BuildScene(testObserver, stars, now, DefaultSceneRadius), now
}

func TestBuildScene(t *testing.T) {
	scene, now := testScene(t)

	// 2 stars + 7 planets.
	if got, want := len(scene.Objects), 9; got != want {
		t.Fatalf("scene has %d objects, want %d", got, want)
	}
	if !scene.SimTime.Equal(now) {
		t.Errorf("SimTime = %v, want %v", scene.SimTime, now)
	}

	byName := make(map[string]ObjectExport)
	for _, o := range scene.Objects {
		byName[o.Name] = o
		r := math.Sqrt(o.X*o.X + o.Y*o.Y + o.Z*o.Z)
		if math.Abs(r-DefaultSceneRadius) > 1e-6 {
			t.Errorf("object %q at radius %v, want %v", o.Name, r, DefaultSceneRadius)
		}
	}

	zen := byName["Zenith Star"]
	if !zen.Visible || zen.AltDeg < 89 {
		t.Errorf("zenith star = %+v, want visible near alt 90", zen)
	}
	if zen.Y < DefaultSceneRadius-0.1 {
		t.Errorf("zenith star Y = %v, want near +radius", zen.Y)
	}

	sou := byName["Southern Star"]
	if sou.Visible || sou.AltDeg >= 0 {
		t.Errorf("southern star = %+v, want hidden below horizon", sou)
	}

	if _, ok := byName["Earth"]; ok {
		t.Error("scene must not contain Earth")
	}
	mars := byName["Mars"]
	if mars.Kind != "planet" || mars.DistanceAU <= 0 {
		t.Errorf("Mars = %+v", mars)
	}
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	scene, _ := testScene(t)

	var buf bytes.Buffer
	if err := scene.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	var decoded SceneExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(decoded.Objects) != len(scene.Objects) {
		t.Errorf("decoded %d objects, want %d", len(decoded.Objects), len(scene.Objects))
	}
	if decoded.Observer.LatDeg != testObserver.LatDeg {
		t.Errorf("decoded observer = %+v", decoded.Observer)
	}
}

func TestGenerateSummaryRows_VisibleSortedByMagnitude(t *testing.T) {
	scene, _ := testScene(t)
	rows := GenerateSummaryRows(scene)

	if len(rows) == 0 {
		t.Fatal("no summary rows")
	}
	for _, r := range rows {
		if r.Name == "Southern Star" {
			t.Error("summary includes object below the horizon")
		}
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Magnitude < rows[i-1].Magnitude {
			t.Errorf("rows out of magnitude order at %d: %v after %v", i, rows[i].Magnitude, rows[i-1].Magnitude)
		}
	}

	if rows := GenerateSummaryRows(nil); rows != nil {
		t.Errorf("nil scene rows = %v, want nil", rows)
	}
}

func TestWriteSummaryTable(t *testing.T) {
	scene, _ := testScene(t)

	var buf bytes.Buffer
	WriteSummaryTable(&buf, scene)
	out := buf.String()

	if !strings.Contains(out, "Zenith Star") {
		t.Errorf("table missing visible star:\n%s", out)
	}
	if strings.Contains(out, "Southern Star") {
		t.Errorf("table includes hidden star:\n%s", out)
	}
	if !strings.Contains(out, "objects visible") {
		t.Errorf("table missing footer:\n%s", out)
	}
}

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		az   float64
		want string
	}{
		{0, "N"},
		{22.4, "N"},
		{22.6, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{359, "N"},
	}
	for _, tt := range tests {
		if got := CompassPoint(tt.az); got != tt.want {
			t.Errorf("CompassPoint(%v) = %q, want %q", tt.az, got, tt.want)
		}
	}
}
