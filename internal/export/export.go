// Package export renders the computed sky to JSON and text for the
// headless output modes.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/EthanLiu015/SkyTrackr/internal/astro"
	"github.com/EthanLiu015/SkyTrackr/internal/catalog"
	"github.com/EthanLiu015/SkyTrackr/internal/ephemeris"
)

// DefaultSceneRadius is the celestial-sphere radius used for exported
// scene coordinates.
const DefaultSceneRadius = 100.0

// ObjectExport is one sky object with both angular and scene coordinates.
type ObjectExport struct {
	Name       string  `json:"name"`
	Kind       string  `json:"kind"`
	Magnitude  float64 `json:"magnitude"`
	RAdeg      float64 `json:"ra_deg"`
	DecDeg     float64 `json:"dec_deg"`
	AltDeg     float64 `json:"alt_deg"`
	AzDeg      float64 `json:"az_deg"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visible    bool    `json:"visible"`
	DistanceAU float64 `json:"distance_au,omitempty"`
}

// ObserverExport is a JSON-friendly observer position.
type ObserverExport struct {
	Name   string  `json:"name,omitempty"`
	LatDeg float64 `json:"lat_deg"`
	LonDeg float64 `json:"lon_deg"`
}

// SceneExport is the JSON-serializable snapshot of the whole sky.
type SceneExport struct {
	GeneratedAt time.Time      `json:"generated_at"`
	SimTime     time.Time      `json:"sim_time"`
	Observer    ObserverExport `json:"observer"`
	Radius      float64        `json:"radius"`
	Objects     []ObjectExport `json:"objects"`
}

// BuildScene computes scene coordinates for every catalog star and planet
// at simulated time t. Objects below the horizon are included with
// Visible set to false.
func BuildScene(obs astro.Observer, stars []catalog.Star, t time.Time, radius float64) *SceneExport {
	scene := &SceneExport{
		GeneratedAt: time.Now(),
		SimTime:     t,
		Observer:    ObserverExport{Name: obs.Name, LatDeg: obs.LatDeg, LonDeg: obs.LonDeg},
		Radius:      radius,
	}

	for _, s := range stars {
		scene.Objects = append(scene.Objects, exportObject(s.Label(), "star", s.Vmag, s.Equatorial, 0, obs, t, radius))
	}
	for _, p := range ephemeris.Positions(t) {
		scene.Objects = append(scene.Objects, exportObject(p.Name, "planet", p.Magnitude, p.Equatorial, p.DistanceAU, obs, t, radius))
	}

	return scene
}

func exportObject(name, kind string, mag float64, eq astro.Equatorial, distAU float64, obs astro.Observer, t time.Time, radius float64) ObjectExport {
	h := astro.EquatorialToHorizontal(eq, obs, t)
	v := astro.HorizontalToScene(h, radius)
	return ObjectExport{
		Name:       name,
		Kind:       kind,
		Magnitude:  mag,
		RAdeg:      eq.RAdeg,
		DecDeg:     eq.DecDeg,
		AltDeg:     h.AltDeg,
		AzDeg:      h.AzDeg,
		X:          v.X,
		Y:          v.Y,
		Z:          v.Z,
		Visible:    h.Visible(),
		DistanceAU: distAU,
	}
}

// WriteJSON writes the scene as indented JSON.
func (s *SceneExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// SummaryRow is one line of the visible-objects table.
type SummaryRow struct {
	Name      string
	Kind      string
	Magnitude float64
	AltDeg    float64
	AzDeg     float64
	Direction string
}

// GenerateSummaryRows lists the currently visible objects, brightest
// first.
func GenerateSummaryRows(scene *SceneExport) []SummaryRow {
	if scene == nil {
		return nil
	}

	var rows []SummaryRow
	for _, o := range scene.Objects {
		if !o.Visible {
			continue
		}
		rows = append(rows, SummaryRow{
			Name:      o.Name,
			Kind:      o.Kind,
			Magnitude: o.Magnitude,
			AltDeg:    o.AltDeg,
			AzDeg:     o.AzDeg,
			Direction: CompassPoint(o.AzDeg),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Magnitude < rows[j].Magnitude
	})
	return rows
}

// WriteSummaryTable writes the visible-objects table as text.
func WriteSummaryTable(w io.Writer, scene *SceneExport) {
	rows := GenerateSummaryRows(scene)

	fmt.Fprintf(w, "Sky over %s (%.4f, %.4f) @ %s\n",
		observerLabel(scene.Observer), scene.Observer.LatDeg, scene.Observer.LonDeg,
		scene.SimTime.UTC().Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 64))

	if len(rows) == 0 {
		fmt.Fprintln(w, "No objects above the horizon")
		return
	}

	fmt.Fprintf(w, "%-16s %-7s %6s %7s %8s %-4s\n",
		"Object", "Kind", "Mag", "Alt", "Az", "Dir")
	fmt.Fprintln(w, strings.Repeat("─", 64))

	for _, r := range rows {
		fmt.Fprintf(w, "%-16s %-7s %6.2f %6.1f° %7.1f° %-4s\n",
			truncateStr(r.Name, 16),
			r.Kind,
			r.Magnitude,
			r.AltDeg,
			r.AzDeg,
			r.Direction,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d objects visible\n", len(rows))
}

func observerLabel(o ObserverExport) string {
	if o.Name != "" {
		return o.Name
	}
	return "observer"
}

// compassPoints are the 8-wind names, clockwise from north.
var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// CompassPoint returns the 8-wind compass name for an azimuth in degrees.
func CompassPoint(azDeg float64) string {
	idx := int((azDeg+22.5)/45.0) % len(compassPoints)
	if idx < 0 {
		idx += len(compassPoints)
	}
	return compassPoints[idx]
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
