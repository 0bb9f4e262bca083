package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// jsonStar mirrors the star objects served by catalog HTTP endpoints.
// Coordinates and magnitude are pointers so entries with null or missing
// values can be skipped instead of defaulting to zero.
type jsonStar struct {
	Name        string   `json:"Name"`
	DisplayName string   `json:"display_name"`
	RA          *float64 `json:"RAJ2000"`
	Dec         *float64 `json:"DEJ2000"`
	Vmag        *float64 `json:"Vmag"`
}

// LoadJSON parses a JSON array of star objects from r. Entries missing a
// coordinate or magnitude are skipped; a catalog with zero usable entries
// is an error.
func LoadJSON(r io.Reader, now time.Time) (Snapshot, error) {
	var entries []jsonStar
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return Snapshot{}, fmt.Errorf("decode catalog json: %w", err)
	}

	var stars []Star
	for _, e := range entries {
		if e.RA == nil || e.Dec == nil || e.Vmag == nil {
			continue
		}
		name := strings.TrimSpace(e.Name)
		display := strings.TrimSpace(e.DisplayName)
		if name == "" && display == "" {
			continue
		}
		s := Star{
			Name:        name,
			DisplayName: display,
			Vmag:        *e.Vmag,
		}
		s.Equatorial.RAdeg = *e.RA
		s.Equatorial.DecDeg = *e.Dec
		stars = append(stars, s)
	}
	if len(stars) == 0 {
		return Snapshot{}, fmt.Errorf("catalog contains no usable entries")
	}
	return Snapshot{Stars: stars, LoadedAt: now}, nil
}
