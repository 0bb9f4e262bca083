// Package locate resolves object names to pointing directions.
package locate

import (
	"fmt"
	"strings"
	"time"

	"github.com/EthanLiu015/SkyTrackr/internal/astro"
	"github.com/EthanLiu015/SkyTrackr/internal/catalog"
	"github.com/EthanLiu015/SkyTrackr/internal/ephemeris"
)

// Kind classifies a located object.
type Kind int

const (
	KindStar Kind = iota
	KindPlanet
)

func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlanet:
		return "planet"
	default:
		return "unknown"
	}
}

// Aim is a successful lookup: where to point right now.
type Aim struct {
	Name       string
	Kind       Kind
	Horizontal astro.Horizontal
	Equatorial astro.Equatorial
}

// NotFoundError reports a name matching no star or planet.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no star or planet named %q", e.Query)
}

// BelowHorizonError reports an object that exists but is not currently
// above the horizon for this observer.
type BelowHorizonError struct {
	Name       string
	Kind       Kind
	Horizontal astro.Horizontal
	NextRise   time.Time
	RiseStatus astro.RiseStatus
}

func (e *BelowHorizonError) Error() string {
	switch e.RiseStatus {
	case astro.StatusRises:
		return fmt.Sprintf("%s is below the horizon (alt %.1f°), rises around %s",
			e.Name, e.Horizontal.AltDeg, e.NextRise.UTC().Format("15:04 MST"))
	case astro.StatusNeverUp:
		return fmt.Sprintf("%s never rises at this latitude", e.Name)
	default:
		return fmt.Sprintf("%s is below the horizon (alt %.1f°)", e.Name, e.Horizontal.AltDeg)
	}
}

// Locate finds the named object and returns where to point. Stars are
// searched before planets, and names match case-insensitively against
// both catalog designations and display names. Objects at or below the
// horizon yield a BelowHorizonError carrying the next rise time.
func Locate(query string, stars []catalog.Star, obs astro.Observer, t time.Time) (Aim, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Aim{}, &NotFoundError{Query: query}
	}

	if eq, name, ok := findStar(query, stars); ok {
		return aimAt(name, KindStar, eq, obs, t)
	}
	if eq, name, ok := findPlanet(query, t); ok {
		return aimAt(name, KindPlanet, eq, obs, t)
	}
	return Aim{}, &NotFoundError{Query: query}
}

func findStar(query string, stars []catalog.Star) (astro.Equatorial, string, bool) {
	for _, s := range stars {
		if strings.EqualFold(query, s.DisplayName) || strings.EqualFold(query, s.Name) {
			return s.Equatorial, s.Label(), true
		}
	}
	return astro.Equatorial{}, "", false
}

func findPlanet(query string, t time.Time) (astro.Equatorial, string, bool) {
	for _, s := range ephemeris.Positions(t) {
		if strings.EqualFold(query, s.Name) {
			return s.Equatorial, s.Name, true
		}
	}
	return astro.Equatorial{}, "", false
}

func aimAt(name string, kind Kind, eq astro.Equatorial, obs astro.Observer, t time.Time) (Aim, error) {
	h := astro.EquatorialToHorizontal(eq, obs, t)
	if !h.Visible() {
		status, rise := astro.NextRise(eq, obs, t)
		return Aim{}, &BelowHorizonError{
			Name:       name,
			Kind:       kind,
			Horizontal: h,
			NextRise:   rise,
			RiseStatus: status,
		}
	}
	return Aim{Name: name, Kind: kind, Horizontal: h, Equatorial: eq}, nil
}
