package astro

import (
	"math"
	"time"
)

// Equatorial is a catalog-frame position (J2000; precession is ignored).
type Equatorial struct {
	RAdeg  float64 // Right Ascension in degrees [0,360)
	DecDeg float64 // Declination in degrees [-90,90]
}

// Horizontal is an observer-relative position.
type Horizontal struct {
	AltDeg float64 // Altitude in degrees (0=horizon, 90=zenith)
	AzDeg  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
}

// Visible reports whether the position is above the horizon. Exactly 0 is
// treated as not visible.
func (h Horizontal) Visible() bool {
	return h.AltDeg > 0
}

// Observer is a ground-based observer location.
type Observer struct {
	LatDeg float64 // latitude in degrees, north positive
	LonDeg float64 // longitude in degrees, east positive
	Name   string
}

// zenithGuard is the cos(alt) threshold below which azimuth is undefined
// and forced to 0 instead of whatever rounding noise atan2 would produce.
const zenithGuard = 1e-9

// EquatorialToHorizontal converts RA/Dec to Alt/Az for the given observer
// and simulated time.
//
// Azimuth is measured from North through East, via atan2 of the east and
// north components of the direction vector. The function is pure: identical
// inputs always produce identical outputs.
func EquatorialToHorizontal(eq Equatorial, obs Observer, t time.Time) Horizontal {
	lat := degToRad(obs.LatDeg)
	dec := degToRad(eq.DecDeg)

	lst := LocalSiderealTime(t, obs.LonDeg)
	ha := degToRad(NormalizeSignedDeg(lst - eq.RAdeg))

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	// Clamp against rounding before asin.
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}
	alt := math.Asin(sinAlt)

	if math.Cos(alt) < zenithGuard {
		return Horizontal{AltDeg: radToDeg(alt), AzDeg: 0}
	}

	east := -math.Cos(dec) * math.Sin(ha)
	north := math.Sin(dec)*math.Cos(lat) - math.Cos(dec)*math.Sin(lat)*math.Cos(ha)
	az := math.Atan2(east, north)

	return Horizontal{
		AltDeg: radToDeg(alt),
		AzDeg:  normalizeDeg(radToDeg(az)),
	}
}
