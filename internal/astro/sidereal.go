// Package astro provides the celestial coordinate engine: sidereal time,
// equatorial-to-horizontal transformation, and the scene projection.
//
// Every component that needs a time-to-angle conversion must route through
// this package; there is exactly one Julian Date and one GMST formula in the
// program.
package astro

import (
	"math"
	"time"
)

// JulianDate returns the Julian Date for t.
func JulianDate(t time.Time) float64 {
	return float64(t.UnixMilli())/86400000.0 + 2440587.5
}

// GreenwichMeanSiderealTime returns GMST in degrees, normalized to [0,360).
// IAU 1982 polynomial in Julian centuries since J2000.
func GreenwichMeanSiderealTime(t time.Time) float64 {
	jd := JulianDate(t)
	d := jd - 2451545.0
	T := d / 36525.0

	gmst := 280.46061837 +
		360.98564736629*d +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeDeg(gmst)
}

// LocalSiderealTime returns LST in degrees for an observer at the given
// east-positive longitude, normalized to [0,360).
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeDeg(GreenwichMeanSiderealTime(t) + lonDeg)
}

// normalizeDeg reduces an angle to [0,360).
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// NormalizeSignedDeg reduces an angle to (-180,180]. Used for hour angles
// and camera offsets so wrap-around is handled in one place.
func NormalizeSignedDeg(deg float64) float64 {
	deg = normalizeDeg(deg)
	if deg > 180 {
		deg -= 360
	}
	return deg
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
