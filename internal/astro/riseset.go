package astro

import (
	"math"
	"time"
)

// RiseStatus classifies an object's visibility cycle for an observer.
type RiseStatus int

const (
	// StatusRises means the object crosses the horizon; NextRise applies.
	StatusRises RiseStatus = iota

	// StatusCircumpolar means the object never sets for this observer.
	StatusCircumpolar

	// StatusNeverUp means the object never rises for this observer.
	StatusNeverUp
)

// String returns the status name.
func (s RiseStatus) String() string {
	switch s {
	case StatusRises:
		return "rises"
	case StatusCircumpolar:
		return "circumpolar"
	case StatusNeverUp:
		return "never up"
	default:
		return "unknown"
	}
}

// siderealRate is the sidereal rotation rate in degrees per UT day.
const siderealRate = 360.98564736629

// NextRise computes when an object at fixed RA/Dec next crosses the horizon
// going up, in simulated time relative to t.
//
// The hour-angle solution is exact for fixed equatorial coordinates: the
// object is on the horizon when cos(H0) = -tan(lat)·tan(dec). Objects with
// no horizon crossing return StatusCircumpolar or StatusNeverUp and a zero
// time.
func NextRise(eq Equatorial, obs Observer, t time.Time) (RiseStatus, time.Time) {
	lat := degToRad(obs.LatDeg)
	dec := degToRad(eq.DecDeg)

	cosH0 := -math.Tan(lat) * math.Tan(dec)
	if cosH0 < -1 {
		return StatusCircumpolar, time.Time{}
	}
	if cosH0 > 1 {
		return StatusNeverUp, time.Time{}
	}

	h0 := radToDeg(math.Acos(cosH0))

	// Rising happens at hour angle -H0, i.e. when LST = RA - H0.
	lstRise := normalizeDeg(eq.RAdeg - h0)
	lstNow := LocalSiderealTime(t, obs.LonDeg)

	deltaDeg := normalizeDeg(lstRise - lstNow)
	wait := time.Duration(deltaDeg / siderealRate * 24 * float64(time.Hour))

	return StatusRises, t.Add(wait)
}
