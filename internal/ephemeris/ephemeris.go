package ephemeris

import (
	"math"
	"time"

	"github.com/EthanLiu015/SkyTrackr/internal/astro"
)

const earthName = "Earth"

// meanMotionCoeff converts a^-1.5 to degrees per day (Gaussian constant).
const meanMotionCoeff = 0.9856076686

// Kepler-equation convergence policy: iterate to tolerance rather than a
// fixed pass count, with a cap so pathological inputs still terminate.
const (
	keplerTolRad  = 1e-6
	keplerMaxIter = 30
)

// State is a planet's apparent position at one timestamp, merged with its
// static display attributes.
type State struct {
	Name         string
	Equatorial   astro.Equatorial
	DistanceAU   float64 // geocentric distance
	Color        string
	RelativeSize float64
	Magnitude    float64 // apparent magnitude
}

// Positions returns the apparent state of every major planet except Earth
// at the given simulated time, in order from the Sun. The function is pure.
func Positions(t time.Time) []State {
	earth := heliocentric(elementsFor(earthName), t)

	states := make([]State, 0, len(planets)-1)
	for _, p := range planets {
		if p.Name == earthName {
			continue
		}

		helio := heliocentric(p.Elements, t)
		geoEcl := helio.Sub(earth)
		geoEq := astro.EclipticToEquatorial(geoEcl)

		eq, distAU := astro.EquatorialFromVec(geoEq)

		rHelio := helio.Norm()
		mag := p.BaseMagnitude + 5*math.Log10(rHelio*distAU)

		states = append(states, State{
			Name:         p.Name,
			Equatorial:   eq,
			DistanceAU:   distAU,
			Color:        p.Color,
			RelativeSize: p.RelativeSize,
			Magnitude:    mag,
		})
	}
	return states
}

// heliocentric propagates one orbit to a heliocentric ecliptic position in AU.
func heliocentric(el OrbitalElements, t time.Time) astro.Vec3 {
	d := astro.JulianDate(t) - 2451545.0

	// Mean anomaly from mean longitude and mean motion.
	n := meanMotionCoeff / math.Pow(el.SemiMajorAU, 1.5)
	meanLon := el.MeanLongitudeDeg + n*d
	mDeg := math.Mod(meanLon-el.PerihelionDeg, 360)
	if mDeg < 0 {
		mDeg += 360
	}
	m := mDeg * math.Pi / 180

	e := solveKepler(m, el.Eccentricity)

	// Orbital-plane coordinates with the X axis toward perihelion.
	a := el.SemiMajorAU
	xOrb := a * (math.Cos(e) - el.Eccentricity)
	yOrb := a * math.Sqrt(1-el.Eccentricity*el.Eccentricity) * math.Sin(e)

	// Rotate by argument of perihelion, inclination, ascending node.
	w := (el.PerihelionDeg - el.AscendingNodeDeg) * math.Pi / 180
	i := el.InclinationDeg * math.Pi / 180
	o := el.AscendingNodeDeg * math.Pi / 180

	cosW, sinW := math.Cos(w), math.Sin(w)
	cosI, sinI := math.Cos(i), math.Sin(i)
	cosO, sinO := math.Cos(o), math.Sin(o)

	return astro.Vec3{
		X: xOrb*(cosW*cosO-sinW*sinO*cosI) - yOrb*(sinW*cosO+cosW*sinO*cosI),
		Y: xOrb*(cosW*sinO+sinW*cosO*cosI) + yOrb*(cosW*cosO*cosI-sinW*sinO),
		Z: xOrb*(sinW*sinI) + yOrb*(cosW*sinI),
	}
}

// solveKepler solves E = M + e·sin(E) by fixed-point iteration to within
// keplerTolRad radians. M is in radians.
func solveKepler(m, ecc float64) float64 {
	e := m
	for i := 0; i < keplerMaxIter; i++ {
		next := m + ecc*math.Sin(e)
		if math.Abs(next-e) < keplerTolRad {
			return next
		}
		e = next
	}
	return e
}

// elementsFor returns the elements for a named planet. The table is fixed,
// so a miss is a programming error.
func elementsFor(name string) OrbitalElements {
	for _, p := range planets {
		if p.Name == name {
			return p.Elements
		}
	}
	panic("ephemeris: unknown planet " + name)
}
