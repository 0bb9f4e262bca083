// Package ephemeris propagates heliocentric Keplerian orbits for the major
// planets and reduces them to apparent geocentric equatorial coordinates.
package ephemeris

// OrbitalElements are J2000 mean Keplerian elements. Angles in degrees,
// semi-major axis in AU. The mean longitude is the value at the J2000
// epoch; its time evolution comes from the mean motion derived from a.
type OrbitalElements struct {
	SemiMajorAU   float64 // a
	Eccentricity  float64 // e
	InclinationDeg float64 // i, to the ecliptic
	AscendingNodeDeg float64 // Ω, longitude of ascending node
	PerihelionDeg float64 // ϖ, longitude of perihelion
	MeanLongitudeDeg float64 // L at J2000
}

// Planet is a static catalog entry: orbit plus display attributes. RA/Dec,
// distance and apparent magnitude are derived per timestamp, never stored.
type Planet struct {
	Name          string
	Elements      OrbitalElements
	Color         string  // hex display color
	RelativeSize  float64 // render size relative to Earth
	BaseMagnitude float64 // magnitude at 1 AU from both Sun and Earth
}

// planets holds the eight major planets in order from the Sun. Earth is
// present as the reference body for the geocentric reduction but is never
// returned by Positions.
//
// Elements are the standard J2000 mean values; display colors follow the
// common hex palette for each body.
var planets = []Planet{
	{
		Name: "Mercury",
		Elements: OrbitalElements{
			SemiMajorAU: 0.38709893, Eccentricity: 0.20563069,
			InclinationDeg: 7.00487, AscendingNodeDeg: 48.33167,
			PerihelionDeg: 77.45645, MeanLongitudeDeg: 252.25084,
		},
		Color: "#B5B5B5", RelativeSize: 0.38, BaseMagnitude: -0.42,
	},
	{
		Name: "Venus",
		Elements: OrbitalElements{
			SemiMajorAU: 0.72333199, Eccentricity: 0.00677323,
			InclinationDeg: 3.39471, AscendingNodeDeg: 76.68069,
			PerihelionDeg: 131.53298, MeanLongitudeDeg: 181.97973,
		},
		Color: "#E8CDA2", RelativeSize: 0.95, BaseMagnitude: -4.40,
	},
	{
		Name: "Earth",
		Elements: OrbitalElements{
			SemiMajorAU: 1.00000011, Eccentricity: 0.01671022,
			InclinationDeg: 0.00005, AscendingNodeDeg: -11.26064,
			PerihelionDeg: 102.94719, MeanLongitudeDeg: 100.46435,
		},
		Color: "#2E86AB", RelativeSize: 1.0, BaseMagnitude: 0,
	},
	{
		Name: "Mars",
		Elements: OrbitalElements{
			SemiMajorAU: 1.52366231, Eccentricity: 0.09341233,
			InclinationDeg: 1.85061, AscendingNodeDeg: 49.57854,
			PerihelionDeg: 336.04084, MeanLongitudeDeg: 355.45332,
		},
		Color: "#C1440E", RelativeSize: 0.53, BaseMagnitude: -1.52,
	},
	{
		Name: "Jupiter",
		Elements: OrbitalElements{
			SemiMajorAU: 5.20336301, Eccentricity: 0.04839266,
			InclinationDeg: 1.30530, AscendingNodeDeg: 100.55615,
			PerihelionDeg: 14.75385, MeanLongitudeDeg: 34.40438,
		},
		Color: "#C88B3A", RelativeSize: 11.2, BaseMagnitude: -9.40,
	},
	{
		Name: "Saturn",
		Elements: OrbitalElements{
			SemiMajorAU: 9.53707032, Eccentricity: 0.05415060,
			InclinationDeg: 2.48446, AscendingNodeDeg: 113.71504,
			PerihelionDeg: 92.43194, MeanLongitudeDeg: 49.94432,
		},
		Color: "#E4D191", RelativeSize: 9.45, BaseMagnitude: -8.88,
	},
	{
		Name: "Uranus",
		Elements: OrbitalElements{
			SemiMajorAU: 19.19126393, Eccentricity: 0.04716771,
			InclinationDeg: 0.76986, AscendingNodeDeg: 74.22988,
			PerihelionDeg: 170.96424, MeanLongitudeDeg: 313.23218,
		},
		Color: "#7DE8E8", RelativeSize: 4.0, BaseMagnitude: -7.19,
	},
	{
		Name: "Neptune",
		Elements: OrbitalElements{
			SemiMajorAU: 30.06896348, Eccentricity: 0.00858587,
			InclinationDeg: 1.76917, AscendingNodeDeg: 131.72169,
			PerihelionDeg: 44.97135, MeanLongitudeDeg: 304.88003,
		},
		Color: "#3F54BA", RelativeSize: 3.88, BaseMagnitude: -6.87,
	},
}

// Planets returns the static planet table, Earth included.
func Planets() []Planet {
	out := make([]Planet, len(planets))
	copy(out, planets)
	return out
}

// Names returns the names of all planets that appear in Positions output,
// in order from the Sun.
func Names() []string {
	var names []string
	for _, p := range planets {
		if p.Name == earthName {
			continue
		}
		names = append(names, p.Name)
	}
	return names
}
