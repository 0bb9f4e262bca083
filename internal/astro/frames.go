package astro

import "math"

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// obliquityRad is Earth's axial tilt at J2000, in radians.
const obliquityRad = 23.43928 * math.Pi / 180

// Vec3 is a 3D vector in whichever reference frame the caller is using.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// EclipticToEquatorial rotates an ecliptic-frame vector about the X axis by
// the obliquity into the equatorial frame. Units pass through unchanged.
func EclipticToEquatorial(ecl Vec3) Vec3 {
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)

	return Vec3{
		X: ecl.X,
		Y: ecl.Y*cosE - ecl.Z*sinE,
		Z: ecl.Y*sinE + ecl.Z*cosE,
	}
}

// EquatorialToEcliptic is the inverse rotation.
func EquatorialToEcliptic(eq Vec3) Vec3 {
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)

	return Vec3{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}

// EquatorialFromVec converts a Cartesian equatorial vector to RA/Dec plus
// distance in the vector's own units. RA is normalized to [0,360).
func EquatorialFromVec(v Vec3) (eq Equatorial, dist float64) {
	dist = v.Norm()
	if dist == 0 {
		return Equatorial{}, 0
	}
	eq.RAdeg = normalizeDeg(radToDeg(math.Atan2(v.Y, v.X)))
	eq.DecDeg = radToDeg(math.Asin(v.Z / dist))
	return eq, dist
}
