package astro

import "math"

// Scene frame convention, fixed for the whole program:
//
//	Up    = +Y
//	East  = +X
//	North = -Z
//
// so azimuth 0° (North) projects to negative Z and azimuth 90° (East) to
// positive X. Call sites must not reimplement this mapping.

// HorizontalToScene converts an Alt/Az position at the given radius into a
// Cartesian point in the render scene frame. The result satisfies
// x²+y²+z² = radius² for any valid input.
func HorizontalToScene(h Horizontal, radius float64) Vec3 {
	alt := degToRad(h.AltDeg)
	az := degToRad(h.AzDeg)

	cosAlt := math.Cos(alt)
	return Vec3{
		X: radius * cosAlt * math.Sin(az),
		Y: radius * math.Sin(alt),
		Z: -radius * cosAlt * math.Cos(az),
	}
}
