package astro

import (
	"math"
	"testing"
	"time"
)

func TestEquatorialToHorizontal_Deterministic(t *testing.T) {
	obs := Observer{LatDeg: 35, LonDeg: -117}
	testTime := time.Date(2024, 6, 15, 4, 30, 0, 0, time.UTC)

	for ra := 0.0; ra < 360; ra += 45 {
		for dec := -90.0; dec <= 90; dec += 30 {
			eq := Equatorial{RAdeg: ra, DecDeg: dec}
			a := EquatorialToHorizontal(eq, obs, testTime)
			b := EquatorialToHorizontal(eq, obs, testTime)
			if a != b {
				t.Errorf("non-deterministic result for RA=%v Dec=%v: %+v != %+v", ra, dec, a, b)
			}
		}
	}
}

func TestEquatorialToHorizontal_NorthPole(t *testing.T) {
	// At the North Pole the altitude of any object equals its declination,
	// independent of time and RA.
	obs := Observer{LatDeg: 90, LonDeg: 0}

	times := []time.Time{
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 3, 47, 0, 0, time.UTC),
		time.Date(2031, 12, 31, 23, 59, 59, 0, time.UTC),
	}

	for _, tt := range times {
		for ra := 0.0; ra < 360; ra += 60 {
			for dec := -90.0; dec <= 90; dec += 15 {
				h := EquatorialToHorizontal(Equatorial{RAdeg: ra, DecDeg: dec}, obs, tt)
				if math.Abs(h.AltDeg-dec) > 1e-9 {
					t.Errorf("at pole, alt(RA=%v Dec=%v) = %v, want %v", ra, dec, h.AltDeg, dec)
				}
			}
		}
	}
}

func TestEquatorialToHorizontal_Zenith(t *testing.T) {
	// A star with Dec = observer latitude and RA = current LST sits at the
	// zenith; azimuth is undefined there and must come back as exactly 0.
	obs := Observer{LatDeg: 0, LonDeg: 0}
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	lst := LocalSiderealTime(testTime, obs.LonDeg)

	h := EquatorialToHorizontal(Equatorial{RAdeg: lst, DecDeg: obs.LatDeg}, obs, testTime)

	if math.Abs(h.AltDeg-90) > 1e-6 {
		t.Errorf("zenith altitude = %v, want 90", h.AltDeg)
	}
	if h.AzDeg != 0 {
		t.Errorf("zenith azimuth = %v, want deterministic 0", h.AzDeg)
	}
}

func TestEquatorialToHorizontal_Polaris(t *testing.T) {
	// Polaris sits within a degree of the NCP: from any northern latitude
	// its altitude is roughly the latitude and its azimuth roughly north.
	polaris := Equatorial{RAdeg: 37.954, DecDeg: 89.264}
	obs := Observer{LatDeg: 37.7749, LonDeg: -122.4194}

	for hour := 0; hour < 24; hour += 3 {
		testTime := time.Date(2024, 6, 15, hour, 0, 0, 0, time.UTC)
		h := EquatorialToHorizontal(polaris, obs, testTime)

		if math.Abs(h.AltDeg-obs.LatDeg) > 1.5 {
			t.Errorf("hour %d: Polaris altitude = %v, want ~%v", hour, h.AltDeg, obs.LatDeg)
		}
		azOff := math.Abs(NormalizeSignedDeg(h.AzDeg))
		if azOff > 2 {
			t.Errorf("hour %d: Polaris azimuth %v° off north", hour, azOff)
		}
	}
}

func TestEquatorialToHorizontal_SouthernStarNeverUp(t *testing.T) {
	// Dec -60° from 35°N peaks at 90-35-60 = -5°, always below horizon.
	star := Equatorial{RAdeg: 0, DecDeg: -60}
	obs := Observer{LatDeg: 35, LonDeg: -117}

	for hour := 0; hour < 24; hour += 2 {
		testTime := time.Date(2024, 6, 15, hour, 0, 0, 0, time.UTC)
		h := EquatorialToHorizontal(star, obs, testTime)
		if h.Visible() {
			t.Errorf("star at Dec=-60 visible from 35N at hour %d: alt=%v", hour, h.AltDeg)
		}
	}
}

func TestEquatorialToHorizontal_AzimuthQuadrants(t *testing.T) {
	// An equatorial star east of the meridian bears east of south for a
	// northern observer; west of the meridian, west of south.
	obs := Observer{LatDeg: 35, LonDeg: 0}
	testTime := time.Date(2024, 6, 15, 22, 0, 0, 0, time.UTC)
	lst := LocalSiderealTime(testTime, obs.LonDeg)

	east := EquatorialToHorizontal(Equatorial{RAdeg: normalizeDeg(lst + 30), DecDeg: 0}, obs, testTime)
	if east.AzDeg <= 90 || east.AzDeg >= 180 {
		t.Errorf("eastern star azimuth = %v, want in (90,180)", east.AzDeg)
	}

	west := EquatorialToHorizontal(Equatorial{RAdeg: normalizeDeg(lst - 30), DecDeg: 0}, obs, testTime)
	if west.AzDeg <= 180 || west.AzDeg >= 270 {
		t.Errorf("western star azimuth = %v, want in (180,270)", west.AzDeg)
	}

	// On the meridian the star bears due south.
	south := EquatorialToHorizontal(Equatorial{RAdeg: lst, DecDeg: 0}, obs, testTime)
	if math.Abs(south.AzDeg-180) > 1e-6 {
		t.Errorf("transit azimuth = %v, want 180", south.AzDeg)
	}
}

func TestEquatorialToHorizontal_AzimuthRange(t *testing.T) {
	obs := Observer{LatDeg: 35, LonDeg: -117}
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	for ra := 0.0; ra < 360; ra += 30 {
		for dec := -80.0; dec <= 80; dec += 20 {
			h := EquatorialToHorizontal(Equatorial{RAdeg: ra, DecDeg: dec}, obs, testTime)
			if h.AzDeg < 0 || h.AzDeg >= 360 {
				t.Errorf("azimuth out of range for RA=%v Dec=%v: %v", ra, dec, h.AzDeg)
			}
			if h.AltDeg < -90 || h.AltDeg > 90 {
				t.Errorf("altitude out of range for RA=%v Dec=%v: %v", ra, dec, h.AltDeg)
			}
		}
	}
}

func TestHorizontal_Visible(t *testing.T) {
	tests := []struct {
		alt     float64
		visible bool
	}{
		{10, true},
		{0.001, true},
		{0, false}, // horizon itself counts as not visible
		{-0.001, false},
		{-45, false},
	}

	for _, tt := range tests {
		h := Horizontal{AltDeg: tt.alt}
		if h.Visible() != tt.visible {
			t.Errorf("Visible() at alt=%v = %v, want %v", tt.alt, h.Visible(), tt.visible)
		}
	}
}
