package astro

import (
	"testing"
	"time"
)

func TestNextRise_Circumpolar(t *testing.T) {
	// Polaris from San Francisco never sets.
	polaris := Equatorial{RAdeg: 37.954, DecDeg: 89.264}
	obs := Observer{LatDeg: 37.7749, LonDeg: -122.4194}

	status, _ := NextRise(polaris, obs, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	if status != StatusCircumpolar {
		t.Errorf("Polaris status = %v, want circumpolar", status)
	}
}

func TestNextRise_NeverUp(t *testing.T) {
	// The south celestial pole region never rises from the north.
	acrux := Equatorial{RAdeg: 186.650, DecDeg: -63.099}
	obs := Observer{LatDeg: 37.7749, LonDeg: -122.4194}

	status, _ := NextRise(acrux, obs, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	if status != StatusNeverUp {
		t.Errorf("Acrux status = %v, want never up", status)
	}
}

func TestNextRise_CrossesHorizonUpward(t *testing.T) {
	sirius := Equatorial{RAdeg: 101.287, DecDeg: -16.716}
	obs := Observer{LatDeg: 37.7749, LonDeg: -122.4194}
	now := time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC)

	status, rise := NextRise(sirius, obs, now)
	if status != StatusRises {
		t.Fatalf("Sirius status = %v, want rises", status)
	}

	if rise.Before(now) || rise.Sub(now) > 24*time.Hour {
		t.Fatalf("rise time %v not within one day of %v", rise, now)
	}

	// Just before the rise the star is below the horizon, just after it is
	// above. The window is generous to absorb the sidereal-rate rounding.
	before := EquatorialToHorizontal(sirius, obs, rise.Add(-5*time.Minute))
	after := EquatorialToHorizontal(sirius, obs, rise.Add(5*time.Minute))

	if before.AltDeg >= after.AltDeg {
		t.Errorf("altitude not increasing through rise: %v -> %v", before.AltDeg, after.AltDeg)
	}
	if before.AltDeg > 1.5 {
		t.Errorf("altitude before rise = %v, want near or below horizon", before.AltDeg)
	}
	if after.AltDeg < -1.5 {
		t.Errorf("altitude after rise = %v, want near or above horizon", after.AltDeg)
	}
}

func TestNextRise_EquatorialStarAtEquator(t *testing.T) {
	// At the equator a Dec=0 star is up exactly half the time and the
	// rise repeats every sidereal day.
	star := Equatorial{RAdeg: 50, DecDeg: 0}
	obs := Observer{LatDeg: 0, LonDeg: 0}
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	status, first := NextRise(star, obs, now)
	if status != StatusRises {
		t.Fatalf("status = %v, want rises", status)
	}

	_, second := NextRise(star, obs, first.Add(time.Minute))
	gap := second.Sub(first)

	siderealDay := 23*time.Hour + 56*time.Minute + 4*time.Second
	diff := gap - siderealDay
	if diff < -2*time.Minute || diff > 2*time.Minute {
		t.Errorf("rise-to-rise gap = %v, want ~%v", gap, siderealDay)
	}
}
