// Package catalog provides the star catalog snapshot and its loaders.
package catalog

import (
	"time"

	"github.com/EthanLiu015/SkyTrackr/internal/astro"
)

// Star is a static catalog entry, immutable after load.
type Star struct {
	Name        string  // catalog designation (e.g., "Alp CMa")
	DisplayName string  // common name shown in the UI (e.g., "Sirius")
	Equatorial  astro.Equatorial
	Vmag        float64 // apparent visual magnitude, lower = brighter
}

// Label returns the name to display: the common name when present,
// otherwise the catalog designation.
func (s Star) Label() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Name
}

// Snapshot is the read-only catalog handed to the core at session start.
// It is never re-fetched.
type Snapshot struct {
	Stars    []Star
	LoadedAt time.Time
	Source   string // "builtin", file path, or URL
}

// Builtin returns the embedded bright-star catalog, used when no external
// source is configured or the configured source fails.
// Coordinates are J2000; data from the Yale Bright Star Catalog and IAU
// star names.
func Builtin(now time.Time) Snapshot {
	stars := make([]Star, len(builtinStars))
	copy(stars, builtinStars)
	return Snapshot{Stars: stars, LoadedAt: now, Source: "builtin"}
}

// builtinStars lists bright stars visible from a range of latitudes,
// ordered roughly by magnitude.
var builtinStars = []Star{
	{"Alp CMa", "Sirius", astro.Equatorial{RAdeg: 101.287, DecDeg: -16.716}, -1.46},
	{"Alp Car", "Canopus", astro.Equatorial{RAdeg: 95.988, DecDeg: -52.696}, -0.74},
	{"Alp Boo", "Arcturus", astro.Equatorial{RAdeg: 213.915, DecDeg: 19.182}, -0.05},
	{"Alp Lyr", "Vega", astro.Equatorial{RAdeg: 279.235, DecDeg: 38.784}, 0.03},
	{"Alp Aur", "Capella", astro.Equatorial{RAdeg: 79.172, DecDeg: 45.998}, 0.08},
	{"Bet Ori", "Rigel", astro.Equatorial{RAdeg: 78.634, DecDeg: -8.202}, 0.13},
	{"Alp CMi", "Procyon", astro.Equatorial{RAdeg: 114.826, DecDeg: 5.225}, 0.34},
	{"Alp Eri", "Achernar", astro.Equatorial{RAdeg: 24.429, DecDeg: -57.237}, 0.46},
	{"Alp Ori", "Betelgeuse", astro.Equatorial{RAdeg: 88.793, DecDeg: 7.407}, 0.50},
	{"Bet Cen", "Hadar", astro.Equatorial{RAdeg: 210.956, DecDeg: -60.373}, 0.61},
	{"Alp Aql", "Altair", astro.Equatorial{RAdeg: 297.696, DecDeg: 8.868}, 0.76},
	{"Alp Cru", "Acrux", astro.Equatorial{RAdeg: 186.650, DecDeg: -63.099}, 0.76},
	{"Alp Tau", "Aldebaran", astro.Equatorial{RAdeg: 68.980, DecDeg: 16.509}, 0.85},
	{"Alp Sco", "Antares", astro.Equatorial{RAdeg: 247.352, DecDeg: -26.432}, 0.96},
	{"Alp Vir", "Spica", astro.Equatorial{RAdeg: 201.298, DecDeg: -11.161}, 0.97},
	{"Bet Gem", "Pollux", astro.Equatorial{RAdeg: 116.329, DecDeg: 28.026}, 1.14},
	{"Alp PsA", "Fomalhaut", astro.Equatorial{RAdeg: 344.413, DecDeg: -29.622}, 1.16},
	{"Alp Cyg", "Deneb", astro.Equatorial{RAdeg: 310.358, DecDeg: 45.280}, 1.25},
	{"Bet Cru", "Mimosa", astro.Equatorial{RAdeg: 191.930, DecDeg: -59.689}, 1.25},
	{"Alp Leo", "Regulus", astro.Equatorial{RAdeg: 152.093, DecDeg: 11.967}, 1.35},
	{"Eps CMa", "Adhara", astro.Equatorial{RAdeg: 104.656, DecDeg: -28.972}, 1.50},
	{"Alp Gem", "Castor", astro.Equatorial{RAdeg: 113.650, DecDeg: 31.889}, 1.58},
	{"Gam Cru", "Gacrux", astro.Equatorial{RAdeg: 187.791, DecDeg: -57.113}, 1.63},
	{"Lam Sco", "Shaula", astro.Equatorial{RAdeg: 263.402, DecDeg: -37.104}, 1.63},
	{"Gam Ori", "Bellatrix", astro.Equatorial{RAdeg: 81.283, DecDeg: 6.350}, 1.64},
	{"Bet Tau", "Elnath", astro.Equatorial{RAdeg: 81.573, DecDeg: 28.608}, 1.65},
	{"Eps Ori", "Alnilam", astro.Equatorial{RAdeg: 84.053, DecDeg: -1.202}, 1.69},
	{"Zet Ori", "Alnitak", astro.Equatorial{RAdeg: 85.190, DecDeg: -1.943}, 1.77},
	{"Eps UMa", "Alioth", astro.Equatorial{RAdeg: 193.507, DecDeg: 55.960}, 1.77},
	{"Alp UMa", "Dubhe", astro.Equatorial{RAdeg: 165.932, DecDeg: 61.751}, 1.79},
	{"Alp Per", "Mirfak", astro.Equatorial{RAdeg: 51.081, DecDeg: 49.861}, 1.79},
	{"Eta UMa", "Alkaid", astro.Equatorial{RAdeg: 206.885, DecDeg: 49.313}, 1.86},
	{"Gam Gem", "Alhena", astro.Equatorial{RAdeg: 99.428, DecDeg: 16.399}, 1.93},
	{"Alp UMi", "Polaris", astro.Equatorial{RAdeg: 37.954, DecDeg: 89.264}, 2.02},
	{"Alp Hya", "Alphard", astro.Equatorial{RAdeg: 141.897, DecDeg: -8.659}, 2.00},
	{"Alp Ari", "Hamal", astro.Equatorial{RAdeg: 31.793, DecDeg: 23.463}, 2.00},
	{"Bet Cet", "Diphda", astro.Equatorial{RAdeg: 10.897, DecDeg: -17.987}, 2.02},
	{"Sig Sgr", "Nunki", astro.Equatorial{RAdeg: 283.816, DecDeg: -26.297}, 2.02},
	{"Zet UMa", "Mizar", astro.Equatorial{RAdeg: 200.981, DecDeg: 54.925}, 2.04},
	{"Alp And", "Alpheratz", astro.Equatorial{RAdeg: 2.097, DecDeg: 29.091}, 2.06},
	{"Kap Ori", "Saiph", astro.Equatorial{RAdeg: 86.939, DecDeg: -9.670}, 2.09},
	{"Bet And", "Mirach", astro.Equatorial{RAdeg: 17.433, DecDeg: 35.621}, 2.05},
	{"Bet UMi", "Kochab", astro.Equatorial{RAdeg: 222.676, DecDeg: 74.156}, 2.08},
	{"Alp Oph", "Rasalhague", astro.Equatorial{RAdeg: 263.734, DecDeg: 12.560}, 2.08},
	{"Bet Per", "Algol", astro.Equatorial{RAdeg: 47.042, DecDeg: 40.957}, 2.12},
	{"Bet Leo", "Denebola", astro.Equatorial{RAdeg: 177.265, DecDeg: 14.572}, 2.13},
	{"Alp CrB", "Alphecca", astro.Equatorial{RAdeg: 233.672, DecDeg: 26.715}, 2.23},
	{"Del Ori", "Mintaka", astro.Equatorial{RAdeg: 83.002, DecDeg: -0.299}, 2.23},
	{"Gam Cyg", "Sadr", astro.Equatorial{RAdeg: 305.557, DecDeg: 40.257}, 2.23},
	{"Gam Dra", "Eltanin", astro.Equatorial{RAdeg: 269.152, DecDeg: 51.489}, 2.23},
	{"Alp Cas", "Schedar", astro.Equatorial{RAdeg: 10.127, DecDeg: 56.537}, 2.23},
	{"Bet Cas", "Caph", astro.Equatorial{RAdeg: 2.295, DecDeg: 59.150}, 2.27},
	{"Bet UMa", "Merak", astro.Equatorial{RAdeg: 165.460, DecDeg: 56.382}, 2.37},
	{"Eps Boo", "Izar", astro.Equatorial{RAdeg: 221.247, DecDeg: 27.074}, 2.37},
	{"Eps Peg", "Enif", astro.Equatorial{RAdeg: 326.046, DecDeg: 9.875}, 2.39},
	{"Gam UMa", "Phecda", astro.Equatorial{RAdeg: 178.458, DecDeg: 53.695}, 2.44},
	{"Bet Peg", "Scheat", astro.Equatorial{RAdeg: 345.944, DecDeg: 28.083}, 2.42},
	{"Alp Cep", "Alderamin", astro.Equatorial{RAdeg: 319.645, DecDeg: 62.586}, 2.51},
	{"Alp Peg", "Markab", astro.Equatorial{RAdeg: 346.190, DecDeg: 15.205}, 2.49},
	{"Bet Cyg", "Albireo", astro.Equatorial{RAdeg: 292.680, DecDeg: 27.960}, 3.18},
	{"Alp Dra", "Thuban", astro.Equatorial{RAdeg: 211.097, DecDeg: 64.376}, 3.65},
	{"Del UMa", "Megrez", astro.Equatorial{RAdeg: 183.857, DecDeg: 57.033}, 3.31},
	{"80 UMa", "Alcor", astro.Equatorial{RAdeg: 201.306, DecDeg: 54.988}, 3.99},
}
