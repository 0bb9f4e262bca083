package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Column names expected in a catalog CSV header. Extra columns are ignored.
const (
	colName        = "Name"
	colRA          = "RAJ2000"
	colDec         = "DEJ2000"
	colVmag        = "Vmag"
	colDisplayName = "display_name"
)

// LoadCSVFile reads a star catalog from a CSV file on disk.
func LoadCSVFile(path string, now time.Time) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	snap, err := LoadCSV(f, now)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Source = path
	return snap, nil
}

// LoadCSV parses catalog rows from r. Rows with a missing or unparseable
// RA, Dec, or magnitude are skipped rather than failing the whole load;
// a catalog with zero usable rows is an error.
func LoadCSV(r io.Reader, now time.Time) (Snapshot, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return Snapshot{}, fmt.Errorf("read catalog header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colName, colRA, colDec, colVmag} {
		if _, ok := idx[required]; !ok {
			return Snapshot{}, fmt.Errorf("catalog header missing column %q", required)
		}
	}

	var stars []Star
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row, keep going with the rest of the file.
			continue
		}
		star, ok := parseRow(row, idx)
		if !ok {
			continue
		}
		stars = append(stars, star)
	}
	if len(stars) == 0 {
		return Snapshot{}, fmt.Errorf("catalog contains no usable rows")
	}
	return Snapshot{Stars: stars, LoadedAt: now}, nil
}

func parseRow(row []string, idx map[string]int) (Star, bool) {
	field := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	ra, err := strconv.ParseFloat(field(colRA), 64)
	if err != nil {
		return Star{}, false
	}
	dec, err := strconv.ParseFloat(field(colDec), 64)
	if err != nil {
		return Star{}, false
	}
	vmag, err := strconv.ParseFloat(field(colVmag), 64)
	if err != nil {
		return Star{}, false
	}

	s := Star{
		Name:        field(colName),
		DisplayName: field(colDisplayName),
		Vmag:        vmag,
	}
	s.Equatorial.RAdeg = ra
	s.Equatorial.DecDeg = dec
	if s.Name == "" && s.DisplayName == "" {
		return Star{}, false
	}
	return s, true
}
