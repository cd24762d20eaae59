// Package locations loads and builds the ZIP code coordinate tables the
// evaluator reads from.
package locations

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"route-evaluator/entities"
	"route-evaluator/geo"
)

//go:embed default.json
var defaultTable []byte

// zipRecord is one row of a per-prefix ZIP database file.
type zipRecord struct {
	Zipcode string   `json:"zipcode"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

type coordRecord struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// Load parses a location table from r. Two shapes are accepted: a list of
// {"zipcode", "lat", "lon"} records, or an object keyed by ZIP code whose
// values carry "lat" and "lon". Later duplicates replace earlier ones.
func Load(r io.Reader) (entities.LocationTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read locations: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("locations: empty input")
	}

	table := entities.LocationTable{}
	switch data[0] {
	case '[':
		var rows []zipRecord
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("decode locations: %w", err)
		}
		for i, row := range rows {
			if err := add(table, row.Zipcode, row.Lat, row.Lon); err != nil {
				return nil, fmt.Errorf("locations row %d: %w", i, err)
			}
		}
	case '{':
		var rows map[string]coordRecord
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("decode locations: %w", err)
		}
		for id, row := range rows {
			if err := add(table, id, row.Lat, row.Lon); err != nil {
				return nil, fmt.Errorf("locations entry %q: %w", id, err)
			}
		}
	default:
		return nil, fmt.Errorf("locations: unexpected leading %q", data[0])
	}
	return table, nil
}

func add(table entities.LocationTable, id string, lat, lon *float64) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("missing identifier")
	}
	if lat == nil || lon == nil {
		return errors.New("missing lat/lon")
	}
	c := entities.Coordinate{Lat: *lat, Lon: *lon}
	if !geo.IsValid(c) {
		return fmt.Errorf("coordinate out of range: %v,%v", c.Lat, c.Lon)
	}
	table[id] = c
	return nil
}

// LoadFile reads a location table from path.
func LoadFile(path string) (entities.LocationTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Default returns the bundled table of ZIP codes around the Lakewood home base.
func Default() entities.LocationTable {
	table, err := Load(bytes.NewReader(defaultTable))
	if err != nil {
		panic("locations: bundled table is invalid: " + err.Error())
	}
	return table
}

// LoadOrDefault reads path, or returns the bundled table when path is empty.
func LoadOrDefault(path string) (entities.LocationTable, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// WithinRadius returns the entries of table no farther than miles from center.
func WithinRadius(table entities.LocationTable, center entities.Coordinate, miles float64) entities.LocationTable {
	out := entities.LocationTable{}
	for id, c := range table {
		if geo.Distance(center, c) <= miles {
			out[id] = c
		}
	}
	return out
}

// Write encodes table as an indented object keyed by identifier.
func Write(w io.Writer, table entities.LocationTable) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("encode locations: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
