package locations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	maps "googlemaps.github.io/maps"

	"route-evaluator/entities"
	"route-evaluator/geo"
)

// ErrNoResult is returned when the geocoder finds nothing for a postal code.
var ErrNoResult = errors.New("geocode: no result")

// GeocodeClient is the part of *maps.Client the Geocoder needs.
type GeocodeClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// Geocoder resolves postal codes to coordinates through the Google Maps
// Geocoding API.
type Geocoder struct {
	client  GeocodeClient
	country string
}

// NewGeocoder returns a Geocoder restricted to US postal codes.
func NewGeocoder(client GeocodeClient) *Geocoder {
	return &Geocoder{client: client, country: "US"}
}

// NewMapsGeocoder builds a Geocoder backed by a maps.Client for apiKey.
func NewMapsGeocoder(apiKey string) (*Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps.NewClient: %w", err)
	}
	return NewGeocoder(client), nil
}

// WithCountry restricts lookups to the given ISO country code.
func (g *Geocoder) WithCountry(country string) *Geocoder {
	g.country = strings.ToUpper(strings.TrimSpace(country))
	return g
}

// Resolve returns the coordinate of the first geocoding result for id.
func (g *Geocoder) Resolve(ctx context.Context, id string) (entities.Coordinate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Coordinate{}, errors.New("geocode: empty postal code")
	}

	req := &maps.GeocodingRequest{
		Components: map[maps.Component]string{
			maps.ComponentPostalCode: id,
		},
	}
	if g.country != "" {
		req.Components[maps.ComponentCountry] = g.country
	}

	resp, err := g.client.Geocode(ctx, req)
	if err != nil {
		return entities.Coordinate{}, fmt.Errorf("geocode %s: %w", id, err)
	}
	if len(resp) == 0 {
		return entities.Coordinate{}, fmt.Errorf("%w for %s", ErrNoResult, id)
	}

	loc := resp[0].Geometry.Location
	c := entities.Coordinate{Lat: loc.Lat, Lon: loc.Lng}
	if !geo.IsValid(c) {
		return entities.Coordinate{}, fmt.Errorf("geocode %s: coordinate out of range", id)
	}
	return c, nil
}

// Build geocodes every id into a new table. It stops at the first failure
// or when ctx is done.
func (g *Geocoder) Build(ctx context.Context, ids []string) (entities.LocationTable, error) {
	table := entities.LocationTable{}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := table[id]; ok {
			continue
		}
		c, err := g.Resolve(ctx, id)
		if err != nil {
			return nil, err
		}
		table[id] = c
	}
	return table, nil
}
