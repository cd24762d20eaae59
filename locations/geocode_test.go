package locations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	maps "googlemaps.github.io/maps"

	"route-evaluator/entities"
)

type fakeGeocodeClient struct {
	results  map[string]maps.LatLng
	err      error
	requests []*maps.GeocodingRequest
}

func (f *fakeGeocodeClient) Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	f.requests = append(f.requests, r)
	if f.err != nil {
		return nil, f.err
	}
	loc, ok := f.results[r.Components[maps.ComponentPostalCode]]
	if !ok {
		return nil, nil
	}
	res := maps.GeocodingResult{}
	res.Geometry.Location = loc
	return []maps.GeocodingResult{res}, nil
}

func newFake() *fakeGeocodeClient {
	return &fakeGeocodeClient{results: map[string]maps.LatLng{
		"44107": {Lat: 41.4845, Lng: -81.8006},
		"44106": {Lat: 41.5073, Lng: -81.6077},
	}}
}

func TestGeocoder_Resolve(t *testing.T) {
	fake := newFake()
	g := NewGeocoder(fake)

	c, err := g.Resolve(context.Background(), " 44107 ")
	require.NoError(t, err)

	assert.Equal(t, entities.Coordinate{Lat: 41.4845, Lon: -81.8006}, c)
	require.Len(t, fake.requests, 1)
	assert.Equal(t, "44107", fake.requests[0].Components[maps.ComponentPostalCode])
	assert.Equal(t, "US", fake.requests[0].Components[maps.ComponentCountry])
}

func TestGeocoder_WithCountry(t *testing.T) {
	fake := newFake()
	_, err := NewGeocoder(fake).WithCountry("ca").Resolve(context.Background(), "44107")
	require.NoError(t, err)
	assert.Equal(t, "CA", fake.requests[0].Components[maps.ComponentCountry])
}

func TestGeocoder_ResolveErrors(t *testing.T) {
	_, err := NewGeocoder(newFake()).Resolve(context.Background(), "99999")
	assert.ErrorIs(t, err, ErrNoResult)

	_, err = NewGeocoder(newFake()).Resolve(context.Background(), "  ")
	assert.Error(t, err)

	boom := errors.New("quota exceeded")
	_, err = NewGeocoder(&fakeGeocodeClient{err: boom}).Resolve(context.Background(), "44107")
	assert.ErrorIs(t, err, boom)
}

func TestGeocoder_Build(t *testing.T) {
	fake := newFake()

	table, err := NewGeocoder(fake).Build(context.Background(), []string{"44107", "", "44106", "44107"})
	require.NoError(t, err)

	assert.Len(t, table, 2)
	assert.Len(t, fake.requests, 2, "duplicates and blanks are skipped")
}

func TestGeocoder_BuildStopsOnFailure(t *testing.T) {
	_, err := NewGeocoder(newFake()).Build(context.Background(), []string{"44107", "00000"})
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestGeocoder_BuildHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := newFake()
	_, err := NewGeocoder(fake).Build(ctx, []string{"44107"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fake.requests)
}
