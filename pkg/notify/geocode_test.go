package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseGeocode(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"lat":    q.Get("lat"),
			"lon":    q.Get("lon"),
			"format": q.Get("format"),
		}
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"address":{"city":"Lisbon","country":"Portugal"}}`))
	}))
	defer server.Close()

	g := NewGeocoderWithBaseURL(server.URL)
	place, ok := g.ReverseGeocode(context.Background(), 38.7223, -9.1393)

	require.True(t, ok)
	assert.Equal(t, "Lisbon, Portugal", place)
	assert.Equal(t, "38.7223", gotQuery["lat"])
	assert.Equal(t, "-9.1393", gotQuery["lon"])
	assert.Equal(t, "json", gotQuery["format"])
}

func TestReverseGeocodeFallsBackThroughPlaceFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"address":{"village":"Oia","country":"Greece"}}`))
	}))
	defer server.Close()

	g := NewGeocoderWithBaseURL(server.URL)
	place, ok := g.ReverseGeocode(context.Background(), 36.4618, 25.3753)

	require.True(t, ok)
	assert.Equal(t, "Oia, Greece", place)
}

func TestReverseGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	g := NewGeocoderWithBaseURL(server.URL)
	_, ok := g.ReverseGeocode(context.Background(), 1, 2)
	assert.False(t, ok)
}

func TestReverseGeocodeEmptyAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"address":{}}`))
	}))
	defer server.Close()

	g := NewGeocoderWithBaseURL(server.URL)
	_, ok := g.ReverseGeocode(context.Background(), 0, 0)
	assert.False(t, ok)
}

func TestMapsURL(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps?q=38.7223,-9.1393", MapsURL(38.7223, -9.1393))
}
