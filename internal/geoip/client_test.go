package geoip

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/enviro_health_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(primaryURL, fallbackURL string) *Client {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		GeoIPPrimaryURL:      primaryURL,
		GeoIPFallbackURL:     fallbackURL,
		GeoIPPrimaryTimeout:  2 * time.Second,
		GeoIPFallbackTimeout: 2 * time.Second,
	}
	return NewClient(cfg, logger)
}

func TestLocate_PrimaryProvider(t *testing.T) {
	// Основной провайдер отвечает схемой latitude/longitude
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/203.0.113.10/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"latitude": 28.6139, "longitude": 77.2090}`))
	}))
	defer primary.Close()

	client := newTestClient(primary.URL+"/%s/json/", "http://127.0.0.1:1/%s")

	loc, err := client.Locate(context.Background(), "203.0.113.10")

	require.NoError(t, err)
	assert.Equal(t, 28.6139, loc.Latitude)
	assert.Equal(t, 77.2090, loc.Longitude)
}

func TestLocate_FallbackProvider(t *testing.T) {
	// Основной провайдер недоступен, запасной отвечает схемой lat/lon
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"lat": 19.0760, "lon": 72.8777}`))
	}))
	defer fallback.Close()

	client := newTestClient(primary.URL+"/%s/json/", fallback.URL+"/json/%s")

	loc, err := client.Locate(context.Background(), "203.0.113.10")

	require.NoError(t, err)
	assert.Equal(t, 19.0760, loc.Latitude)
	assert.Equal(t, 72.8777, loc.Longitude)
}

func TestLocate_BothProvidersFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	client := newTestClient(failing.URL+"/%s/json/", failing.URL+"/json/%s")

	_, err := client.Locate(context.Background(), "203.0.113.10")

	require.Error(t, err)
	assert.ErrorContains(t, err, "geoip lookup failed")
}

func TestLocate_ResponseWithoutCoordinates(t *testing.T) {
	// Провайдер отвечает 200, но без координат (например, rate limit в теле)
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": true, "reason": "RateLimited"}`))
	}))
	defer empty.Close()

	client := newTestClient(empty.URL+"/%s/json/", empty.URL+"/json/%s")

	_, err := client.Locate(context.Background(), "203.0.113.10")

	require.Error(t, err)
	assert.ErrorContains(t, err, "no coordinates")
}
