package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/enviro_health_system/internal/config"
	"github.com/sirupsen/logrus"
)

// Location - приблизительные координаты, определенные по IP
type Location struct {
	Latitude  float64
	Longitude float64
}

// Locator - интерфейс определения координат по IP-адресу
type Locator interface {
	Locate(ctx context.Context, ip string) (*Location, error)
}

// Client определяет координаты по IP через внешние JSON-провайдеры.
// Запросы одноразовые: один запрос к основному провайдеру, при неудаче
// один запрос к запасному. Циклов повторов нет, отказ обоих провайдеров
// не фатален для вызывающего кода.
type Client struct {
	primaryURL  string
	fallbackURL string
	primary     *http.Client
	fallback    *http.Client
	logger      *logrus.Logger
}

// NewClient создает новый GeoIP клиент
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		primaryURL:  cfg.GeoIPPrimaryURL,
		fallbackURL: cfg.GeoIPFallbackURL,
		primary:     &http.Client{Timeout: cfg.GeoIPPrimaryTimeout},
		fallback:    &http.Client{Timeout: cfg.GeoIPFallbackTimeout},
		logger:      logger,
	}
}

// providerResponse покрывает схемы обоих провайдеров:
// ipapi.co отдает latitude/longitude, ip-api.com отдает lat/lon
type providerResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
}

func (r providerResponse) location() (*Location, bool) {
	if r.Latitude != nil && r.Longitude != nil {
		return &Location{Latitude: *r.Latitude, Longitude: *r.Longitude}, true
	}
	if r.Lat != nil && r.Lon != nil {
		return &Location{Latitude: *r.Lat, Longitude: *r.Lon}, true
	}
	return nil, false
}

// Locate пробует основной провайдер и один раз запасной
func (c *Client) Locate(ctx context.Context, ip string) (*Location, error) {
	log := c.logger.WithField("component", "geoip").WithField("ip", ip)

	loc, err := c.query(ctx, c.primary, c.primaryURL, ip)
	if err == nil {
		return loc, nil
	}
	log.WithError(err).Warn("Primary GeoIP provider failed, trying fallback")

	loc, err = c.query(ctx, c.fallback, c.fallbackURL, ip)
	if err != nil {
		return nil, fmt.Errorf("geoip lookup failed: %w", err)
	}
	return loc, nil
}

func (c *Client) query(ctx context.Context, client *http.Client, urlTemplate, ip string) (*Location, error) {
	url := fmt.Sprintf(urlTemplate, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geoip request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geoip request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoip provider returned status %d", resp.StatusCode)
	}

	var body providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode geoip response: %w", err)
	}

	loc, ok := body.location()
	if !ok {
		return nil, fmt.Errorf("geoip response has no coordinates")
	}
	return loc, nil
}
