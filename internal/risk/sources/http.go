package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	assetmodels "tessera/internal/asset/models"
	"tessera/internal/risk/models"
	"tessera/pkg/platform/sentinel"
)

// HTTP adapts deployed market data and weather collaborators. Both endpoints
// return already-shaped JSON; this adapter only decodes it. Any transport or
// decode failure surfaces as sentinel.ErrUnavailable so the service can
// degrade to its documented defaults.
type HTTP struct {
	marketURL  string
	weatherURL string
	client     *http.Client
}

// NewHTTP creates the adapter. Empty URLs disable the corresponding lookup
// (it reports unavailable).
func NewHTTP(marketURL, weatherURL string, timeout time.Duration) *HTTP {
	return &HTTP{
		marketURL:  marketURL,
		weatherURL: weatherURL,
		client:     &http.Client{Timeout: timeout},
	}
}

type volatilityResponse struct {
	Volatility float64 `json:"volatility"`
}

func (s *HTTP) GetVolatility(ctx context.Context, category assetmodels.AssetCategory, location string) (float64, error) {
	if s.marketURL == "" {
		return 0, sentinel.ErrUnavailable
	}
	endpoint := fmt.Sprintf("%s/volatility?category=%s&location=%s",
		s.marketURL, url.QueryEscape(string(category)), url.QueryEscape(location))

	var body volatilityResponse
	if err := s.getJSON(ctx, endpoint, &body); err != nil {
		return 0, err
	}
	if body.Volatility < 0 || body.Volatility > 1 {
		return 0, fmt.Errorf("volatility %f out of range: %w", body.Volatility, sentinel.ErrUnavailable)
	}
	return body.Volatility, nil
}

func (s *HTTP) GetWeather(ctx context.Context, lat, lng float64) (*models.Weather, error) {
	if s.weatherURL == "" {
		return nil, sentinel.ErrUnavailable
	}
	endpoint := fmt.Sprintf("%s/current?lat=%f&lng=%f", s.weatherURL, lat, lng)

	var body models.Weather
	if err := s.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	return &body, nil
}

func (s *HTTP) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", sentinel.ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", sentinel.ErrUnavailable, err)
	}
	return nil
}
