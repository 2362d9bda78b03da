package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

// geocodeResponse keeps only the coordinate pair of each feature. The payload
// orders it [longitude, latitude].
type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// GeocoderClient resolves free-text addresses through the Geoapify search API.
type GeocoderClient struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  *log.Logger
}

func NewGeocoderClient(apiKey, baseURL string, httpClient HTTPClient, logger *log.Logger) *GeocoderClient {
	return &GeocoderClient{apiKey: apiKey, baseURL: baseURL, client: httpClient, logger: logger}
}

// Geocode resolves text to (lat, lon) using the first returned feature.
func (c *GeocoderClient) Geocode(ctx context.Context, text string) (float64, float64, error) {
	if c.apiKey == "" {
		return 0, 0, models.ErrMissingAPIKey
	}

	values := url.Values{}
	values.Set("text", text)
	values.Set("apiKey", c.apiKey)
	values.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, 0, &models.UpstreamConnectionError{Err: err}
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Println("failed to close response body:", err)
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return 0, 0, &models.UpstreamHTTPError{Status: resp.StatusCode, Body: string(body)}
	}

	var raw geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", models.ErrDecode, err)
	}

	if len(raw.Features) == 0 || len(raw.Features[0].Geometry.Coordinates) < 2 {
		return 0, 0, fmt.Errorf("%w: no coordinates found for %q", models.ErrInvalidInput, text)
	}

	coords := raw.Features[0].Geometry.Coordinates
	return coords[1], coords[0], nil
}
