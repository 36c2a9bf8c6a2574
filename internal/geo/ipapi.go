package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Makepad-fr/shoresquad/internal/model"
)

// DefaultIPAPIURL is the public ip-api.com JSON endpoint.
const DefaultIPAPIURL = "http://ip-api.com/json"

// IPAPI locates the user from their public IP address.
type IPAPI struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPAPI creates a locator against an ip-api.com compatible endpoint.
func NewIPAPI(baseURL string, timeout time.Duration) *IPAPI {
	if baseURL == "" {
		baseURL = DefaultIPAPIURL
	}
	return &IPAPI{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type ipapiResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// City-level accuracy; ip-api does not report one.
const ipAccuracyMeters = 5000

func (c *IPAPI) Locate(ctx context.Context) (model.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?fields=status,message,lat,lon", nil)
	if err != nil {
		return model.Location{}, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Location{}, fmt.Errorf("ip lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return model.Location{}, fmt.Errorf("ip lookup: status %d: %s", resp.StatusCode, body)
	}

	var r ipapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return model.Location{}, fmt.Errorf("decode response: %w", err)
	}
	if r.Status != "success" {
		return model.Location{}, fmt.Errorf("ip lookup failed: %s", r.Message)
	}
	return model.Location{
		Coordinate: model.Coordinate{Lat: r.Lat, Lng: r.Lon},
		Accuracy:   ipAccuracyMeters,
	}, nil
}
