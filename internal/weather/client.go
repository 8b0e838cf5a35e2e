// ABOUTME: OpenWeatherMap client for current conditions by city name
// ABOUTME: One attempt per call with a short timeout; non-2xx is a failure
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrBadStatus indicates the weather API answered with a non-2xx status,
// typically an unknown city or a rejected API key.
var ErrBadStatus = errors.New("weather api returned non-success status")

// Report holds the fields consumed from a current-weather response
type Report struct {
	Description string
	Temp        float64
	FeelsLike   float64
	Humidity    int
}

// Client provides current weather for a city
type Client interface {
	Current(ctx context.Context, city string) (*Report, error)
}

// HTTPClient implements Client against the OpenWeatherMap REST API
type HTTPClient struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
}

// NewHTTPClient creates a weather client for the given endpoint and key
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
	}
}

// currentResponse is the JSON body returned by GET /data/2.5/weather.
// Only the fields the router formats are decoded.
type currentResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
}

// Current fetches current conditions for city in metric units
func (c *HTTPClient) Current(ctx context.Context, city string) (*Report, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d for city %q", ErrBadStatus, resp.StatusCode, city)
	}

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}

	report := &Report{
		Temp:      body.Main.Temp,
		FeelsLike: body.Main.FeelsLike,
		Humidity:  body.Main.Humidity,
	}
	if len(body.Weather) > 0 {
		report.Description = body.Weather[0].Description
	}
	return report, nil
}
