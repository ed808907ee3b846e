package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"agroassist/internal/model"
)

// ErrInvalidData means the provider answered but without usable current conditions.
var ErrInvalidData = errors.New("weather response has no current conditions")

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client fetches current conditions from the OpenWeatherMap API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type currentResponse struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
}

// Current returns temperature (°C) and humidity (%) at lat/lon.
// Errors wrapping ErrInvalidData mean the provider answered with JSON that
// has no current conditions, whatever the status code. Any other error means
// the provider could not be reached or did not answer with JSON.
func (c *Client) Current(ctx context.Context, lat, lon float64) (model.WeatherSnapshot, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	endpoint := c.baseURL + "/data/2.5/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("build weather request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("read weather response failed: %w", err)
	}

	// Provider errors such as a bad key still come back as JSON, just
	// without "main"; only an unparseable body means the fetch failed.
	var parsed currentResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("parse weather json failed (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Main == nil || parsed.Main.Temp == nil || parsed.Main.Humidity == nil {
		return model.WeatherSnapshot{}, fmt.Errorf("%w (status %d): %s", ErrInvalidData, resp.StatusCode, truncate(raw, 256))
	}

	return model.WeatherSnapshot{
		TemperatureC: *parsed.Main.Temp,
		HumidityPct:  *parsed.Main.Humidity,
	}, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
