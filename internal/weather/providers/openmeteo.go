package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/timezone-weather/internal/weather"
)

// DefaultOpenMeteoBaseURL is the public Open-Meteo API host.
const DefaultOpenMeteoBaseURL = "https://api.open-meteo.com"

const currentFields = "temperature_2m,relative_humidity_2m,precipitation,weather_code,wind_speed_10m"

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  HTTPDoer
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates a provider against baseURL (scheme and host,
// e.g. DefaultOpenMeteoBaseURL).
func NewOpenMeteoProvider(client HTTPDoer, baseURL string) *OpenMeteoProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:         "openmeteo",
		MaxRequests:  5,
		Interval:     1 * time.Minute,
		Timeout:      2 * time.Minute,
		IsSuccessful: countsAsSuccess,
	})

	if baseURL == "" {
		baseURL = DefaultOpenMeteoBaseURL
	}

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: strings.TrimRight(baseURL, "/") + "/v1/forecast",
		client:  client,
		circuit: cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

type openMeteoResponse struct {
	Current *struct {
		Time          string  `json:"time"`
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
		WindSpeed     float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// RequestURL builds the current-conditions query for loc.
func (p *OpenMeteoProvider) RequestURL(loc weather.Location) string {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	values.Set("current", currentFields)
	values.Set("temperature_unit", "celsius")
	values.Set("wind_speed_unit", "kmh")
	return fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, loc weather.Location) (weather.Reading, error) {
	if loc.Fallback {
		return weather.Reading{}, weather.ErrLocationUnresolved
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, p.RequestURL(loc), http.NoBody)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, fmt.Errorf("decode openmeteo response: %w", err)
	}
	if payload.Current == nil {
		return weather.Reading{}, weather.ErrMissingCurrent
	}

	return weather.Reading{
		ProviderName: p.name,
		ObservedAt:   payload.Current.Time,
		TemperatureC: payload.Current.Temperature,
		HumidityPct:  payload.Current.Humidity,
		PrecipMm:     payload.Current.Precipitation,
		WindSpeedKmh: payload.Current.WindSpeed,
		WeatherCode:  payload.Current.WeatherCode,
	}, nil
}
