package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/config"
)

const openWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// Weather is the trimmed current-conditions payload served to the
// frontend.
type Weather struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// WeatherService fetches current conditions from OpenWeatherMap.
type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWeatherService creates a weather client from the configuration.
func NewWeatherService(cfg *config.Config) *WeatherService {
	return &WeatherService{
		apiKey:  cfg.WeatherAPIKey,
		baseURL: openWeatherURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithBaseURL overrides the provider URL; used by tests.
func (s *WeatherService) WithBaseURL(baseURL string) *WeatherService {
	s.baseURL = baseURL
	return s
}

// Configured reports whether a provider key is available.
func (s *WeatherService) Configured() bool {
	return s.apiKey != ""
}

// CurrentWeather fetches current conditions for a city in metric units.
func (s *WeatherService) CurrentWeather(city string) (*Weather, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	resp, err := s.httpClient.Get(s.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to call weather provider: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("weather provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Name string `json:"name"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	weather := Weather{
		City:        payload.Name,
		Temperature: payload.Main.Temp,
	}
	if len(payload.Weather) > 0 {
		weather.Description = payload.Weather[0].Description
		weather.Icon = payload.Weather[0].Icon
	}
	return &weather, nil
}
