package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/services"
)

// WeatherController proxies the weather provider for the kiosk header.
type WeatherController struct {
	weather *services.WeatherService
}

// NewWeatherController creates a weather controller from a weather
// client.
func NewWeatherController(weather *services.WeatherService) *WeatherController {
	return &WeatherController{weather: weather}
}

// GetWeather handles GET /api/weather?city=
func (wc *WeatherController) GetWeather(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city is required"})
		return
	}
	if !wc.weather.Configured() {
		log.Printf("Weather request rejected: WEATHER_API_KEY is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Weather service is not configured"})
		return
	}

	weather, err := wc.weather.CurrentWeather(city)
	if err != nil {
		log.Printf("Weather lookup failed for %q: %v", city, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load weather"})
		return
	}
	c.JSON(http.StatusOK, weather)
}
