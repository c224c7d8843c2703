// Package weather fetches current conditions from wttr.in and falls back to
// the catalog's static city profiles when the live source is unreachable.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/adveng/tata-car-advisor/internal/catalog"
)

// Report is what the weather tool hands to the LLM.
type Report struct {
	City         string `json:"city"`
	TemperatureC int    `json:"temperatureC"`
	HumidityPct  int    `json:"humidityPct"`
	Description  string `json:"description"`
	Terrain      string `json:"terrain"`
	ACImportance string `json:"acImportance"` // HIGH, MODERATE, LOW
	Source       string `json:"source"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// wttr.in j1 payload, trimmed to the fields we read.
type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		Humidity    string `json:"humidity"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
}

// Lookup returns live conditions for a city, or the profile-based estimate
// when the live call fails. The second return reports whether the city is
// known at all: false means neither the live source nor the catalog had it.
func (c *Client) Lookup(ctx context.Context, city string) (Report, bool) {
	report, err := c.fetchLive(ctx, city)
	if err == nil {
		return report, true
	}
	slog.Warn("live weather lookup failed, using city profile", "city", city, "error", err)
	return profileFallback(city)
}

func (c *Client) fetchLive(ctx context.Context, city string) (Report, error) {
	u := fmt.Sprintf("%s/%s?format=j1", c.endpoint, url.PathEscape(city))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Report{}, err
	}
	// wttr.in rejects the default Go user agent
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Report{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("weather source returned status %d", resp.StatusCode)
	}

	var payload wttrResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{}, fmt.Errorf("decoding weather payload: %w", err)
	}
	if len(payload.CurrentCondition) == 0 {
		return Report{}, fmt.Errorf("weather payload has no current conditions")
	}

	current := payload.CurrentCondition[0]
	tempC, err := strconv.Atoi(current.TempC)
	if err != nil {
		return Report{}, fmt.Errorf("bad temperature %q: %w", current.TempC, err)
	}
	humidity, err := strconv.Atoi(current.Humidity)
	if err != nil {
		return Report{}, fmt.Errorf("bad humidity %q: %w", current.Humidity, err)
	}

	desc := ""
	if len(current.WeatherDesc) > 0 {
		desc = current.WeatherDesc[0].Value
	}

	terrain := "flat"
	if profile, err := catalog.City(city); err == nil {
		terrain = profile.Terrain
	}

	return Report{
		City:         city,
		TemperatureC: tempC,
		HumidityPct:  humidity,
		Description:  desc,
		Terrain:      terrain,
		ACImportance: acImportance(tempC, humidity),
		Source:       "wttr.in (live)",
	}, nil
}

func profileFallback(city string) (Report, bool) {
	profile, err := catalog.City(city)
	if err != nil {
		return Report{}, false
	}

	humidity := map[string]int{
		"very_high": 85, "high": 70, "moderate": 55, "low": 35, "very_low": 20,
	}[profile.Humidity]
	if humidity == 0 {
		humidity = 55
	}

	tempC := 25
	if profile.Humidity == "very_high" || profile.Humidity == "high" {
		tempC = 32
	}

	return Report{
		City:         profile.Name,
		TemperatureC: tempC,
		HumidityPct:  humidity,
		Description:  "Estimated from city climate profile",
		Terrain:      profile.Terrain,
		ACImportance: acImportance(tempC, humidity),
		Source:       "city_profile_fallback",
	}, true
}

func acImportance(tempC, humidityPct int) string {
	switch {
	case humidityPct > 70 || tempC > 35:
		return "HIGH"
	case tempC > 28:
		return "MODERATE"
	default:
		return "LOW"
	}
}
