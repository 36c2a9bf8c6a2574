// Package weather provides beach conditions. Only placeholder data exists.
package weather

import "context"

// Forecast is one day ahead.
type Forecast struct {
	Day       string `json:"day"`
	Condition string `json:"condition"`
	Temp      int    `json:"temp"`
}

// Report is the current conditions plus a short forecast. Units are °F and mph.
type Report struct {
	Temperature int        `json:"temperature"`
	Condition   string     `json:"condition"`
	WindSpeed   int        `json:"windSpeed"`
	Humidity    int        `json:"humidity"`
	UVIndex     int        `json:"uvIndex"`
	Forecast    []Forecast `json:"forecast"`
}

// Provider fetches a weather report.
type Provider interface {
	Current(ctx context.Context) (Report, error)
}

// Mock serves fixed placeholder conditions.
type Mock struct{}

func (Mock) Current(context.Context) (Report, error) {
	return Report{
		Temperature: 72,
		Condition:   "Partly Cloudy",
		WindSpeed:   8,
		Humidity:    65,
		UVIndex:     5,
		Forecast: []Forecast{
			{Day: "Tomorrow", Condition: "Sunny", Temp: 75},
			{Day: "Thursday", Condition: "Rainy", Temp: 68},
			{Day: "Friday", Condition: "Sunny", Temp: 78},
		},
	}, nil
}

var icons = map[string]string{
	"Sunny":         "☀️",
	"Cloudy":        "☁️",
	"Rainy":         "🌧️",
	"Partly Cloudy": "⛅",
	"Windy":         "💨",
}

// Icon returns an emoji for a condition.
func Icon(condition string) string {
	if i, ok := icons[condition]; ok {
		return i
	}
	return "🌤️"
}
