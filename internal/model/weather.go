package model

// WeatherSnapshot holds current conditions in metric units.
type WeatherSnapshot struct {
	TemperatureC float64
	HumidityPct  float64
}

type PestRiskRequest struct {
	Lat Number `json:"lat"`
	Lon Number `json:"lon"`
}

type PestRiskResponse struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	PestRisk    string  `json:"pestRisk"`
}
