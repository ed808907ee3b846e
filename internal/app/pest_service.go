package app

import (
	"context"
	"errors"
	"log"

	"agroassist/internal/model"
	"agroassist/internal/platform/metrics"
	"agroassist/internal/weather"
)

const (
	PestRiskFungal    = "⚠️ High fungal pest risk (humid & warm)"
	PestRiskHotDry    = "⚠️ Medium risk: hot & dry (mites, thrips)"
	PestRiskBacterial = "⚠️ Bacterial disease risk (too damp)"
	PestRiskLow       = "✅ Low pest risk"
)

const (
	msgLocationMissing    = "Location not provided"
	msgInvalidWeather     = "Invalid weather data"
	msgWeatherUnavailable = "Failed to fetch weather data"
)

// WeatherProvider returns current conditions for a coordinate.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (model.WeatherSnapshot, error)
}

type PestService struct {
	weather WeatherProvider
	metrics *metrics.Metrics
}

func NewPestService(provider WeatherProvider, m *metrics.Metrics) *PestService {
	return &PestService{weather: provider, metrics: m}
}

// Assess fetches the weather once and scores it. No retry is attempted.
func (s *PestService) Assess(ctx context.Context, req model.PestRiskRequest) (model.PestRiskResponse, error) {
	const op = "pest.assess"
	if !req.Lat.Valid || !req.Lon.Valid {
		return model.PestRiskResponse{}, newError(op, KindInvalidInput, msgLocationMissing, nil)
	}

	snap, err := s.weather.Current(ctx, req.Lat.Value, req.Lon.Value)
	if err != nil {
		if errors.Is(err, weather.ErrInvalidData) {
			s.metrics.WeatherFetch(metrics.WeatherInvalid)
			return model.PestRiskResponse{}, newError(op, KindUpstreamInvalid, msgInvalidWeather, err)
		}
		s.metrics.WeatherFetch(metrics.WeatherUnavailable)
		log.Printf("weather api error: %v", err)
		return model.PestRiskResponse{}, newError(op, KindUpstreamUnavailable, msgWeatherUnavailable, err)
	}
	s.metrics.WeatherFetch(metrics.WeatherOK)

	return model.PestRiskResponse{
		Temperature: snap.TemperatureC,
		Humidity:    snap.HumidityPct,
		PestRisk:    ScorePestRisk(snap),
	}, nil
}

// ScorePestRisk maps conditions to a risk verdict; the first match wins.
func ScorePestRisk(w model.WeatherSnapshot) string {
	temp, humidity := w.TemperatureC, w.HumidityPct
	switch {
	case humidity > 70 && temp >= 20 && temp <= 30:
		return PestRiskFungal
	case temp > 30 && humidity < 40:
		return PestRiskHotDry
	case humidity > 80 && temp < 20:
		return PestRiskBacterial
	default:
		return PestRiskLow
	}
}
