package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"agroassist/internal/config"
	"agroassist/internal/model"
	"agroassist/internal/platform/metrics"
	"agroassist/internal/vision"
	"agroassist/internal/weather"
)

type App struct {
	Config  *config.Config
	Model   vision.Handle
	Weather *weather.Client
	Metrics *metrics.Metrics

	StartedAt time.Time
}

// New loads the configuration and the leaf model. A ctx cancelled before
// the model load (a signal during startup) aborts with ctx.Err().
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	handle := LoadModel(cfg)
	if err := ctx.Err(); err != nil {
		handle.Close()
		return nil, err
	}
	return Assemble(cfg, handle), nil
}

// LoadModel tries once to load the leaf model. Failure is logged and yields
// an unavailable handle; the other endpoints keep working without it.
func LoadModel(cfg *config.Config) vision.Handle {
	classifier, err := vision.Load(vision.LoadConfig{
		ModelPath:         cfg.Vision.ModelPath,
		ONNXSharedLibPath: cfg.Vision.ONNXSharedLibPath,
		Labels:            model.LeafLabels[:],
	})
	if err != nil {
		log.Printf("warning: no ML model loaded from %s, leaf scanner disabled until one is added: %v", cfg.Vision.ModelPath, err)
		return vision.Unavailable()
	}
	log.Printf("ML model loaded from %s (layout=%s, size=%d)", cfg.Vision.ModelPath, classifier.Layout(), classifier.Size())
	return vision.Loaded(classifier)
}

// Assemble wires the remaining dependencies around an already resolved model handle.
func Assemble(cfg *config.Config, handle vision.Handle) *App {
	m := metrics.New()
	m.SetModelLoaded(handle.Available())

	return &App{
		Config: cfg,
		Model:  handle,
		Weather: weather.NewClient(weather.Config{
			BaseURL: cfg.Weather.BaseURL,
			APIKey:  cfg.Weather.APIKey,
			Timeout: cfg.WeatherTimeout(),
		}),
		Metrics:   m,
		StartedAt: time.Now(),
	}
}

func (a *App) Close() error {
	return a.Model.Close()
}
