package repositories

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"weather-chart/config"
	"weather-chart/internal/models"
	"weather-chart/pkg/logger"
)

// WeatherSource loads the full series the chart is drawn from.
type WeatherSource interface {
	Name() string
	FetchRecords(ctx context.Context) ([]models.WeatherRecord, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// InitWeatherSource builds the source selected by cfg.Data.Source. Remote
// sources are rate limited.
func InitWeatherSource(cfg *config.Config, l *logger.Logger) (WeatherSource, error) {
	switch cfg.Data.Source {
	case "fake":
		start, err := time.ParseInLocation(models.DateLayout, cfg.Data.FakeStart, cfg.Location())
		if err != nil {
			return nil, errors.Wrap(err, "parse fake start date")
		}
		return NewFakeWeatherSource(start, cfg.Data.FakeDays, cfg.Data.FakeSeed), nil
	case "http":
		src := NewHTTPWeatherSource(l, &http.Client{}, cfg.Data.URL, BreakerSettings{
			MaxRequests: cfg.Data.BreakerMaxRequests,
			Interval:    cfg.Data.BreakerInterval,
			Timeout:     cfg.Data.BreakerTimeout,
		})
		return NewRateLimitedWeatherSource(src, cfg.Data.RequestsPerSecond, cfg.Data.Burst), nil
	default:
		return nil, errors.Errorf("unknown weather source %q", cfg.Data.Source)
	}
}
