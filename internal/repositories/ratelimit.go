package repositories

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"weather-chart/internal/models"
)

// RateLimitedWeatherSource caps how often page loads reach the wrapped source.
type RateLimitedWeatherSource struct {
	source  WeatherSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedWeatherSource allows rps requests per second (fractional
// values allowed) with bursts of up to burst requests.
func NewRateLimitedWeatherSource(source WeatherSource, rps float64, burst int) *RateLimitedWeatherSource {
	return &RateLimitedWeatherSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    source.Name() + " [rate limited]",
	}
}

func (r *RateLimitedWeatherSource) FetchRecords(ctx context.Context) ([]models.WeatherRecord, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limit wait canceled")
	}

	return r.source.FetchRecords(ctx)
}

func (r *RateLimitedWeatherSource) Name() string {
	return r.name
}
