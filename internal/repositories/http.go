package repositories

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"

	"weather-chart/internal/models"
	"weather-chart/pkg/logger"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrCircuitOpen      = errors.New("circuit breaker open")
)

type BreakerSettings struct {
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
}

// HTTPWeatherSource reads a JSON array of daily records from a single URL.
// Any failure (transport, status, decoding) is returned to the caller; there
// is no retry.
type HTTPWeatherSource struct {
	url        string
	httpClient HTTPClient
	breaker    *gobreaker.CircuitBreaker
	l          *logger.Logger
}

func NewHTTPWeatherSource(l *logger.Logger, httpClient HTTPClient, url string, bs BreakerSettings) *HTTPWeatherSource {
	s := &HTTPWeatherSource{
		url:        url,
		httpClient: httpClient,
		l:          l,
	}

	s.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        s.Name(),
		MaxRequests: bs.MaxRequests,
		Interval:    bs.Interval,
		Timeout:     bs.Timeout,
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warning("circuit breaker state changed", map[string]any{
				"source": name,
				"from":   from.String(),
				"to":     to.String(),
			})
		},
	})

	return s
}

func (s *HTTPWeatherSource) Name() string {
	return "http"
}

func (s *HTTPWeatherSource) FetchRecords(ctx context.Context) ([]models.WeatherRecord, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.fetch(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errors.Wrap(ErrCircuitOpen, err.Error())
	}
	if err != nil {
		return nil, err
	}

	return result.([]models.WeatherRecord), nil
}

func (s *HTTPWeatherSource) fetch(ctx context.Context) ([]models.WeatherRecord, error) {
	s.l.Info("requesting weather data", map[string]any{
		"source": s.Name(),
		"url":    s.url,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to do request")
	}
	defer resp.Body.Close()

	s.l.Info("received weather data response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrUnexpectedStatus, "status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	var records []models.WeatherRecord
	if err = json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrap(err, "failed to parse JSON response")
	}

	s.l.Info("parsed weather data", map[string]any{
		"records": len(records),
	})

	return records, nil
}
