package repositories

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-chart/config"
	"weather-chart/internal/models"
	"weather-chart/pkg/logger"
)

func TestFakeWeatherSource_FetchRecords(t *testing.T) {
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	src := NewFakeWeatherSource(start, 365, 42)

	records, err := src.FetchRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 365)

	assert.Equal(t, "2018-01-01", records[0].Date)
	assert.Equal(t, "2018-12-31", records[364].Date)

	for i, r := range records {
		require.NotNil(t, r.TemperatureMax)
		require.NotNil(t, r.TemperatureMin)
		assert.Less(t, *r.TemperatureMin, *r.TemperatureMax)
		if i > 0 {
			assert.Greater(t, r.Date, records[i-1].Date)
		}
	}

	// July is warmer than January on average.
	avg := func(from, to int) float64 {
		var sum float64
		for _, r := range records[from:to] {
			sum += models.TemperatureAccessor(r)
		}
		return sum / float64(to-from)
	}
	assert.Greater(t, avg(181, 212), avg(0, 31))
}

func TestFakeWeatherSource_SeedIsDeterministic(t *testing.T) {
	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	first, err := NewFakeWeatherSource(start, 30, 7).FetchRecords(context.Background())
	require.NoError(t, err)
	second, err := NewFakeWeatherSource(start, 30, 7).FetchRecords(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFakeWeatherSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFakeWeatherSource(time.Now(), 10, 1).FetchRecords(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInitWeatherSource(t *testing.T) {
	l := logger.NewZapLogger("test-app", &bytes.Buffer{})

	cfg := config.Default()
	src, err := InitWeatherSource(cfg, l)
	require.NoError(t, err)
	assert.IsType(t, &RateLimitedWeatherSource{}, src)
	assert.Equal(t, "http [rate limited]", src.Name())

	cfg.Data.Source = "fake"
	src, err = InitWeatherSource(cfg, l)
	require.NoError(t, err)
	assert.IsType(t, &FakeWeatherSource{}, src)

	cfg.Data.FakeStart = "not-a-date"
	_, err = InitWeatherSource(cfg, l)
	assert.Error(t, err)

	cfg.Data.Source = "ftp"
	_, err = InitWeatherSource(cfg, l)
	assert.Error(t, err)
}
