package repositories

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-chart/internal/models"
)

type countingSource struct {
	calls atomic.Int32
}

func (c *countingSource) Name() string {
	return "counting"
}

func (c *countingSource) FetchRecords(ctx context.Context) ([]models.WeatherRecord, error) {
	c.calls.Add(1)
	return []models.WeatherRecord{{Date: "2018-01-01"}}, nil
}

func TestRateLimitedWeatherSource_ForwardsWithinBurst(t *testing.T) {
	inner := &countingSource{}
	src := NewRateLimitedWeatherSource(inner, 1, 2)

	assert.Equal(t, "counting [rate limited]", src.Name())

	for i := 0; i < 2; i++ {
		records, err := src.FetchRecords(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 1)
	}
	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestRateLimitedWeatherSource_WaitHonorsContext(t *testing.T) {
	inner := &countingSource{}
	src := NewRateLimitedWeatherSource(inner, 0.01, 1)

	_, err := src.FetchRecords(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = src.FetchRecords(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait canceled")
	assert.Equal(t, int32(1), inner.calls.Load())
}
