package repositories

import (
	"context"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"weather-chart/internal/models"
)

const (
	fakeMeanMax      = 62.0
	fakeAmplitude    = 24.0
	fakeNoise        = 7.0
	fakeColdestDay   = 20
	fakeDaysPerYear  = 365.25
	fakeMinSpreadLow = 8.0
	fakeMinSpreadTop = 18.0
)

// FakeWeatherSource synthesizes a daily series in °F following a seasonal
// curve with random noise. A non-zero seed makes every call return the same
// series.
type FakeWeatherSource struct {
	start time.Time
	days  int
	seed  uint64
}

func NewFakeWeatherSource(start time.Time, days int, seed uint64) *FakeWeatherSource {
	return &FakeWeatherSource{
		start: start,
		days:  days,
		seed:  seed,
	}
}

func (f *FakeWeatherSource) Name() string {
	return "fake"
}

func (f *FakeWeatherSource) FetchRecords(ctx context.Context) ([]models.WeatherRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	faker := gofakeit.New(f.seed)
	records := make([]models.WeatherRecord, 0, f.days)
	for i := 0; i < f.days; i++ {
		day := f.start.AddDate(0, 0, i)

		season := math.Cos(2 * math.Pi * float64(day.YearDay()-fakeColdestDay) / fakeDaysPerYear)
		high := fakeMeanMax - fakeAmplitude*season + faker.Float64Range(-fakeNoise, fakeNoise)
		low := high - faker.Float64Range(fakeMinSpreadLow, fakeMinSpreadTop)

		records = append(records, models.WeatherRecord{
			Date:           day.Format(models.DateLayout),
			TemperatureMax: models.Float(round2(high)),
			TemperatureMin: models.Float(round2(low)),
		})
	}

	return records, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
