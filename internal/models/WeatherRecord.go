package models

import (
	"math"
	"time"
)

// DateLayout is the layout of WeatherRecord.Date.
const DateLayout = "2006-01-02"

// WeatherRecord is one daily observation as served by the upstream dataset.
// Fields the chart does not use are dropped on decode.
//
// Records are expected in chronological order; nothing checks or sorts them.
type WeatherRecord struct {
	Date           string   `json:"date" example:"2018-01-01"`
	TemperatureMax *float64 `json:"temperatureMax" example:"42.52"`
	TemperatureMin *float64 `json:"temperatureMin,omitempty" example:"28.1"`
}

func Float(v float64) *float64 {
	return &v
}

// TemperatureAccessor returns the maximum temperature, or NaN when the record
// does not carry one.
func TemperatureAccessor(r WeatherRecord) float64 {
	if r.TemperatureMax == nil {
		return math.NaN()
	}
	return *r.TemperatureMax
}

// DateAccessor returns an accessor parsing Date in loc. The boolean is false
// for a date that does not match DateLayout.
func DateAccessor(loc *time.Location) func(WeatherRecord) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	return func(r WeatherRecord) (time.Time, bool) {
		t, err := time.ParseInLocation(DateLayout, r.Date, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
}
