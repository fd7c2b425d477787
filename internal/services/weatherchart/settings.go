package weatherchart

import (
	"time"

	"weather-chart/config"
	"weather-chart/internal/chart"
)

// Settings are the fixed visual parameters of the chart.
type Settings struct {
	Freezing  float64
	BandColor string
	LineColor string
	LineWidth float64
	TickCount int
	Location  *time.Location
}

func NewSettings(cfg *config.Config) Settings {
	return Settings{
		Freezing:  cfg.Chart.FreezingThreshold,
		BandColor: cfg.Chart.BandColor,
		LineColor: cfg.Chart.LineColor,
		LineWidth: cfg.Chart.LineWidth,
		TickCount: cfg.Chart.TickCount,
		Location:  cfg.Location(),
	}
}

func NewGeometrySettings(cfg *config.Config) chart.GeometrySettings {
	return chart.GeometrySettings{
		WidthFraction: cfg.Chart.WidthFraction,
		Height:        cfg.Chart.Height,
		Margins: chart.Margins{
			Top:    cfg.Chart.MarginTop,
			Right:  cfg.Chart.MarginRight,
			Bottom: cfg.Chart.MarginBottom,
			Left:   cfg.Chart.MarginLeft,
		},
	}
}
