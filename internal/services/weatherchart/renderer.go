// Package weatherchart draws the daily maximum temperature series as a line
// chart over a freezing band, with a time axis and a temperature axis.
package weatherchart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"weather-chart/internal/chart"
	"weather-chart/internal/models"
	"weather-chart/internal/repositories"
	"weather-chart/internal/surface"
	"weather-chart/pkg/logger"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// ChartRenderer runs the whole pipeline once per call: load, scales,
// canvas, band, line, axes. It keeps no state between calls.
type ChartRenderer struct {
	source   repositories.WeatherSource
	settings Settings
	l        *logger.Logger
	newID    func() string
}

func NewChartRenderer(source repositories.WeatherSource, settings Settings, l *logger.Logger) *ChartRenderer {
	return &ChartRenderer{
		source:   source,
		settings: settings,
		l:        l,
		newID:    uuid.NewString,
	}
}

// Render appends the chart to container. When the data cannot be loaded a
// single error is logged and container is left untouched.
func (r *ChartRenderer) Render(ctx context.Context, geometry chart.Geometry, container *surface.Node) {
	l := r.l.With(map[string]any{"render_id": r.newID()})

	records, err := r.source.FetchRecords(ctx)
	if err != nil {
		l.Error(errors.Wrap(err, "load weather data"), map[string]any{
			"source": r.source.Name(),
		})
		return
	}

	Draw(records, geometry, r.settings, container)

	l.Debug("chart rendered", map[string]any{
		"records": len(records),
		"width":   geometry.Width,
		"height":  geometry.Height,
	})
}

type Scales struct {
	X chart.TimeScale
	Y chart.LinearScale
}

// BuildScales derives both scales from the data. The X range starts at the
// left margin even though the plot group is already translated by it.
func BuildScales(records []models.WeatherRecord, g chart.Geometry, loc *time.Location) Scales {
	y := chart.NewLinearScale(
		chart.Extent(records, models.TemperatureAccessor),
		[2]float64{g.InnerHeight(), 0},
	)
	x := chart.NewTimeScale(
		chart.TimeExtent(records, models.DateAccessor(loc)),
		[2]float64{g.Margins.Left, g.InnerWidth()},
		loc,
	)
	return Scales{X: x, Y: y}
}

// Draw composes the chart for records into container and returns the root
// svg element. It never fails; unusable values end up as NaN coordinates.
func Draw(records []models.WeatherRecord, g chart.Geometry, s Settings, container *surface.Node) *surface.Node {
	scales := BuildScales(records, g, s.Location)
	innerWidth, innerHeight := g.InnerWidth(), g.InnerHeight()

	root := container.Append("svg").
		Attr("xmlns", svgNamespace).
		Attr("width", g.Width).
		Attr("height", g.Height).
		Style("border", "1px solid")

	bounds := root.Append("g").
		Attr("transform", translate(g.Margins.Left, g.Margins.Top))

	freezingY := scales.Y.Scale(s.Freezing)
	bounds.Append("rect").
		Attr("x", 0).
		Attr("width", innerWidth).
		Attr("y", freezingY).
		Attr("height", innerHeight-freezingY).
		Attr("fill", s.BandColor)

	dateOf := models.DateAccessor(s.Location)
	line := chart.LineGenerator[models.WeatherRecord]{
		X: func(r models.WeatherRecord) float64 { return scales.X.ScaleDate(dateOf(r)) },
		Y: func(r models.WeatherRecord) float64 { return scales.Y.Scale(models.TemperatureAccessor(r)) },
	}
	path := bounds.Append("path")
	if d := line.Points(records).D(); d != "" {
		path.Attr("d", d)
	}
	path.Attr("fill", "none").
		Attr("stroke", s.LineColor).
		Attr("stroke-width", s.LineWidth)

	yAxis := bounds.Append("g")
	chart.AxisLeft(scales.Y).Ticks(s.TickCount).Render(yAxis)

	xAxis := bounds.Append("g").
		Attr("transform", translate(0, innerHeight))
	chart.AxisBottom(scales.X).Ticks(s.TickCount).Render(xAxis)

	return root
}

func translate(x, y float64) string {
	return "translate(" + surface.FormatNumber(x) + "," + surface.FormatNumber(y) + ")"
}
