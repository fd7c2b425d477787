package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-chart/config"
	"weather-chart/internal/models"
	"weather-chart/internal/services/weatherchart"
	"weather-chart/pkg/httpserver"
	"weather-chart/pkg/logger"
)

type stubSource struct {
	fail bool
}

func (s *stubSource) Name() string {
	return "stub"
}

func (s *stubSource) FetchRecords(ctx context.Context) ([]models.WeatherRecord, error) {
	if s.fail {
		return nil, errors.New("upstream unavailable")
	}
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]models.WeatherRecord, 0, 60)
	for i := 0; i < 60; i++ {
		records = append(records, models.WeatherRecord{
			Date:           start.AddDate(0, 0, i).Format(models.DateLayout),
			TemperatureMax: models.Float(20 + float64(i%15)),
		})
	}
	return records, nil
}

func newTestApp(t *testing.T, fail bool) (*fiber.App, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	l := logger.NewZapLogger("test-app", &buf)
	cfg := config.Default()

	app := httpserver.InitFiberServer(cfg, l)
	renderer := weatherchart.NewChartRenderer(&stubSource{fail: fail}, weatherchart.NewSettings(cfg), l)
	NewRouter(app, renderer, RouterConfig{
		Title:         "Weather chart",
		ViewportWidth: cfg.Chart.ViewportWidth,
		Geometry:      weatherchart.NewGeometrySettings(cfg),
	}, l)

	return app, &buf
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHandleIndex(t *testing.T) {
	app, buf := newTestApp(t, false)

	resp, body := get(t, app, "/?width=1000")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `<div id="wrapper"><svg xmlns="http://www.w3.org/2000/svg" width="900" height="400"`)
	assert.Contains(t, body, `fill="#e0f3f3"`)
	assert.Contains(t, body, `stroke="#af9358"`)
	assert.NotContains(t, buf.String(), `"level":"error"`)
}

func TestHandleIndex_DefaultWidth(t *testing.T) {
	app, _ := newTestApp(t, false)

	_, body := get(t, app, "/")

	assert.Contains(t, body, `width="1152"`)
}

func TestHandleIndex_InvalidWidth(t *testing.T) {
	app, _ := newTestApp(t, false)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"not a number", "?width=wide", "Invalid width format"},
		{"negative", "?width=-5", "Invalid width"},
		{"zero", "?width=0", "Invalid width"},
		{"too large", "?width=50000", "must not exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, app, "/"+tt.query)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(body), &errResp))
			assert.Contains(t, errResp.Error, tt.want)
		})
	}
}

func TestHandleIndex_LoadFailureLeavesWrapperEmpty(t *testing.T) {
	app, buf := newTestApp(t, true)

	resp, body := get(t, app, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<div id="wrapper"></div>`)
	assert.Equal(t, 1, strings.Count(buf.String(), `"level":"error"`))
}

func TestHandleSVG(t *testing.T) {
	app, _ := newTestApp(t, false)

	resp, body := get(t, app, "/chart.svg?width=800")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, body, `<svg xmlns="http://www.w3.org/2000/svg" width="720"`)
	assert.Contains(t, body, `class="tick"`)
}

func TestHandleSVG_LoadFailure(t *testing.T) {
	app, _ := newTestApp(t, true)

	resp, body := get(t, app, "/chart.svg")

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Failed to load weather data")
}

func TestHandlePNG(t *testing.T) {
	app, _ := newTestApp(t, false)

	resp, body := get(t, app, "/chart.png?width=640")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "\x89PNG\r\n\x1a\n"))
}

func TestHandlePNG_LoadFailure(t *testing.T) {
	app, _ := newTestApp(t, true)

	resp, _ := get(t, app, "/chart.png")

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestSwaggerDoc(t *testing.T) {
	app, _ := newTestApp(t, false)

	resp, body := get(t, app, "/swagger/doc.json")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"title": "Weather Chart"`)
	assert.Contains(t, body, `"/chart.svg"`)
}
