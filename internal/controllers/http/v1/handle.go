package http

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"

	"weather-chart/internal/chart"
	"weather-chart/internal/surface"
)

const maxViewportWidth = 20000

var validate = validator.New()

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid width: must be a positive number"`
}

// chartQuery holds the query parameters shared by every chart route.
type chartQuery struct {
	Width float64 `validate:"gt=0,lte=20000"`
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<div id="wrapper">{{.Chart}}</div>
</body>
</html>
`))

type page struct {
	Title string
	Chart template.HTML
}

// viewport reads the viewport width once per page load.
func (r *routes) viewport(c *fiber.Ctx) (chart.Geometry, error) {
	width := r.defaultWidth
	if raw := c.Query("width"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return chart.Geometry{}, errors.Errorf("Invalid width format: %q", raw)
		}
		width = parsed
	}

	if err := chart.Validate(width); err != nil {
		return chart.Geometry{}, errors.Wrap(err, "Invalid width")
	}
	if err := validate.Struct(chartQuery{Width: width}); err != nil {
		return chart.Geometry{}, errors.Errorf("Invalid width: must not exceed %d", maxViewportWidth)
	}

	return chart.NewGeometry(width, r.geometry), nil
}

// render runs one page load and returns the container the chart was appended to.
func (r *routes) render(c *fiber.Ctx) (*surface.Node, error) {
	geometry, err := r.viewport(c)
	if err != nil {
		return nil, err
	}

	wrapper := surface.New("div").Attr("id", "wrapper")
	r.renderer.Render(c.UserContext(), geometry, wrapper)

	return wrapper, nil
}

// handleIndex godoc
// @Summary Chart page
// @Description Renders the HTML document with the temperature chart appended to #wrapper. When the data cannot be loaded the wrapper stays empty.
// @Tags Chart
// @Produce html
// @Param width query number false "Viewport width in pixels (default from configuration)" minimum(1) maximum(20000) example(1280)
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} ErrorResponse "Bad request - invalid width"
// @Router / [get]
func (r *routes) handleIndex(c *fiber.Ctx) error {
	wrapper, err := r.render(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	var chartMarkup string
	if children := wrapper.Children(); len(children) > 0 {
		chartMarkup = children[0].String()
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page{
		Title: r.title,
		Chart: template.HTML(chartMarkup),
	}); err != nil {
		r.l.Error(errors.Wrap(err, "execute page template"))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Failed to render page"})
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// handleSVG godoc
// @Summary Chart as SVG
// @Description Renders the temperature chart as a standalone SVG document.
// @Tags Chart
// @Produce image/svg+xml
// @Param width query number false "Viewport width in pixels (default from configuration)" minimum(1) maximum(20000) example(1280)
// @Success 200 {string} string "SVG document"
// @Failure 400 {object} ErrorResponse "Bad request - invalid width"
// @Failure 502 {object} ErrorResponse "Weather data could not be loaded"
// @Router /chart.svg [get]
func (r *routes) handleSVG(c *fiber.Ctx) error {
	wrapper, err := r.render(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	if wrapper.Empty() {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: "Failed to load weather data"})
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	if err := wrapper.Children()[0].WriteSVG(&buf); err != nil {
		r.l.Error(errors.Wrap(err, "write svg"))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Failed to render chart"})
	}

	c.Type("svg")
	return c.Send(buf.Bytes())
}

// handlePNG godoc
// @Summary Chart as PNG
// @Description Renders the temperature chart and rasterizes it to PNG.
// @Tags Chart
// @Produce image/png
// @Param width query number false "Viewport width in pixels (default from configuration)" minimum(1) maximum(20000) example(1280)
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} ErrorResponse "Bad request - invalid width"
// @Failure 502 {object} ErrorResponse "Weather data could not be loaded"
// @Router /chart.png [get]
func (r *routes) handlePNG(c *fiber.Ctx) error {
	wrapper, err := r.render(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	if wrapper.Empty() {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: "Failed to load weather data"})
	}

	var buf bytes.Buffer
	if err := surface.Rasterize(wrapper.Children()[0], gochart.PNG, &buf); err != nil {
		r.l.Error(errors.Wrap(err, "rasterize chart"))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Failed to render chart"})
	}

	c.Type("png")
	return c.Send(buf.Bytes())
}
