package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"

	_ "weather-chart/docs"
	"weather-chart/internal/chart"
	"weather-chart/internal/surface"
	"weather-chart/pkg/logger"
)

// Renderer appends a chart to a container; it reports failures only through
// its own logging.
type Renderer interface {
	Render(ctx context.Context, geometry chart.Geometry, container *surface.Node)
}

type RouterConfig struct {
	Title         string
	ViewportWidth float64
	Geometry      chart.GeometrySettings
}

type routes struct {
	renderer     Renderer
	geometry     chart.GeometrySettings
	defaultWidth float64
	title        string
	l            *logger.Logger
}

func NewRouter(
	app *fiber.App,
	renderer Renderer,
	cfg RouterConfig,
	l *logger.Logger,
) {
	r := &routes{
		renderer:     renderer,
		geometry:     cfg.Geometry,
		defaultWidth: cfg.ViewportWidth,
		title:        cfg.Title,
		l:            l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.SendString(doc)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// Chart routes
	app.Get("/", r.handleIndex)
	app.Get("/chart.svg", r.handleSVG)
	app.Get("/chart.png", r.handlePNG)
}
