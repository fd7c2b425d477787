package httpserver

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"weather-chart/config"
	"weather-chart/pkg/logger"
)

func InitFiberServer(cnf *config.Config, l *logger.Logger) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:               cnf.App.Name,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ReadTimeout:           time.Duration(cnf.Server.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(cnf.Server.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(cnf.Server.IdleTimeout) * time.Second,
		DisableStartupMessage: cnf.IsProduction(),
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: !cnf.IsProduction(),
	}))
	s.Use(cors.New())
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}))
	s.Use(RequestLogger(l))

	return s
}

// RequestLogger logs method, path, status and duration of every request
// once it has been handled.
func RequestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		l.Info("request completed", map[string]any{
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
		})

		return err
	}
}
