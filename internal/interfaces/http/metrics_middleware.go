package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-pro/pkg/metrics"
)

// MetricsMiddleware cuenta cada petición atendida, etiquetada por método HTTP
// y código de respuesta. Debe registrarse antes que las rutas que debe cubrir.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		m.HTTPRequests.WithLabelValues(c.Method(), strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}
