package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/warehouse-pro/internal/interfaces/http"
	"github.com/tu-usuario/warehouse-pro/pkg/metrics"
)

func TestMetricsMiddleware_CuentaPorMetodoYCodigo(t *testing.T) {
	m := metrics.New()

	app := fiber.New()
	app.Use(apphttp.MetricsMiddleware(m))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/crear", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/crear", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "200")),
		"dos GET exitosos deben contarse bajo GET/200")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "201")),
		"el POST debe contarse bajo POST/201")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("DELETE", "200")),
		"combinaciones no vistas quedan en cero")
}
