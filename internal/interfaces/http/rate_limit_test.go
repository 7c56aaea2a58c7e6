package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/optica-pos/internal/interfaces/http"
	"github.com/jhoicas/optica-pos/pkg/logger"
)

func TestRateLimit_BloqueaTrasElLimite(t *testing.T) {
	l, err := apphttp.NewLoginLimiter("2-M")
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/login", apphttp.RateLimit(l), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
		resp.Body.Close()
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewLoginLimiter_FormatoInvalido(t *testing.T) {
	_, err := apphttp.NewLoginLimiter("diez por minuto")
	assert.Error(t, err)
}

func TestRequestLogger_AsignaYRespetaRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "caja-01")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "caja-01", resp.Header.Get("X-Request-ID"))
}
