package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alkharfy/cveeez-dash/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()

	app := fiber.New()
	app.Use(RequestLogger(log))
	app.Use(Authenticate(zap.NewNop().Sugar(), okResolver(entities.Principal{ID: "u1", Role: entities.RoleManager})))
	app.Get("/tasks", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer good-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	entries := logs.FilterMessage("http").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/tasks", fields["path"])
	require.Equal(t, int64(http.StatusOK), fields["status"])
	require.Equal(t, "u1", fields["user_id"])
}

func TestRequestLoggerOmitsUserWhenUngated(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()

	app := fiber.New()
	app.Use(RequestLogger(log))
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	entries := logs.FilterMessage("http").All()
	require.Len(t, entries, 1)
	require.NotContains(t, entries[0].ContextMap(), "user_id")
}
