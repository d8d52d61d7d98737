package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handlers "github.com/surpriz/hospitalidee-moderation/pkg/handlers/http"
	"github.com/surpriz/hospitalidee-moderation/pkg/middleware"
)

type okHandler struct{}

func (okHandler) Handle(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func fullHandlerTransport() handlers.HandlerTransport {
	return handlers.HandlerTransport{
		ModerateHandler:            okHandler{},
		AddForbiddenWordHandler:    okHandler{},
		RemoveForbiddenWordHandler: okHandler{},
		ListForbiddenWordsHandler:  okHandler{},
		GetFlagConfigHandler:       okHandler{},
		UpdateFlagConfigHandler:    okHandler{},
		GetVersionHandler:          okHandler{},
	}
}

func TestModerationRouter_BuildRoutes(t *testing.T) {
	middlewareTransport := middleware.Transport{
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
	}
	r := NewModerationRouter(middlewareTransport, fullHandlerTransport())

	app := fiber.New()
	require.NoError(t, r.BuildRoutes(app))

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/version"},
		{http.MethodPost, "/api/v1/moderation"},
		{http.MethodPost, "/api/v1/forbidden-words"},
		{http.MethodGet, "/api/v1/forbidden-words"},
		{http.MethodDelete, "/api/v1/forbidden-words/merde"},
		{http.MethodGet, "/api/v1/flag-config"},
		{http.MethodPut, "/api/v1/flag-config"},
	}

	for _, route := range routes {
		resp, err := app.Test(httptest.NewRequest(route.method, route.path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "%s %s", route.method, route.path)
	}
}

func TestModerationRouter_RequestIDPropagated(t *testing.T) {
	middlewareTransport := middleware.Transport{
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
	}
	r := NewModerationRouter(middlewareTransport, fullHandlerTransport())

	app := fiber.New()
	require.NoError(t, r.BuildRoutes(app))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/moderation", nil)
	req.Header.Set("X-Request-Id", "req-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-42", resp.Header.Get("X-Request-Id"))

	// A missing request id is generated.
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/moderation", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestModerationRouter_MissingHandler(t *testing.T) {
	transport := fullHandlerTransport()
	transport.ModerateHandler = nil

	r := NewModerationRouter(middleware.Transport{}, transport)
	err := r.BuildRoutes(fiber.New())
	assert.ErrorIs(t, err, ErrMissingHandler)
}
