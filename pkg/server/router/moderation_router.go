package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	handlers "github.com/surpriz/hospitalidee-moderation/pkg/handlers/http"
	"github.com/surpriz/hospitalidee-moderation/pkg/middleware"
)

var ErrMissingHandler = errors.New("handler transport is incomplete")

type moderationRouter struct {
	middlewareTransport middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewModerationRouter(
	middlewareTransport middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &moderationRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *moderationRouter) BuildRoutes(router *fiber.App) error {
	t := r.handlerTransport
	if t.ModerateHandler == nil ||
		t.AddForbiddenWordHandler == nil ||
		t.RemoveForbiddenWordHandler == nil ||
		t.ListForbiddenWordsHandler == nil ||
		t.GetFlagConfigHandler == nil ||
		t.UpdateFlagConfigHandler == nil ||
		t.GetVersionHandler == nil {
		return ErrMissingHandler
	}

	router.Get("/version", t.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		if r.middlewareTransport.RequestIDMiddleware != nil {
			v1.Use(r.middlewareTransport.RequestIDMiddleware.Middleware())
		}
		if r.middlewareTransport.MetricsMiddleware != nil {
			v1.Use(r.middlewareTransport.MetricsMiddleware.Middleware())
		}

		v1.Post("/moderation", t.ModerateHandler.Handle)

		words := v1.Group("/forbidden-words")
		{
			words.Post("", t.AddForbiddenWordHandler.Handle)
			words.Get("", t.ListForbiddenWordsHandler.Handle)
			words.Delete("/:word", t.RemoveForbiddenWordHandler.Handle)
		}

		flagConfig := v1.Group("/flag-config")
		{
			flagConfig.Get("", t.GetFlagConfigHandler.Handle)
			flagConfig.Put("", t.UpdateFlagConfigHandler.Handle)
		}
	}

	return nil
}
