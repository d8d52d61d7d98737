package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Moderation
	ModerateHandler Handler

	// Forbidden words
	AddForbiddenWordHandler    Handler
	RemoveForbiddenWordHandler Handler
	ListForbiddenWordsHandler  Handler

	// Flag configuration
	GetFlagConfigHandler    Handler
	UpdateFlagConfigHandler Handler

	// Misc
	GetVersionHandler Handler
}
