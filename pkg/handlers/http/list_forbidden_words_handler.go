package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appWordlist "github.com/surpriz/hospitalidee-moderation/pkg/app/wordlist"
)

type listForbiddenWordsHandler struct {
	logger  *logrus.Logger
	service *appWordlist.Service
}

func NewListForbiddenWordsHandler(logger *logrus.Logger, service *appWordlist.Service) Handler {
	return &listForbiddenWordsHandler{logger: logger, service: service}
}

func (h *listForbiddenWordsHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":          "success",
		"forbidden_words": h.service.List(),
	})
}
