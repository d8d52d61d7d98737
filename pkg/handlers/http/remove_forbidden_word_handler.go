package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appWordlist "github.com/surpriz/hospitalidee-moderation/pkg/app/wordlist"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain"
)

type removeForbiddenWordHandler struct {
	logger  *logrus.Logger
	service *appWordlist.Service
}

func NewRemoveForbiddenWordHandler(logger *logrus.Logger, service *appWordlist.Service) Handler {
	return &removeForbiddenWordHandler{logger: logger, service: service}
}

func (h *removeForbiddenWordHandler) Handle(c *fiber.Ctx) error {
	word := c.Params("word")

	outcome, err := h.service.Remove(word)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status": "error",
				"error":  err.Error(),
			})
		}
		if domain.IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error",
				"error":  err.Error(),
			})
		}
		h.logger.WithError(err).Error("failed to remove forbidden word")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"error":  "internal server error",
		})
	}

	h.logger.WithField("word", word).Info("forbidden word removed")

	if outcome == domain.OutcomeApplied {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":             "warning",
			"message":            fmt.Sprintf("word %q removed but the list could not be saved", word),
			"current_dictionary": h.service.List(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":             "success",
		"message":            fmt.Sprintf("word %q removed from the forbidden word list", word),
		"current_dictionary": h.service.List(),
	})
}
