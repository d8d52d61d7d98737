package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appWordlist "github.com/surpriz/hospitalidee-moderation/pkg/app/wordlist"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain"
)

type addForbiddenWordRequest struct {
	Word string `json:"word"`
}

type addForbiddenWordHandler struct {
	logger  *logrus.Logger
	service *appWordlist.Service
}

func NewAddForbiddenWordHandler(logger *logrus.Logger, service *appWordlist.Service) Handler {
	return &addForbiddenWordHandler{logger: logger, service: service}
}

func (h *addForbiddenWordHandler) Handle(c *fiber.Ctx) error {
	var req addForbiddenWordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"error":  "invalid request body",
		})
	}

	outcome, err := h.service.Add(req.Word)
	if err != nil {
		if domain.IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error",
				"error":  err.Error(),
			})
		}
		h.logger.WithError(err).Error("failed to add forbidden word")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"error":  "internal server error",
		})
	}

	h.logger.WithField("word", req.Word).Info("forbidden word added")

	if outcome == domain.OutcomeApplied {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":             "warning",
			"message":            fmt.Sprintf("word %q added but the list could not be saved", req.Word),
			"current_dictionary": h.service.List(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":             "success",
		"message":            fmt.Sprintf("word %q added to the forbidden word list", req.Word),
		"current_dictionary": h.service.List(),
	})
}
