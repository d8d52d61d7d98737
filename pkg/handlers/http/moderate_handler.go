package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appModeration "github.com/surpriz/hospitalidee-moderation/pkg/app/moderation"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain/moderation"
)

type moderateRequest struct {
	Text      string  `json:"text"`
	Threshold float64 `json:"moderation_threshold"`
}

type moderateHandler struct {
	logger  *logrus.Logger
	service *appModeration.Service
}

func NewModerateHandler(logger *logrus.Logger, service *appModeration.Service) Handler {
	return &moderateHandler{logger: logger, service: service}
}

func (h *moderateHandler) Handle(c *fiber.Ctx) error {
	var req moderateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"error":  "invalid request body",
		})
	}

	h.logger.WithFields(logrus.Fields{
		"threshold":   req.Threshold,
		"text_length": len(req.Text),
	}).Info("moderation request received")

	result, err := h.service.Moderate(c.Context(), moderation.Request{
		Text:      req.Text,
		Threshold: req.Threshold,
	})
	if err != nil {
		if domain.IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error",
				"error":  err.Error(),
			})
		}
		h.logger.WithError(err).Error("moderation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"error":  "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":               "success",
		"original_text":        result.OriginalText,
		"moderated_text":       result.ModeratedText,
		"is_moderated":         result.IsModerated,
		"moderation_threshold": result.Threshold,
		"classification":       result.Classification,
		"moderation_details":   result.Provenance,
		"verdict":              result.Verdict,
	})
}
