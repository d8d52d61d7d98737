package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	appFlagcfg "github.com/surpriz/hospitalidee-moderation/pkg/app/flagcfg"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain/flagcfg"
)

type updateFlagConfigHandler struct {
	logger  *logrus.Logger
	service *appFlagcfg.Service
}

func NewUpdateFlagConfigHandler(logger *logrus.Logger, service *appFlagcfg.Service) Handler {
	return &updateFlagConfigHandler{logger: logger, service: service}
}

func (h *updateFlagConfigHandler) Handle(c *fiber.Ctx) error {
	// Decode through a map so absent fields stay nil and known fields
	// are type-checked: merge semantics, not replace.
	var fields map[string]interface{}
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"error":  "invalid request body",
		})
	}

	var update flagcfg.Update
	if err := mapstructure.Decode(fields, &update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"error":  "invalid flag config fields",
		})
	}

	outcome, err := h.service.Update(update)
	if err != nil {
		if domain.IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error",
				"error":  err.Error(),
			})
		}
		h.logger.WithError(err).Error("failed to update flag config")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"error":  "internal server error",
		})
	}

	h.logger.Info("flag config updated")

	status := "success"
	if outcome == domain.OutcomeApplied {
		status = "warning"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":      status,
		"flag_config": h.service.Current(),
	})
}
