package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appFlagcfg "github.com/surpriz/hospitalidee-moderation/pkg/app/flagcfg"
)

type getFlagConfigHandler struct {
	logger  *logrus.Logger
	service *appFlagcfg.Service
}

func NewGetFlagConfigHandler(logger *logrus.Logger, service *appFlagcfg.Service) Handler {
	return &getFlagConfigHandler{logger: logger, service: service}
}

func (h *getFlagConfigHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":      "success",
		"flag_config": h.service.Current(),
	})
}
