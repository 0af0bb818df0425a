package settings

import (
	"errors"

	"backend-focusflow/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		ts, err := svc.Get(c.Context(), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch timer settings")
		}
		return c.JSON(ts)
	})

	r.Put("/", authMiddleware, func(c *fiber.Ctx) error {
		var ts TimerSettings
		if err := c.BodyParser(&ts); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		saved, err := svc.Upsert(c.Context(), auth.UserID(c), ts)
		if errors.Is(err, ErrInvalidDuration) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update timer settings")
		}
		return c.JSON(saved)
	})
}
