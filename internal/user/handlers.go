package user

import (
	"errors"

	"backend-focusflow/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/me", authMiddleware, func(c *fiber.Ctx) error {
		profile, err := svc.Get(c.Context(), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return c.JSON(profile)
	})

	r.Put("/me/timezone", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Timezone string `json:"timezone"`
		}
		if err := c.BodyParser(&body); err != nil || body.Timezone == "" {
			return fiber.NewError(fiber.StatusBadRequest, "timezone required")
		}
		profile, err := svc.UpdateTimezone(c.Context(), auth.UserID(c), body.Timezone)
		if err != nil {
			if errors.Is(err, ErrUnknownTimezone) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"message": "timezone updated", "user": profile})
	})
}
