package stats

import (
	"backend-focusflow/internal/archive"
	"backend-focusflow/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, users archive.UserTimezones, authMiddleware fiber.Handler) {
	r.Get("/today", authMiddleware, func(c *fiber.Ctx) error {
		userID := auth.UserID(c)
		loc := archive.ResolveLocation(c, users, userID)

		summary, err := svc.Today(c.Context(), userID, loc)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch today's stats")
		}
		return c.JSON(summary)
	})

	r.Get("/weekly", authMiddleware, func(c *fiber.Ctx) error {
		userID := auth.UserID(c)
		loc := archive.ResolveLocation(c, users, userID)

		totals, err := svc.Weekly(c.Context(), userID, loc)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weekly stats")
		}
		return c.JSON(totals)
	})
}
