package archive

import (
	"context"
	"errors"
	"log"
	"time"

	"backend-focusflow/internal/auth"
	"backend-focusflow/internal/shared/civil"

	"github.com/gofiber/fiber/v2"
)

// UserTimezones supplies a user's stored timezone preference, used when
// the request carries none. Satisfied by the user service.
type UserTimezones interface {
	Timezone(ctx context.Context, userID string) string
}

func RegisterRoutes(r fiber.Router, svc *Service, users UserTimezones, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		ws, err := svc.Create(c.Context(), auth.UserID(c), req)
		if errors.Is(err, ErrInvalidSessionType) || errors.Is(err, ErrNegativeDuration) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create work session")
		}
		return c.Status(fiber.StatusCreated).JSON(ws)
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		sessions, err := svc.Recent(c.Context(), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch work sessions")
		}
		return c.JSON(sessions)
	})

	r.Get("/by-date", authMiddleware, func(c *fiber.Ctx) error {
		date := c.Query("date")
		if date == "" {
			return fiber.NewError(fiber.StatusBadRequest, "date parameter is required")
		}
		userID := auth.UserID(c)
		loc := ResolveLocation(c, users, userID)

		sessions, err := svc.ByDate(c.Context(), userID, loc, date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid date")
		}
		return c.JSON(sessions)
	})

	r.Get("/range", authMiddleware, func(c *fiber.Ctx) error {
		start, err := time.Parse(time.RFC3339, c.Query("start"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "start parameter is required")
		}
		end, err := time.Parse(time.RFC3339, c.Query("end"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "end parameter is required")
		}

		sessions, err := svc.ByWindow(c.Context(), auth.UserID(c), civil.Window{Start: start, End: end})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch work sessions")
		}
		return c.JSON(sessions)
	})
}

// ResolveLocation applies the timezone precedence: explicit query
// parameter, then the user's stored preference, then UTC. Unresolvable
// names downgrade to UTC with a log line.
func ResolveLocation(c *fiber.Ctx, users UserTimezones, userID string) *time.Location {
	name := c.Query("timezone")
	if name == "" && users != nil {
		name = users.Timezone(c.Context(), userID)
	}
	loc, ok := civil.Resolve(name)
	if !ok && name != "" {
		log.Printf("archive: unknown timezone %q for user %s, using UTC", name, userID)
	}
	return loc
}
