package timer

import (
	"errors"

	"backend-focusflow/internal/auth"

	"github.com/gofiber/fiber/v2"
)

type sessionResponse struct {
	ActiveSession
	CurrentElapsedTime int `json:"currentElapsedTime"`
}

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		session, err := svc.Get(c.Context(), auth.UserID(c))
		if errors.Is(err, ErrNoActiveSession) {
			return c.JSON(nil)
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch active session")
		}
		return c.JSON(sessionResponse{
			ActiveSession:      session,
			CurrentElapsedTime: svc.ComputeElapsed(session),
		})
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			SessionType string `json:"sessionType"`
		}
		if err := c.BodyParser(&body); err != nil || body.SessionType == "" {
			return fiber.NewError(fiber.StatusBadRequest, "sessionType required")
		}
		session, err := svc.Replace(c.Context(), auth.UserID(c), body.SessionType)
		if errors.Is(err, ErrInvalidSessionType) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create active session")
		}
		return c.Status(fiber.StatusCreated).JSON(session)
	})

	r.Patch("/", authMiddleware, func(c *fiber.Ctx) error {
		var patch UpdateRequest
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		session, err := svc.Update(c.Context(), auth.UserID(c), patch)
		if errors.Is(err, ErrNoActiveSession) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		if errors.Is(err, ErrNegativeElapsed) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update active session")
		}
		return c.JSON(session)
	})

	r.Post("/stop", authMiddleware, func(c *fiber.Ctx) error {
		var body StopRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		elapsed, err := svc.StopAndArchive(c.Context(), auth.UserID(c), body.FinalElapsedTime)
		if errors.Is(err, ErrNoActiveSession) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to stop and save session")
		}
		return c.JSON(fiber.Map{
			"message":     "Session stopped and saved",
			"elapsedTime": elapsed,
		})
	})

	r.Delete("/", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.Remove(c.Context(), auth.UserID(c)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to remove active session")
		}
		return c.JSON(fiber.Map{"message": "Active session removed"})
	})
}
