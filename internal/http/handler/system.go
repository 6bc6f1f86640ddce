package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"doclib/internal/service"
)

// Pinger reports whether the persistence backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck checks backend connectivity.
// @Summary Readiness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(p Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RecentActivity godoc
// @Summary Most recent activity entries
// @Tags activity
// @Produce json
// @Param limit query int false "Maximum entries (default 20)"
// @Success 200 {array} model.ActivityLogEntry
// @Router /activity [get]
func RecentActivity(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", service.DefaultActivityPage)
		if limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		res, err := svc.RecentActivity(c.UserContext(), limit)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(res)
	}
}

// SearchUsers godoc
// @Summary Search the user directory
// @Tags users
// @Produce json
// @Param q query string false "Matched against name, email and department"
// @Success 200 {array} model.User
// @Router /users [get]
func SearchUsers(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.SearchUsers(c.UserContext(), c.Query("q"))
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(res)
	}
}

// Reset godoc
// @Summary Restore the demo dataset
// @Tags system
// @Success 204
// @Router /reset [post]
func Reset(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Reset(c.UserContext()); err != nil {
			return writeDomainError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
