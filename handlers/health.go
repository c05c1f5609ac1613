package handlers

import (
	"github.com/genfuture/careers-api/database"
	"github.com/gofiber/fiber/v2"
)

// Liveness handles GET /healthz. Always OK while the process runs.
func Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Readiness handles GET /readyz. Reports not-ready until the database
// answers a ping.
func Readiness(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ready"})
	}
}
