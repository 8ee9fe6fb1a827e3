package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sales-api/internal/application/dto"
)

// Pinger lo implementa *pgxpool.Pool. nil significa almacenamiento en memoria.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler GET /health: 200 si la base responde, 503 si no.
func HealthHandler(service string, db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "unavailable", Service: service})
			}
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Service: service})
	}
}
