package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sales-api/internal/application/dto"
	"github.com/jhoicas/Sales-api/internal/domain"
)

// ErrorHandler recibe los errores que los handlers no respondieron.
// Los *fiber.Error conservan su status; todo lo demás es 500. El log lo escribe RequestLogger.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := strings.ToUpper(strings.ReplaceAll(http.StatusText(fe.Code), " ", "_"))
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}

		resp := dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
		switch {
		case errors.Is(err, domain.ErrConcurrencyConflict):
			resp = dto.ErrorResponse{Code: "CONCURRENCY_CONFLICT", Message: err.Error()}
		case errors.Is(err, domain.ErrDanglingReference):
			resp = dto.ErrorResponse{Code: "DANGLING_REFERENCE", Message: err.Error()}
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}
