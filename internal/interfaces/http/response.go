package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-gateway/internal/application/dto"
	"github.com/jhoicas/wms-gateway/internal/domain"
)

// writeError aplana el error al sobre {status:"error", ...}. Siempre HTTP 200:
// el sistema que consume este servicio solo procesa respuestas 2xx.
func writeError(c *fiber.Ctx, err error) error {
	de := domain.AsError(err)
	c.Locals(LocalErrorKind, string(de.Kind))
	return c.Status(fiber.StatusOK).JSON(dto.ErrorResponse{
		Status:     dto.StatusError,
		Kind:       string(de.Kind),
		Message:    de.Message,
		HTTPStatus: de.HTTPStatus,
		Body:       de.Body,
	})
}
