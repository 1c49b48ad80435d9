package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-gateway/internal/application/dto"
	"github.com/jhoicas/wms-gateway/pkg/config"
)

// SystemHandler sondeos y diagnóstico de configuración.
type SystemHandler struct {
	appName string
	wms     config.WMSConfig
}

// NewSystemHandler construye el handler.
func NewSystemHandler(appName string, wms config.WMSConfig) *SystemHandler {
	return &SystemHandler{appName: appName, wms: wms}
}

// Home GET /
func (h *SystemHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": dto.StatusOK, "message": "wrapper running"})
}

// Health GET /health
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": dto.StatusOK, "service": h.appName})
}

// DebugEnv GET /debug-env: conexión al WMS configurada, con la contraseña enmascarada.
func (h *SystemHandler) DebugEnv(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"WMS_BASE_URL": h.wms.BaseURL,
		"WMS_USER":     h.wms.User,
		"WMS_PASSWORD": nullIfEmpty(h.wms.MaskedPassword()),
	})
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
