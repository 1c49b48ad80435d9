package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-gateway/internal/application/analytics"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
)

// KPIHandler KPIs de almacén por ventana de días.
type KPIHandler struct {
	uc *analytics.KPIUseCase
}

// NewKPIHandler construye el handler.
func NewKPIHandler(uc *analytics.KPIUseCase) *KPIHandler {
	return &KPIHandler{uc: uc}
}

// windowed valida days/facility y ejecuta fn; cualquier error se aplana al sobre.
func windowed[T any](fn func(ctx context.Context, p query.WindowParams) (T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := query.ParseWindow(c.Query("days"), c.Query("facility"))
		if err != nil {
			return writeError(c, err)
		}
		res, err := fn(c.UserContext(), p)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(res)
	}
}

// ShippingKPI godoc
// @Summary      KPI de despacho de los últimos N días
// @Tags         kpi
// @Produce      json
// @Param        days      query  int     true  "Ventana en días (>= 1)"
// @Param        facility  query  string  true  "Código de facility"
// @Success      200  {object}  dto.ShippingKPI
// @Router       /shippingKPI [get]
func (h *KPIHandler) ShippingKPI(c *fiber.Ctx) error {
	return windowed(h.uc.Shipping)(c)
}

// ReceivingKPI godoc
// @Summary      KPI de recepción de los últimos N días
// @Tags         kpi
// @Produce      json
// @Param        days      query  int     true  "Ventana en días (>= 1)"
// @Param        facility  query  string  true  "Código de facility"
// @Success      200  {object}  dto.ReceivingKPI
// @Router       /receivingKPI [get]
func (h *KPIHandler) ReceivingKPI(c *fiber.Ctx) error {
	return windowed(h.uc.Receiving)(c)
}

// FlowKPI godoc
// @Summary      Despacho y recepción de la misma ventana (consultas en paralelo)
// @Tags         kpi
// @Produce      json
// @Param        days      query  int     true  "Ventana en días (>= 1)"
// @Param        facility  query  string  true  "Código de facility"
// @Success      200  {object}  dto.FlowKPI
// @Router       /flowKPI [get]
func (h *KPIHandler) FlowKPI(c *fiber.Ctx) error {
	return windowed(h.uc.Flow)(c)
}

// OnTimeReceivingKPI godoc
// @Summary      Recepciones a tiempo contra la fecha de entrega de la OC
// @Tags         kpi
// @Produce      json
// @Param        days      query  int     true  "Ventana en días (>= 1)"
// @Param        facility  query  string  true  "Código de facility"
// @Success      200  {object}  dto.OnTimeReceivingKPI
// @Router       /onTimeReceivingKPI [get]
func (h *KPIHandler) OnTimeReceivingKPI(c *fiber.Ctx) error {
	return windowed(h.uc.OnTimeReceiving)(c)
}

// DockToStockKPI godoc
// @Summary      Minutos promedio entre recepción y putaway por LPN
// @Tags         kpi
// @Produce      json
// @Param        days      query  int     true  "Ventana en días (>= 1)"
// @Param        facility  query  string  true  "Código de facility"
// @Success      200  {object}  dto.DockToStockKPI
// @Router       /dockToStockKPI [get]
func (h *KPIHandler) DockToStockKPI(c *fiber.Ctx) error {
	return windowed(h.uc.DockToStock)(c)
}
