package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-gateway/internal/application/inventory"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
)

// LookupHandler consultas directas al WMS (pedidos, stock, movement requests).
type LookupHandler struct {
	uc *inventory.LookupUseCase
}

// NewLookupHandler construye el handler.
func NewLookupHandler(uc *inventory.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// GetOrder godoc
// @Summary      Líneas de pedidos abiertos por fecha de despacho
// @Tags         wms
// @Produce      json
// @Param        from_date      query  string  true  "Inicio inclusivo (YYYY-MM-DD)"
// @Param        to_date        query  string  true  "Fin exclusivo (YYYY-MM-DD)"
// @Param        facility_code  query  string  true  "Código de facility"
// @Success      200  {object}  dto.LookupResponse
// @Router       /getOrder [get]
func (h *LookupHandler) GetOrder(c *fiber.Ctx) error {
	p, err := query.ParseOrders(c.Query("from_date"), c.Query("to_date"), c.Query("facility_code"))
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.Orders(c.UserContext(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// GetOnhand godoc
// @Summary      Stock en la zona de reposición por ítem
// @Tags         wms
// @Produce      json
// @Param        items     query  string  true  "Códigos de ítem separados por coma"
// @Param        facility  query  string  true  "Código de facility"
// @Success      200  {object}  dto.LookupResponse
// @Router       /getOnhand [get]
func (h *LookupHandler) GetOnhand(c *fiber.Ctx) error {
	p, err := query.ParseItems(c.Query("items"), c.Query("facility"))
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.OnHand(c.UserContext(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// ExistMoveReq godoc
// @Summary      Movement requests abiertos hacia la zona de reposición
// @Tags         wms
// @Produce      json
// @Param        items     query  string  true  "Códigos de ítem separados por coma"
// @Param        facility  query  string  true  "Código de facility"
// @Success      200  {object}  dto.LookupResponse
// @Router       /existMoveReq [get]
func (h *LookupHandler) ExistMoveReq(c *fiber.Ctx) error {
	p, err := query.ParseItems(c.Query("items"), c.Query("facility"))
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.MovementRequests(c.UserContext(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}
