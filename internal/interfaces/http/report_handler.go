package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-gateway/internal/application/inventory"
	"github.com/jhoicas/wms-gateway/internal/application/ports"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
)

// ReportHandler resumen de reposición en JSON y PDF.
type ReportHandler struct {
	uc  *inventory.ReplenishmentUseCase
	pdf ports.ReportPDFGenerator
}

// NewReportHandler construye el handler. pdf puede ser nil si no se expone la exportación.
func NewReportHandler(uc *inventory.ReplenishmentUseCase, pdf ports.ReportPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// ReplenSummary godoc
// @Summary      Resumen de reposición: demanda vs stock en picking vs reposición pedida
// @Description  Demanda de pedidos con despacho en [mañana, mañana+days), cruzada con el
//
//	stock de la zona de reposición y los movement requests abiertos.
//
// @Tags         reports
// @Produce      json
// @Param        days      query  int     true  "Días hacia adelante (>= 1)"
// @Param        facility  query  string  true  "Código de facility"
// @Success      200  {object}  dto.ReplenishmentReport
// @Router       /replenSummary [get]
func (h *ReportHandler) ReplenSummary(c *fiber.Ctx) error {
	p, err := query.ParseWindow(c.Query("days"), c.Query("facility"))
	if err != nil {
		return writeError(c, err)
	}
	report, err := h.uc.Summary(c.UserContext(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// ReplenSummaryPDF godoc
// @Summary      Resumen de reposición en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        days      query  int     true  "Días hacia adelante (>= 1)"
// @Param        facility  query  string  true  "Código de facility"
// @Success      200  {file}  binary
// @Router       /replenSummary/pdf [get]
func (h *ReportHandler) ReplenSummaryPDF(c *fiber.Ctx) error {
	p, err := query.ParseWindow(c.Query("days"), c.Query("facility"))
	if err != nil {
		return writeError(c, err)
	}
	report, err := h.uc.Summary(c.UserContext(), p)
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.pdf.ReplenishmentPDF(c.UserContext(), p.Facility, report)
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(
		`inline; filename="replen_%s_%s.pdf"`, p.Facility, report.FromDate))
	return c.Send(doc)
}
