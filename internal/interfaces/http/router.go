package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-gateway/internal/application/analytics"
	"github.com/jhoicas/wms-gateway/internal/application/inventory"
	"github.com/jhoicas/wms-gateway/internal/application/ports"
	"github.com/jhoicas/wms-gateway/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName         string
	WMS             config.WMSConfig
	DebugEnvEnabled bool

	Lookup        *inventory.LookupUseCase
	Replenishment *inventory.ReplenishmentUseCase
	KPI           *analytics.KPIUseCase
	PDF           ports.ReportPDFGenerator
}

// Router registra las rutas. Todas son GET y responden HTTP 200; los errores
// van en el sobre {status:"error", ...}.
func Router(app *fiber.App, deps RouterDeps) {
	system := NewSystemHandler(deps.AppName, deps.WMS)
	app.Get("/", system.Home)
	app.Get("/health", system.Health)
	if deps.DebugEnvEnabled {
		app.Get("/debug-env", system.DebugEnv)
	}

	// Consultas directas
	lookup := NewLookupHandler(deps.Lookup)
	app.Get("/getOrder", lookup.GetOrder)
	app.Get("/getOnhand", lookup.GetOnhand)
	app.Get("/existMoveReq", lookup.ExistMoveReq)

	// Reposición
	report := NewReportHandler(deps.Replenishment, deps.PDF)
	app.Get("/replenSummary", report.ReplenSummary)
	if deps.PDF != nil {
		app.Get("/replenSummary/pdf", report.ReplenSummaryPDF)
	}

	// KPIs
	kpi := NewKPIHandler(deps.KPI)
	app.Get("/shippingKPI", kpi.ShippingKPI)
	app.Get("/receivingKPI", kpi.ReceivingKPI)
	app.Get("/flowKPI", kpi.FlowKPI)
	app.Get("/onTimeReceivingKPI", kpi.OnTimeReceivingKPI)
	app.Get("/dockToStockKPI", kpi.DockToStockKPI)
}
