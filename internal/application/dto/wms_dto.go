package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-gateway/internal/domain/entity"
)

// ── Consultas directas ────────────────────────────────────────────────────────

// LookupResponse respuesta de GET /getOrder, /getOnhand y /existMoveReq.
type LookupResponse struct {
	Status string       `json:"status"`
	NoData bool         `json:"noData"`
	Rows   []entity.Row `json:"rows"`
}

// ── Reposición ────────────────────────────────────────────────────────────────

// ReplenishmentRow demanda, stock en zona de picking y reposición ya pedida de un ítem.
type ReplenishmentRow struct {
	Item         string          `json:"item"`
	OrderedQty   decimal.Decimal `json:"ordered_qty"`
	OnhandQty    decimal.Decimal `json:"onhand_qty"`     // 0 si el ítem no tiene stock en la zona
	PendingMOQty decimal.Decimal `json:"pending_mo_qty"` // 0 si no hay movement requests abiertos
}

// ReplenishmentReport respuesta de GET /replenSummary. Filas ordenadas por ítem.
type ReplenishmentReport struct {
	Status   string             `json:"status"`
	FromDate string             `json:"from_date"` // mañana (hoy excluido)
	ToDate   string             `json:"to_date"`   // exclusivo
	Rows     []ReplenishmentRow `json:"rows"`
}

// ── KPIs ──────────────────────────────────────────────────────────────────────

// ShippingSummary métricas de despacho en la ventana.
type ShippingSummary struct {
	Events int             `json:"events"`
	Units  decimal.Decimal `json:"units"`
	Items  int             `json:"items"`
	LPNs   int             `json:"lpns"`
	Orders int             `json:"orders"`
}

// ReceivingSummary métricas de recepción en la ventana.
type ReceivingSummary struct {
	Events    int             `json:"events"`
	Units     decimal.Decimal `json:"units"`
	Items     int             `json:"items"`
	LPNs      int             `json:"lpns"`
	Shipments int             `json:"shipments"`
}

// ShippingKPI respuesta de GET /shippingKPI.
type ShippingKPI struct {
	Status   string          `json:"status"`
	FromDate string          `json:"from_date"`
	ToDate   string          `json:"to_date"`
	Summary  ShippingSummary `json:"summary"`
}

// ReceivingKPI respuesta de GET /receivingKPI.
type ReceivingKPI struct {
	Status   string           `json:"status"`
	FromDate string           `json:"from_date"`
	ToDate   string           `json:"to_date"`
	Summary  ReceivingSummary `json:"summary"`
}

// FlowSummary despacho y recepción de la misma ventana.
type FlowSummary struct {
	Shipping  ShippingSummary  `json:"shipping"`
	Receiving ReceivingSummary `json:"receiving"`
}

// FlowKPI respuesta de GET /flowKPI.
type FlowKPI struct {
	Status   string      `json:"status"`
	FromDate string      `json:"from_date"`
	ToDate   string      `json:"to_date"`
	Summary  FlowSummary `json:"summary"`
}

// OnTimeSummary recepciones a tiempo vs tarde contra la fecha de entrega de la OC.
type OnTimeSummary struct {
	Received  int             `json:"received"` // eventos con OC conocida
	OnTime    int             `json:"on_time"`
	Late      int             `json:"late"`
	OnTimePct decimal.Decimal `json:"on_time_pct"`
}

// OnTimeRow clasificación de un evento de recepción.
type OnTimeRow struct {
	PONbr      string `json:"po_nbr"`
	LPNNbr     string `json:"lpn_nbr"`
	ExpectedTS string `json:"expected_ts"`
	ActualTS   string `json:"actual_ts"`
	OnTime     bool   `json:"on_time"`
}

// OnTimeReceivingKPI respuesta de GET /onTimeReceivingKPI.
type OnTimeReceivingKPI struct {
	Status   string        `json:"status"`
	FromDate string        `json:"from_date"`
	ToDate   string        `json:"to_date"`
	Summary  OnTimeSummary `json:"summary"`
	Rows     []OnTimeRow   `json:"rows"`
}

// DockToStockSummary tiempo entre recepción (dock) y putaway (stock) por LPN.
type DockToStockSummary struct {
	ReceivedUnits decimal.Decimal `json:"received_units"`
	Shipments     int             `json:"shipments"`
	LPNs          int             `json:"lpns"`
	Samples       int             `json:"samples"`
	AvgMinutes    decimal.Decimal `json:"avg_dock_to_stock_minutes"`
}

// DockToStockKPI respuesta de GET /dockToStockKPI.
type DockToStockKPI struct {
	Status   string             `json:"status"`
	FromDate string             `json:"from_date"`
	ToDate   string             `json:"to_date"`
	Summary  DockToStockSummary `json:"summary"`
}
