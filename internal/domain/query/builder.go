package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/wms-gateway/internal/domain"
)

// Codes códigos fijos del esquema del WMS usados en los filtros.
type Codes struct {
	OpenOrderStatus  string   // status_id de pedido abierto
	ReplenZone       string   // zona de reposición (picking face)
	OpenMoveStatuses []string // status_id de movement requests pendientes
	CompanyCode      string   // vacío = no filtra por compañía
	ActivityShipped  string   // history_activity_id de despacho
	ActivityReceived string   // history_activity_id de recepción
	ActivityPutaway  string   // history_activity_id de putaway completado
}

// DefaultCodes valores por defecto del tenant.
func DefaultCodes() Codes {
	return Codes{
		OpenOrderStatus:  "0",
		ReplenZone:       "PFACE",
		OpenMoveStatuses: []string{"0", "10"},
		ActivityShipped:  "3",
		ActivityReceived: "1",
		ActivityPutaway:  "12",
	}
}

// Merge sobreescribe los códigos con los valores no vacíos de o.
func (c Codes) Merge(o Codes) Codes {
	if o.OpenOrderStatus != "" {
		c.OpenOrderStatus = o.OpenOrderStatus
	}
	if o.ReplenZone != "" {
		c.ReplenZone = o.ReplenZone
	}
	if len(o.OpenMoveStatuses) > 0 {
		c.OpenMoveStatuses = o.OpenMoveStatuses
	}
	if o.CompanyCode != "" {
		c.CompanyCode = o.CompanyCode
	}
	if o.ActivityShipped != "" {
		c.ActivityShipped = o.ActivityShipped
	}
	if o.ActivityReceived != "" {
		c.ActivityReceived = o.ActivityReceived
	}
	if o.ActivityPutaway != "" {
		c.ActivityPutaway = o.ActivityPutaway
	}
	return c
}

// Activity tipo de evento del historial de inventario.
type Activity int

const (
	ActivityShipped Activity = iota
	ActivityReceived
	ActivityPutaway
)

// Builder construye las consultas a partir de parámetros ya validados.
type Builder struct {
	codes Codes
}

// NewBuilder construye el builder con los códigos del tenant.
func NewBuilder(codes Codes) *Builder {
	return &Builder{codes: codes}
}

// Codes devuelve los códigos en uso.
func (b *Builder) Codes() Codes { return b.codes }

// Orders líneas de pedidos abiertos con fecha de despacho en [from, to).
func (b *Builder) Orders(p OrdersParams) Query {
	return Query{
		Entity: EntityOrderDetail,
		Filters: []Filter{
			{"order_id__req_ship_date__gte", p.FromDate},
			{"order_id__req_ship_date__lt", p.ToDate},
			{"order_id__facility_id__code", p.Facility},
			{"order_id__status_id", b.codes.OpenOrderStatus},
		},
		Fields: []string{FieldOrderNbr, FieldItemID, FieldItemCode, FieldOrdQty},
	}
}

// OnHand cantidad actual en la zona de reposición para los ítems dados.
func (b *Builder) OnHand(p ItemsParams) Query {
	return Query{
		Entity: EntityInventory,
		Filters: []Filter{
			{"item_id__code__in", strings.Join(p.Items, ",")},
			{"container_id__curr_location_id__replenishment_zone_id__code", b.codes.ReplenZone},
			{"facility_id__code", p.Facility},
		},
		Fields: []string{FieldItemCode, FieldCurrQty},
	}
}

// MovementRequests movement requests pendientes hacia la zona de reposición.
func (b *Builder) MovementRequests(p ItemsParams) Query {
	return Query{
		Entity: EntityMovementRequest,
		Filters: []Filter{
			{"item_id__code__in", strings.Join(p.Items, ",")},
			{"replenishment_zone_id__code", b.codes.ReplenZone},
			{"status_id__in", strings.Join(b.codes.OpenMoveStatuses, ",")},
			{"facility_id__code", p.Facility},
		},
		Fields: []string{FieldItemCode, FieldReqQty},
	}
}

// History eventos del historial de inventario de una actividad en la ventana dada.
// lpns, si no es vacío, restringe a esos contenedores.
func (b *Builder) History(a Activity, facility string, w Window, lpns ...string) Query {
	var (
		code   string
		fields []string
	)
	switch a {
	case ActivityShipped:
		code = b.codes.ActivityShipped
		fields = []string{HistItemCode, HistQty, HistLPN, HistOrder, HistTS}
	case ActivityReceived:
		code = b.codes.ActivityReceived
		fields = []string{HistItemCode, HistQty, HistLPN, HistShipment, HistPO, HistTS}
	default:
		code = b.codes.ActivityPutaway
		fields = []string{HistLPN, HistTS}
	}

	q := Query{
		Entity: EntityHistory,
		Filters: []Filter{
			{"history_activity_id", code},
			{"facility_id__code", facility},
			{"create_ts__gte", w.FromTS()},
			{"create_ts__lte", w.ToTS()},
		},
		Fields: fields,
	}
	if b.codes.CompanyCode != "" {
		q = q.With("company_id__code", b.codes.CompanyCode)
	}
	if len(lpns) > 0 {
		q = q.With("lpn_nbr__in", strings.Join(lpns, ","))
	}
	return q
}

// PurchaseOrders cabeceras de OC con fecha de entrega en [from, to] (fechas YYYY-MM-DD).
func (b *Builder) PurchaseOrders(facility string, from, to time.Time) Query {
	q := Query{
		Entity: EntityPurchaseOrder,
		Filters: []Filter{
			{"delivery_date__gte", from.UTC().Format(DateLayout)},
			{"delivery_date__lte", to.UTC().Format(DateLayout)},
			{"facility_id__code", facility},
		},
		Fields: []string{POFieldNbr, POFieldDeliveryDate},
	}
	if b.codes.CompanyCode != "" {
		q = q.With("company_id__code", b.codes.CompanyCode)
	}
	return q
}

// ── Parámetros validados ──────────────────────────────────────────────────────

// OrdersParams parámetros de GET /getOrder.
type OrdersParams struct {
	FromDate string
	ToDate   string
	Facility string
}

// ItemsParams parámetros de GET /getOnhand y GET /existMoveReq.
type ItemsParams struct {
	Items    []string
	Facility string
}

// WindowParams parámetros de los reportes por ventana de días.
type WindowParams struct {
	Days     int
	Facility string
}

// ParseOrders valida from_date, to_date y facility_code.
func ParseOrders(fromDate, toDate, facility string) (OrdersParams, error) {
	fromDate, toDate, facility = strings.TrimSpace(fromDate), strings.TrimSpace(toDate), strings.TrimSpace(facility)
	if fromDate == "" || toDate == "" || facility == "" {
		return OrdersParams{}, domain.Validation("Missing required params: from_date, to_date, facility_code")
	}
	from, err := time.Parse(DateLayout, fromDate)
	if err != nil {
		return OrdersParams{}, domain.Validation("from_date must be YYYY-MM-DD, got %q", fromDate)
	}
	to, err := time.Parse(DateLayout, toDate)
	if err != nil {
		return OrdersParams{}, domain.Validation("to_date must be YYYY-MM-DD, got %q", toDate)
	}
	if !to.After(from) {
		return OrdersParams{}, domain.Validation("to_date must be after from_date")
	}
	return OrdersParams{FromDate: fromDate, ToDate: toDate, Facility: facility}, nil
}

// ParseItems valida la lista de ítems separada por comas y la facility.
func ParseItems(items, facility string) (ItemsParams, error) {
	facility = strings.TrimSpace(facility)
	list := SplitItems(items)
	if len(list) == 0 || facility == "" {
		return ItemsParams{}, domain.Validation("Missing required params: items, facility")
	}
	return ItemsParams{Items: list, Facility: facility}, nil
}

// MaxWindowDays límite superior de days en reportes y KPIs.
const MaxWindowDays = 3650

// ParseWindow valida days (entero entre 1 y MaxWindowDays) y facility.
func ParseWindow(days, facility string) (WindowParams, error) {
	days, facility = strings.TrimSpace(days), strings.TrimSpace(facility)
	if days == "" || facility == "" {
		return WindowParams{}, domain.Validation("Missing required params: days, facility")
	}
	n, err := strconv.Atoi(days)
	if err != nil {
		return WindowParams{}, domain.Validation("days must be an integer, got %q", days)
	}
	if n < 1 {
		return WindowParams{}, domain.Validation("days must be >= 1, got %d", n)
	}
	if n > MaxWindowDays {
		return WindowParams{}, domain.Validation("days must be <= %d, got %d", MaxWindowDays, n)
	}
	return WindowParams{Days: n, Facility: facility}, nil
}

// SplitItems separa por comas, recorta espacios, descarta vacíos y duplicados
// conservando el orden de aparición.
func SplitItems(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
