// Package query describe las consultas al API de entidades del WMS como datos:
// entidad + filtros estilo Django (campo__operador=valor) + proyección values_list.
// No realiza I/O; el adaptador HTTP del WMS las ejecuta.
package query

import (
	"net/url"
	"strings"
	"time"
)

// Entidades del API del WMS.
const (
	EntityOrderDetail     = "order_dtl"
	EntityInventory       = "inventory"
	EntityMovementRequest = "movement_request_dtl"
	EntityHistory         = "inventory_history"
	EntityPurchaseOrder   = "purchase_order_hdr"
)

// Campos proyectados que consumen los agregadores.
const (
	FieldOrderNbr = "order_id__order_nbr"
	FieldItemID   = "item_id"
	FieldItemCode = "item_id__code"
	FieldOrdQty   = "ord_qty"
	FieldCurrQty  = "curr_qty"
	FieldReqQty   = "req_qty"

	HistItemCode = "item_code"
	HistQty      = "adj_qty"
	HistLPN      = "lpn_nbr"
	HistShipment = "shipment_nbr"
	HistOrder    = "order_nbr"
	HistPO       = "po_nbr"
	HistTS       = "create_ts"

	POFieldNbr          = "po_nbr"
	POFieldDeliveryDate = "delivery_date"
)

// Formatos de fecha aceptados por los filtros del WMS.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05Z"
)

// Filter par campo__operador=valor.
type Filter struct {
	Key   string
	Value string
}

// Query consulta a una entidad del WMS.
type Query struct {
	Entity  string
	Filters []Filter
	Fields  []string // values_list
}

// With devuelve una copia con un filtro adicional.
func (q Query) With(key, value string) Query {
	filters := make([]Filter, 0, len(q.Filters)+1)
	filters = append(filters, q.Filters...)
	q.Filters = append(filters, Filter{Key: key, Value: value})
	return q
}

// Get devuelve el valor del filtro key, o vacío.
func (q Query) Get(key string) string {
	for _, f := range q.Filters {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// Values codifica la consulta como query string, incluyendo values_list.
func (q Query) Values() url.Values {
	v := url.Values{}
	for _, f := range q.Filters {
		v.Set(f.Key, f.Value)
	}
	if len(q.Fields) > 0 {
		v.Set("values_list", strings.Join(q.Fields, ","))
	}
	return v
}

// Window intervalo de tiempo de una consulta de historial.
type Window struct {
	From time.Time
	To   time.Time
}

// FromTS / ToTS formatean los extremos en UTC con precisión de segundos y sufijo Z.
func (w Window) FromTS() string { return w.From.UTC().Format(TimestampLayout) }
func (w Window) ToTS() string   { return w.To.UTC().Format(TimestampLayout) }

// Contains indica si t cae en [From, To].
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}
