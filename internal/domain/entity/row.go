package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row registro devuelto por el WMS: nombre de campo → valor escalar
// (string, número o null). Los nombres los define el WMS según el values_list
// pedido, ej. item_id__code, ord_qty, curr_qty, create_ts.
type Row map[string]any

// String devuelve el campo como texto sin espacios; vacío si no existe o es null.
func (r Row) String(field string) string {
	switch v := r[field].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return decimal.NewFromFloat(v).String()
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// Decimal devuelve el campo como cantidad. Cualquier fallo de parseo cuenta como cero.
func (r Row) Decimal(field string) decimal.Decimal {
	switch v := r[field].(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// timeLayouts formatos de fecha/hora que devuelve el WMS según la entidad.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time parsea el campo como instante. Los valores sin zona se interpretan en UTC.
// ok es false si el campo falta o no tiene un formato reconocido.
func (r Row) Time(field string) (t time.Time, ok bool) {
	return ParseTimestamp(r.String(field))
}

// ParseTimestamp parsea un timestamp del WMS probando los formatos conocidos.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
