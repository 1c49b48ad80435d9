package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-gateway/internal/domain/entity"
)

// SumBy agrupa rows por keyField y suma qtyField. Las claves repetidas se suman,
// nunca se sobreescriben; las filas sin clave se ignoran.
func SumBy(rows []entity.Row, keyField, qtyField string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, r := range rows {
		key := r.String(keyField)
		if key == "" {
			continue
		}
		out[key] = out[key].Add(r.Decimal(qtyField))
	}
	return out
}

// SumAbs suma el valor absoluto de qtyField; los ajustes de salida vienen negativos.
func SumAbs(rows []entity.Row, qtyField string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Decimal(qtyField).Abs())
	}
	return total
}

// Distinct devuelve los valores no vacíos distintos de field, ordenados.
func Distinct(rows []entity.Row, field string) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		if v := r.String(field); v != "" {
			seen[v] = struct{}{}
		}
	}
	return SortedKeys(seen)
}

// SortedKeys claves de m en orden ascendente.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EarliestBy primer timestamp de tsField por cada valor de keyField.
// Filas sin clave o con timestamp ilegible se ignoran.
func EarliestBy(rows []entity.Row, keyField, tsField string) map[string]time.Time {
	out := make(map[string]time.Time)
	for _, r := range rows {
		key := r.String(keyField)
		if key == "" {
			continue
		}
		ts, ok := r.Time(tsField)
		if !ok {
			continue
		}
		if cur, seen := out[key]; !seen || ts.Before(cur) {
			out[key] = ts
		}
	}
	return out
}

// Average media aritmética redondeada a dos decimales; cero sin muestras.
func Average(samples []decimal.Decimal) decimal.Decimal {
	if len(samples) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(decimal.Zero, samples...).
		Div(decimal.NewFromInt(int64(len(samples)))).
		Round(2)
}

// Percent part/total*100 redondeado a dos decimales; cero si total no es positivo.
func Percent(part, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}
