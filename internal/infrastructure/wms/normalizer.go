// Package wms implementa el adaptador HTTP hacia el API REST de entidades del
// WMS y la normalización de sus respuestas.
package wms

import (
	"github.com/bytedance/sonic"

	"github.com/jhoicas/wms-gateway/internal/domain/entity"
)

// jsonAPI decodifica números como json.Number para no perder precisión en cantidades.
var jsonAPI = sonic.Config{UseNumber: true}.Froze()

// Normalize convierte cualquier payload JSON ya decodificado en una secuencia de filas.
//
// Precedencia: string → vacío; lista → la lista; objeto con "results" lista →
// esa lista; objeto con "rows" lista → esa lista; otro objeto → una sola fila;
// cualquier otra forma → vacío. Nunca falla.
func Normalize(raw any) []entity.Row {
	switch v := raw.(type) {
	case string:
		return []entity.Row{}
	case []any:
		return rowsFrom(v)
	case map[string]any:
		if list, ok := v["results"].([]any); ok {
			return rowsFrom(list)
		}
		if list, ok := v["rows"].([]any); ok {
			return rowsFrom(list)
		}
		return []entity.Row{entity.Row(v)}
	default:
		return []entity.Row{}
	}
}

// NormalizeBody decodifica body y lo normaliza. JSON inválido → vacío.
func NormalizeBody(body []byte) []entity.Row {
	raw, err := decode(body)
	if err != nil {
		return []entity.Row{}
	}
	return Normalize(raw)
}

func decode(body []byte) (any, error) {
	var raw any
	if err := jsonAPI.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// rowsFrom conserva el orden; los elementos que no son objetos se descartan.
func rowsFrom(list []any) []entity.Row {
	rows := make([]entity.Row, 0, len(list))
	for _, el := range list {
		if m, ok := el.(map[string]any); ok {
			rows = append(rows, entity.Row(m))
		}
	}
	return rows
}
