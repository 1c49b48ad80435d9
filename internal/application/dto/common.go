package dto

import "github.com/shopspring/decimal"

func init() {
	// Las cantidades viajan como números JSON ({"ordered_qty": 8}), no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Estados del sobre de respuesta.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusOK      = "ok"
)

// ErrorResponse cuerpo de error. Siempre se responde con HTTP 200: el cliente
// que consume este servicio solo procesa respuestas 2xx.
type ErrorResponse struct {
	Status     string `json:"status"`
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"httpStatus,omitempty"`
	Body       string `json:"body,omitempty"`
}
