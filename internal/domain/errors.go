package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput parámetros de entrada faltantes o mal formados.
var ErrInvalidInput = errors.New("entrada inválida")

// ErrorKind clasifica los fallos que se reportan al cliente.
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"      // parámetro faltante o inválido; no hubo llamada al WMS
	KindTransport      ErrorKind = "transport"       // timeout, DNS, conexión rechazada
	KindUpstreamStatus ErrorKind = "upstream_status" // el WMS respondió no-2xx (distinto de 404)
	KindNonJSON        ErrorKind = "non_json"        // el WMS respondió 2xx con un cuerpo que no es JSON
)

// Error fallo estructurado de la aplicación. La capa HTTP lo aplana al sobre
// {status:"error", ...}; internamente viaja intacto.
type Error struct {
	Kind       ErrorKind
	Message    string
	HTTPStatus int    // solo KindUpstreamStatus
	Body       string // cuerpo crudo del WMS, solo KindUpstreamStatus
	Err        error
}

func (e *Error) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Kind, e.Message, e.HTTPStatus)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	if e.Kind == KindValidation && e.Err == nil {
		return ErrInvalidInput
	}
	return e.Err
}

// Validation construye un error de validación con mensaje descriptivo.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// AsError extrae el *Error de la cadena; si no hay uno, envuelve err como transporte.
func AsError(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
}
