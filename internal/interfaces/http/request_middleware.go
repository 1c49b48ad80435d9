package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/wms-gateway/pkg/logger"
)

// HeaderRequestID cabecera de correlación entre el cliente, este servicio y los logs.
const HeaderRequestID = "X-Request-ID"

// Locals keys en Fiber.
const (
	LocalRequestID = "request_id"
	LocalErrorKind = "error_kind"
)

// skipLogPaths rutas de sondeo que no se registran.
var skipLogPaths = map[string]struct{}{
	"/":       {},
	"/health": {},
}

// RequestLogger asigna (o propaga) X-Request-ID y registra cada petición con su
// latencia. Como los errores viajan con HTTP 200, el tipo de error se toma de
// c.Locals(LocalErrorKind).
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set(HeaderRequestID, requestID)

		err := c.Next()

		if _, skip := skipLogPaths[c.Path()]; skip {
			return err
		}

		ev := log.Info()
		kind := GetErrorKind(c)
		if err != nil || c.Response().StatusCode() >= 500 {
			ev = log.Error().Err(err)
		} else if kind != "" {
			ev = log.Warn().Str("error_kind", kind)
		}
		ev.Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("query", string(c.Request().URI().QueryString())).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request completed")
		return err
	}
}

// GetRequestID devuelve el request ID asignado por RequestLogger.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

// GetErrorKind devuelve el tipo de error que escribió el handler, o vacío.
func GetErrorKind(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalErrorKind).(string)
	return s
}
