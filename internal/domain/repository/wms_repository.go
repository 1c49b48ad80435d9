package repository

import (
	"context"

	"github.com/jhoicas/wms-gateway/internal/domain/entity"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
)

// WMSRepository puerto de lectura sobre el API de entidades del WMS.
// Las implementaciones devuelven filas ya normalizadas: un 404 del WMS es un
// resultado vacío, no un error. Los errores son *domain.Error.
type WMSRepository interface {
	Fetch(ctx context.Context, q query.Query) ([]entity.Row, error)
}
