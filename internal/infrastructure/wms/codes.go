package wms

import (
	"github.com/jhoicas/wms-gateway/internal/domain/query"
	"github.com/jhoicas/wms-gateway/pkg/config"
)

// Codes códigos por defecto del tenant con los overrides de configuración.
func Codes(cfg config.WMSConfig) query.Codes {
	return query.DefaultCodes().Merge(query.Codes{
		CompanyCode:      cfg.CompanyCode,
		ReplenZone:       cfg.ReplenZone,
		ActivityShipped:  cfg.ActivityShipped,
		ActivityReceived: cfg.ActivityReceived,
		ActivityPutaway:  cfg.ActivityPutaway,
	})
}
