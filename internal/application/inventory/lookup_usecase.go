package inventory

import (
	"context"

	"github.com/jhoicas/wms-gateway/internal/application/dto"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
	"github.com/jhoicas/wms-gateway/internal/domain/repository"
)

// LookupUseCase consultas directas al WMS: pedidos, stock en zona de picking y
// movement requests abiertos. No agrega; solo normaliza.
type LookupUseCase struct {
	repo repository.WMSRepository
	qb   *query.Builder
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(repo repository.WMSRepository, qb *query.Builder) *LookupUseCase {
	return &LookupUseCase{repo: repo, qb: qb}
}

// Orders líneas de pedidos abiertos en [from_date, to_date).
func (uc *LookupUseCase) Orders(ctx context.Context, p query.OrdersParams) (*dto.LookupResponse, error) {
	return uc.fetch(ctx, uc.qb.Orders(p))
}

// OnHand stock actual de los ítems en la zona de reposición.
func (uc *LookupUseCase) OnHand(ctx context.Context, p query.ItemsParams) (*dto.LookupResponse, error) {
	return uc.fetch(ctx, uc.qb.OnHand(p))
}

// MovementRequests movement requests pendientes de los ítems.
func (uc *LookupUseCase) MovementRequests(ctx context.Context, p query.ItemsParams) (*dto.LookupResponse, error) {
	return uc.fetch(ctx, uc.qb.MovementRequests(p))
}

func (uc *LookupUseCase) fetch(ctx context.Context, q query.Query) (*dto.LookupResponse, error) {
	rows, err := uc.repo.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.LookupResponse{
		Status: dto.StatusSuccess,
		NoData: len(rows) == 0,
		Rows:   rows,
	}, nil
}
