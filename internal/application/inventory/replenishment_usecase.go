package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-gateway/internal/application/dto"
	"github.com/jhoicas/wms-gateway/internal/domain/entity"
	dominv "github.com/jhoicas/wms-gateway/internal/domain/inventory"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
	"github.com/jhoicas/wms-gateway/internal/domain/repository"
)

// ReplenishmentUseCase compara, por ítem, la demanda de los próximos días con el
// stock en la zona de picking y la reposición ya solicitada.
type ReplenishmentUseCase struct {
	repo repository.WMSRepository
	qb   *query.Builder
	now  func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
// now puede ser nil (usa time.Now).
func NewReplenishmentUseCase(
	repo repository.WMSRepository,
	qb *query.Builder,
	now func() time.Time,
) *ReplenishmentUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReplenishmentUseCase{repo: repo, qb: qb, now: now}
}

// Summary genera el resumen de reposición para una facility.
//
// Cadena secuencial (cada paso depende del anterior):
//  1. Pedidos con despacho en [mañana, mañana+days) → demanda por ítem.
//  2. Sin demanda → reporte vacío sin más llamadas.
//  3. Stock en zona de picking de esos ítems (faltantes = 0).
//  4. Movement requests abiertos de esos ítems (faltantes = 0).
func (uc *ReplenishmentUseCase) Summary(ctx context.Context, p query.WindowParams) (*dto.ReplenishmentReport, error) {
	now := uc.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, 1)
	to := from.AddDate(0, 0, p.Days)

	report := &dto.ReplenishmentReport{
		Status:   dto.StatusSuccess,
		FromDate: from.Format(query.DateLayout),
		ToDate:   to.Format(query.DateLayout),
		Rows:     []dto.ReplenishmentRow{},
	}

	// 1. Demanda
	orders, err := uc.repo.Fetch(ctx, uc.qb.Orders(query.OrdersParams{
		FromDate: report.FromDate,
		ToDate:   report.ToDate,
		Facility: p.Facility,
	}))
	if err != nil {
		return nil, fmt.Errorf("reposición: pedidos: %w", err)
	}
	ordered := OrderSummary(orders)

	// 2. Sin demanda no hay nada que cruzar
	if len(ordered) == 0 {
		return report, nil
	}
	items := dominv.SortedKeys(ordered)
	itemsParams := query.ItemsParams{Items: items, Facility: p.Facility}

	// 3. Stock en zona de picking
	onhandRows, err := uc.repo.Fetch(ctx, uc.qb.OnHand(itemsParams))
	if err != nil {
		return nil, fmt.Errorf("reposición: stock: %w", err)
	}
	onhand := dominv.SumBy(onhandRows, query.FieldItemCode, query.FieldCurrQty)

	// 4. Reposición pendiente
	mrRows, err := uc.repo.Fetch(ctx, uc.qb.MovementRequests(itemsParams))
	if err != nil {
		return nil, fmt.Errorf("reposición: movement requests: %w", err)
	}
	pending := dominv.SumBy(mrRows, query.FieldItemCode, query.FieldReqQty)

	report.Rows = BuildReplenishmentRows(ordered, onhand, pending)
	return report, nil
}

// BuildReplenishmentRows una fila por ítem de ordered, ordenadas por código.
// Los ítems ausentes en onhand o pending quedan en cero; los que solo aparecen
// en onhand o pending no generan fila.
func BuildReplenishmentRows(ordered, onhand, pending map[string]decimal.Decimal) []dto.ReplenishmentRow {
	rows := make([]dto.ReplenishmentRow, 0, len(ordered))
	for _, item := range dominv.SortedKeys(ordered) {
		rows = append(rows, dto.ReplenishmentRow{
			Item:         item,
			OrderedQty:   ordered[item],
			OnhandQty:    valueOrZero(onhand, item),
			PendingMOQty: valueOrZero(pending, item),
		})
	}
	return rows
}

func valueOrZero(m map[string]decimal.Decimal, key string) decimal.Decimal {
	if v, ok := m[key]; ok {
		return v
	}
	return decimal.Zero
}

// OrderSummary demanda por ítem de un conjunto de líneas de pedido.
func OrderSummary(orders []entity.Row) map[string]decimal.Decimal {
	return dominv.SumBy(orders, query.FieldItemCode, query.FieldOrdQty)
}
