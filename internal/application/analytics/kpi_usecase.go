// Package analytics contiene los casos de uso de KPIs de almacén calculados
// sobre el historial de inventario y las órdenes de compra del WMS.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/wms-gateway/internal/application/dto"
	"github.com/jhoicas/wms-gateway/internal/domain/entity"
	dominv "github.com/jhoicas/wms-gateway/internal/domain/inventory"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
	"github.com/jhoicas/wms-gateway/internal/domain/repository"
)

// putawayConcurrency consultas de putaway simultáneas en dock-to-stock.
const putawayConcurrency = 4

// KPIUseCase calcula KPIs de despacho, recepción, recepción a tiempo y dock-to-stock.
// Cada método construye todo por petición; no guarda estado entre llamadas.
type KPIUseCase struct {
	repo repository.WMSRepository
	qb   *query.Builder
	now  func() time.Time
}

// NewKPIUseCase construye el caso de uso. now puede ser nil (usa time.Now).
func NewKPIUseCase(repo repository.WMSRepository, qb *query.Builder, now func() time.Time) *KPIUseCase {
	if now == nil {
		now = time.Now
	}
	return &KPIUseCase{repo: repo, qb: qb, now: now}
}

// trailingWindow [now − days, now] en UTC con precisión de segundos.
func (uc *KPIUseCase) trailingWindow(days int) query.Window {
	now := uc.now().UTC().Truncate(time.Second)
	return query.Window{From: now.AddDate(0, 0, -days), To: now}
}

// Shipping KPI de despacho de los últimos days días.
func (uc *KPIUseCase) Shipping(ctx context.Context, p query.WindowParams) (*dto.ShippingKPI, error) {
	w := uc.trailingWindow(p.Days)
	rows, err := uc.repo.Fetch(ctx, uc.qb.History(query.ActivityShipped, p.Facility, w))
	if err != nil {
		return nil, fmt.Errorf("kpi despacho: %w", err)
	}
	return &dto.ShippingKPI{
		Status:   dto.StatusSuccess,
		FromDate: w.FromTS(),
		ToDate:   w.ToTS(),
		Summary:  ShippingSummary(rows),
	}, nil
}

// Receiving KPI de recepción de los últimos days días.
func (uc *KPIUseCase) Receiving(ctx context.Context, p query.WindowParams) (*dto.ReceivingKPI, error) {
	w := uc.trailingWindow(p.Days)
	rows, err := uc.repo.Fetch(ctx, uc.qb.History(query.ActivityReceived, p.Facility, w))
	if err != nil {
		return nil, fmt.Errorf("kpi recepción: %w", err)
	}
	return &dto.ReceivingKPI{
		Status:   dto.StatusSuccess,
		FromDate: w.FromTS(),
		ToDate:   w.ToTS(),
		Summary:  ReceivingSummary(rows),
	}, nil
}

// Flow despacho y recepción sobre la misma ventana. Las dos consultas son
// independientes y se lanzan en paralelo; si una falla, falla el reporte.
func (uc *KPIUseCase) Flow(ctx context.Context, p query.WindowParams) (*dto.FlowKPI, error) {
	w := uc.trailingWindow(p.Days)

	var shipped, received []entity.Row
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := uc.repo.Fetch(gctx, uc.qb.History(query.ActivityShipped, p.Facility, w))
		if err != nil {
			return fmt.Errorf("kpi flujo: despacho: %w", err)
		}
		shipped = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.repo.Fetch(gctx, uc.qb.History(query.ActivityReceived, p.Facility, w))
		if err != nil {
			return fmt.Errorf("kpi flujo: recepción: %w", err)
		}
		received = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.FlowKPI{
		Status:   dto.StatusSuccess,
		FromDate: w.FromTS(),
		ToDate:   w.ToTS(),
		Summary: dto.FlowSummary{
			Shipping:  ShippingSummary(shipped),
			Receiving: ReceivingSummary(received),
		},
	}, nil
}

// ShippingSummary resume eventos de despacho. Las unidades suman el valor
// absoluto del ajuste.
func ShippingSummary(rows []entity.Row) dto.ShippingSummary {
	return dto.ShippingSummary{
		Events: len(rows),
		Units:  dominv.SumAbs(rows, query.HistQty),
		Items:  len(dominv.Distinct(rows, query.HistItemCode)),
		LPNs:   len(dominv.Distinct(rows, query.HistLPN)),
		Orders: len(dominv.Distinct(rows, query.HistOrder)),
	}
}

// ReceivingSummary resume eventos de recepción.
func ReceivingSummary(rows []entity.Row) dto.ReceivingSummary {
	return dto.ReceivingSummary{
		Events:    len(rows),
		Units:     dominv.SumAbs(rows, query.HistQty),
		Items:     len(dominv.Distinct(rows, query.HistItemCode)),
		LPNs:      len(dominv.Distinct(rows, query.HistLPN)),
		Shipments: len(dominv.Distinct(rows, query.HistShipment)),
	}
}
