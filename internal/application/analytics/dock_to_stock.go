package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/wms-gateway/internal/application/dto"
	"github.com/jhoicas/wms-gateway/internal/domain/entity"
	dominv "github.com/jhoicas/wms-gateway/internal/domain/inventory"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
)

// ShipmentGroup LPNs recibidos de un shipment y su hora de llegada al muelle.
type ShipmentGroup struct {
	Shipment string
	Dock     time.Time
	LPNs     []string
}

// DockToStock minutos promedio entre la recepción de cada LPN (hora de muelle
// de su shipment) y su putaway completado.
//
//  1. Recepciones de la ventana: unidades, shipments y LPNs distintos, hora de
//     muelle = primera recepción del shipment.
//  2. Por shipment, putaways de sus LPNs en la misma ventana; hora de stock =
//     primer putaway del LPN.
//  3. Muestra = stock − muelle en minutos; las negativas se descartan.
func (uc *KPIUseCase) DockToStock(ctx context.Context, p query.WindowParams) (*dto.DockToStockKPI, error) {
	w := uc.trailingWindow(p.Days)

	received, err := uc.repo.Fetch(ctx, uc.qb.History(query.ActivityReceived, p.Facility, w))
	if err != nil {
		return nil, fmt.Errorf("kpi dock-to-stock: recepciones: %w", err)
	}

	summary := dto.DockToStockSummary{
		ReceivedUnits: dominv.SumAbs(received, query.HistQty),
		Shipments:     len(dominv.Distinct(received, query.HistShipment)),
		LPNs:          len(dominv.Distinct(received, query.HistLPN)),
		AvgMinutes:    decimal.Zero,
	}

	groups := GroupByShipment(received)
	stock := make([]map[string]time.Time, len(groups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(putawayConcurrency)
	for i, grp := range groups {
		g.Go(func() error {
			rows, err := uc.repo.Fetch(gctx, uc.qb.History(query.ActivityPutaway, p.Facility, w, grp.LPNs...))
			if err != nil {
				return fmt.Errorf("kpi dock-to-stock: putaway shipment %s: %w", grp.Shipment, err)
			}
			stock[i] = dominv.EarliestBy(rows, query.HistLPN, query.HistTS)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	samples := DockToStockSamples(groups, stock)
	summary.Samples = len(samples)
	summary.AvgMinutes = dominv.Average(samples)

	return &dto.DockToStockKPI{
		Status:   dto.StatusSuccess,
		FromDate: w.FromTS(),
		ToDate:   w.ToTS(),
		Summary:  summary,
	}, nil
}

// GroupByShipment agrupa LPNs por shipment con la primera recepción como hora de
// muelle. Shipments sin LPNs o sin timestamp legible no generan grupo.
func GroupByShipment(received []entity.Row) []ShipmentGroup {
	dock := dominv.EarliestBy(received, query.HistShipment, query.HistTS)

	lpnSets := make(map[string]map[string]struct{})
	for _, r := range received {
		shp, lpn := r.String(query.HistShipment), r.String(query.HistLPN)
		if shp == "" || lpn == "" {
			continue
		}
		if lpnSets[shp] == nil {
			lpnSets[shp] = make(map[string]struct{})
		}
		lpnSets[shp][lpn] = struct{}{}
	}

	groups := make([]ShipmentGroup, 0, len(lpnSets))
	for _, shp := range dominv.SortedKeys(lpnSets) {
		dockTime, ok := dock[shp]
		if !ok {
			continue
		}
		groups = append(groups, ShipmentGroup{
			Shipment: shp,
			Dock:     dockTime,
			LPNs:     dominv.SortedKeys(lpnSets[shp]),
		})
	}
	return groups
}

// DockToStockSamples minutos transcurridos por LPN con hora de muelle y de stock.
// stock[i] corresponde a groups[i].
func DockToStockSamples(groups []ShipmentGroup, stock []map[string]time.Time) []decimal.Decimal {
	sixty := decimal.NewFromInt(60)
	var samples []decimal.Decimal
	for i, grp := range groups {
		if i >= len(stock) {
			break
		}
		for _, lpn := range grp.LPNs {
			stockTime, ok := stock[i][lpn]
			if !ok {
				continue
			}
			elapsed := stockTime.Sub(grp.Dock)
			if elapsed < 0 {
				continue // reloj desfasado o dato inválido
			}
			samples = append(samples, decimal.NewFromInt(int64(elapsed/time.Second)).Div(sixty))
		}
	}
	return samples
}
