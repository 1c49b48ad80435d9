package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/wms-gateway/internal/application/dto"
	"github.com/jhoicas/wms-gateway/internal/domain/entity"
	dominv "github.com/jhoicas/wms-gateway/internal/domain/inventory"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
)

// OnTimeReceiving clasifica las recepciones de los últimos days días contra la
// fecha de entrega de su orden de compra.
//
//  1. OCs con delivery_date en [hoy − days, hoy] → po_nbr → fin del día de entrega.
//  2. Eventos de recepción en [inicio de (hoy − days), ahora].
//  3. Evento con OC desconocida → se descarta; actual ≤ esperado → a tiempo.
func (uc *KPIUseCase) OnTimeReceiving(ctx context.Context, p query.WindowParams) (*dto.OnTimeReceivingKPI, error) {
	now := uc.now().UTC().Truncate(time.Second)
	today := startOfDay(now)
	fromDay := today.AddDate(0, 0, -p.Days)

	poRows, err := uc.repo.Fetch(ctx, uc.qb.PurchaseOrders(p.Facility, fromDay, today))
	if err != nil {
		return nil, fmt.Errorf("kpi recepción a tiempo: órdenes de compra: %w", err)
	}
	expected := ExpectedDelivery(poRows)

	w := query.Window{From: fromDay, To: now}
	events, err := uc.repo.Fetch(ctx, uc.qb.History(query.ActivityReceived, p.Facility, w))
	if err != nil {
		return nil, fmt.Errorf("kpi recepción a tiempo: recepciones: %w", err)
	}

	summary, rows := ClassifyReceipts(events, expected)
	return &dto.OnTimeReceivingKPI{
		Status:   dto.StatusSuccess,
		FromDate: w.FromTS(),
		ToDate:   w.ToTS(),
		Summary:  summary,
		Rows:     rows,
	}, nil
}

// ExpectedDelivery po_nbr → fin del día de entrega (23:59:59 UTC). Si una OC
// aparece más de una vez se toma la entrega más tardía.
func ExpectedDelivery(poRows []entity.Row) map[string]time.Time {
	out := make(map[string]time.Time, len(poRows))
	for _, r := range poRows {
		po := r.String(query.POFieldNbr)
		if po == "" {
			continue
		}
		delivery, ok := r.Time(query.POFieldDeliveryDate)
		if !ok {
			continue
		}
		end := startOfDay(delivery).Add(24*time.Hour - time.Second)
		if cur, seen := out[po]; !seen || end.After(cur) {
			out[po] = end
		}
	}
	return out
}

// ClassifyReceipts cruza cada evento con su fecha esperada. El límite es
// inclusivo: actual == esperado cuenta como a tiempo.
func ClassifyReceipts(events []entity.Row, expected map[string]time.Time) (dto.OnTimeSummary, []dto.OnTimeRow) {
	type classified struct {
		row    dto.OnTimeRow
		actual time.Time
	}
	matched := make([]classified, 0, len(events))
	for _, ev := range events {
		po := ev.String(query.HistPO)
		exp, ok := expected[po]
		if !ok {
			continue
		}
		actual, ok := ev.Time(query.HistTS)
		if !ok {
			continue
		}
		matched = append(matched, classified{
			row: dto.OnTimeRow{
				PONbr:      po,
				LPNNbr:     ev.String(query.HistLPN),
				ExpectedTS: exp.Format(query.TimestampLayout),
				ActualTS:   actual.Format(query.TimestampLayout),
				OnTime:     !actual.After(exp),
			},
			actual: actual,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].row.PONbr != matched[j].row.PONbr {
			return matched[i].row.PONbr < matched[j].row.PONbr
		}
		return matched[i].actual.Before(matched[j].actual)
	})

	var summary dto.OnTimeSummary
	rows := make([]dto.OnTimeRow, 0, len(matched))
	for _, m := range matched {
		if m.row.OnTime {
			summary.OnTime++
		} else {
			summary.Late++
		}
		rows = append(rows, m.row)
	}
	summary.Received = len(rows)
	summary.OnTimePct = dominv.Percent(summary.OnTime, summary.Received)
	return summary, rows
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
