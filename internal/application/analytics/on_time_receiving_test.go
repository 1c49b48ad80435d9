package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-gateway/internal/application/analytics"
	"github.com/jhoicas/wms-gateway/internal/domain/entity"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
	"github.com/jhoicas/wms-gateway/internal/infrastructure/wms/wmstest"
)

func TestExpectedDelivery_FinDelDia(t *testing.T) {
	got := analytics.ExpectedDelivery([]entity.Row{
		{"po_nbr": "PO1", "delivery_date": "2024-05-08"},
		{"po_nbr": "PO2", "delivery_date": "2024-05-09T00:00:00"},
		{"po_nbr": "PO2", "delivery_date": "2024-05-07"},
		{"po_nbr": "", "delivery_date": "2024-05-07"},
		{"po_nbr": "PO3", "delivery_date": nil},
	})

	assert.Len(t, got, 2)
	assert.Equal(t, time.Date(2024, 5, 8, 23, 59, 59, 0, time.UTC), got["PO1"])
	assert.Equal(t, time.Date(2024, 5, 9, 23, 59, 59, 0, time.UTC), got["PO2"], "se toma la entrega más tardía")
}

func TestClassifyReceipts_LimiteInclusivo(t *testing.T) {
	expected := map[string]time.Time{"PO1": time.Date(2024, 5, 8, 23, 59, 59, 0, time.UTC)}

	summary, rows := analytics.ClassifyReceipts([]entity.Row{
		{"po_nbr": "PO1", "lpn_nbr": "L1", "create_ts": "2024-05-08T23:59:59Z"},
		{"po_nbr": "PO1", "lpn_nbr": "L2", "create_ts": "2024-05-09T00:00:00Z"},
		{"po_nbr": "PO9", "lpn_nbr": "L3", "create_ts": "2024-05-01T00:00:00Z"},
	}, expected)

	require.Len(t, rows, 2, "el evento con OC desconocida se descarta")
	assert.True(t, rows[0].OnTime, "actual == esperado cuenta como a tiempo")
	assert.False(t, rows[1].OnTime)
	assert.Equal(t, "2024-05-08T23:59:59Z", rows[0].ExpectedTS)
	assert.Equal(t, 2, summary.Received)
	assert.Equal(t, 1, summary.OnTime)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, "50", summary.OnTimePct.String())
}

func TestClassifyReceipts_SinCoincidencias(t *testing.T) {
	summary, rows := analytics.ClassifyReceipts([]entity.Row{{"po_nbr": "X", "create_ts": "2024-05-01"}}, nil)

	assert.Empty(t, rows)
	assert.NotNil(t, rows)
	assert.Equal(t, 0, summary.Received)
	assert.True(t, summary.OnTimePct.IsZero(), "sin eventos el porcentaje es cero, no división por cero")
}

func TestOnTimeReceiving_FlujoCompleto(t *testing.T) {
	repo := wmstest.New().
		On(query.EntityPurchaseOrder,
			entity.Row{"po_nbr": "PO2", "delivery_date": "2024-05-09"},
			entity.Row{"po_nbr": "PO1", "delivery_date": "2024-05-05"},
		).
		On(query.EntityHistory,
			entity.Row{"po_nbr": "PO2", "lpn_nbr": "L3", "create_ts": "2024-05-09T08:00:00"},
			entity.Row{"po_nbr": "PO1", "lpn_nbr": "L2", "create_ts": "2024-05-06T09:00:00"},
			entity.Row{"po_nbr": "PO1", "lpn_nbr": "L1", "create_ts": "2024-05-05T09:00:00"},
		)

	res, err := newKPI(repo).OnTimeReceiving(context.Background(), window)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-03T00:00:00Z", res.FromDate)
	assert.Equal(t, "2024-05-10T15:30:00Z", res.ToDate)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, []string{"L1", "L2", "L3"}, []string{res.Rows[0].LPNNbr, res.Rows[1].LPNNbr, res.Rows[2].LPNNbr},
		"ordenado por OC y luego por hora real")
	assert.Equal(t, 2, res.Summary.OnTime)
	assert.Equal(t, 1, res.Summary.Late)
	assert.Equal(t, "66.67", res.Summary.OnTimePct.String())

	po := repo.CallsFor(query.EntityPurchaseOrder)
	require.Len(t, po, 1)
	assert.Equal(t, "2024-05-03", po[0].Get("delivery_date__gte"))
	assert.Equal(t, "2024-05-10", po[0].Get("delivery_date__lte"))
	hist := repo.CallsFor(query.EntityHistory)
	require.Len(t, hist, 1)
	assert.Equal(t, "1", hist[0].Get("history_activity_id"))
}
