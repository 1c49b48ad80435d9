package query

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-gateway/internal/domain"
)

func TestOrders_FiltrosYProyeccion(t *testing.T) {
	b := NewBuilder(DefaultCodes())
	q := b.Orders(OrdersParams{FromDate: "2024-05-01", ToDate: "2024-05-08", Facility: "F01"})

	assert.Equal(t, EntityOrderDetail, q.Entity)
	assert.Equal(t, "2024-05-01", q.Get("order_id__req_ship_date__gte"), "límite inferior inclusivo")
	assert.Equal(t, "2024-05-08", q.Get("order_id__req_ship_date__lt"), "límite superior exclusivo")
	assert.Equal(t, "F01", q.Get("order_id__facility_id__code"))
	assert.Equal(t, "0", q.Get("order_id__status_id"))

	v := q.Values()
	assert.Equal(t, "order_id__order_nbr,item_id,item_id__code,ord_qty", v.Get("values_list"))
}

func TestOnHandYMovementRequests(t *testing.T) {
	b := NewBuilder(DefaultCodes())
	p := ItemsParams{Items: []string{"A", "B"}, Facility: "F01"}

	onhand := b.OnHand(p)
	assert.Equal(t, EntityInventory, onhand.Entity)
	assert.Equal(t, "A,B", onhand.Get("item_id__code__in"))
	assert.Equal(t, "PFACE", onhand.Get("container_id__curr_location_id__replenishment_zone_id__code"))
	assert.Equal(t, "item_id__code,curr_qty", onhand.Values().Get("values_list"))

	mr := b.MovementRequests(p)
	assert.Equal(t, EntityMovementRequest, mr.Entity)
	assert.Equal(t, "PFACE", mr.Get("replenishment_zone_id__code"))
	assert.Equal(t, "0,10", mr.Get("status_id__in"))
	assert.Equal(t, "F01", mr.Get("facility_id__code"))
}

func TestHistory_VentanaYActividad(t *testing.T) {
	codes := DefaultCodes().Merge(Codes{CompanyCode: "ACME", ActivityPutaway: "99"})
	b := NewBuilder(codes)
	w := Window{
		From: time.Date(2024, 5, 1, 10, 0, 0, 500, time.UTC),
		To:   time.Date(2024, 5, 8, 10, 0, 0, 0, time.FixedZone("COT", -5*3600)),
	}

	q := b.History(ActivityPutaway, "F01", w, "C1", "C2")

	assert.Equal(t, EntityHistory, q.Entity)
	assert.Equal(t, "99", q.Get("history_activity_id"))
	assert.Equal(t, "ACME", q.Get("company_id__code"))
	assert.Equal(t, "2024-05-01T10:00:00Z", q.Get("create_ts__gte"))
	assert.Equal(t, "2024-05-08T15:00:00Z", q.Get("create_ts__lte"), "se formatea en UTC")
	assert.Equal(t, "C1,C2", q.Get("lpn_nbr__in"))

	received := b.History(ActivityReceived, "F01", w)
	assert.Equal(t, "1", received.Get("history_activity_id"))
	assert.Empty(t, received.Get("lpn_nbr__in"))
}

func TestHistory_SinCompania(t *testing.T) {
	q := NewBuilder(DefaultCodes()).History(ActivityShipped, "F01", Window{})
	assert.Empty(t, q.Get("company_id__code"))
	assert.Equal(t, "3", q.Get("history_activity_id"))
}

func TestPurchaseOrders(t *testing.T) {
	q := NewBuilder(DefaultCodes()).PurchaseOrders("F01",
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 8, 13, 0, 0, 0, time.UTC))

	assert.Equal(t, EntityPurchaseOrder, q.Entity)
	assert.Equal(t, "2024-05-01", q.Get("delivery_date__gte"))
	assert.Equal(t, "2024-05-08", q.Get("delivery_date__lte"))
}

func TestWith_NoModificaOriginal(t *testing.T) {
	base := Query{Entity: "x", Filters: make([]Filter, 1, 4)}
	a := base.With("a", "1")
	b := base.With("b", "2")

	assert.Equal(t, "1", a.Get("a"))
	assert.Empty(t, b.Get("a"))
	assert.Len(t, base.Filters, 1)
}

func TestParseWindow(t *testing.T) {
	p, err := ParseWindow(" 7 ", "F01")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Days)

	for _, days := range []string{"abc", "1.5", "0", "-3", ""} {
		_, err := ParseWindow(days, "F01")
		require.Error(t, err, "days=%q", days)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	}

	_, err = ParseWindow("7", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseWindow_LimiteSuperior(t *testing.T) {
	p, err := ParseWindow("3650", "F01")
	require.NoError(t, err)
	assert.Equal(t, MaxWindowDays, p.Days)

	for _, days := range []string{"3651", "200000", "99999999999999999999"} {
		_, err := ParseWindow(days, "F01")
		var de *domain.Error
		require.ErrorAs(t, err, &de, "days=%q", days)
		assert.Equal(t, domain.KindValidation, de.Kind)
	}

	_, err = ParseWindow("200000", "F01")
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "days must be <= 3650, got 200000", de.Message)
}

func TestParseItems(t *testing.T) {
	p, err := ParseItems(" A, B,,A ,C ", "F01")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Items)

	_, err = ParseItems(" , ", "F01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ParseItems("A", "")
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindValidation, de.Kind)
	assert.Equal(t, "Missing required params: items, facility", de.Message)
}

func TestParseOrders(t *testing.T) {
	p, err := ParseOrders("2024-05-01", "2024-05-02", "F01")
	require.NoError(t, err)
	assert.Equal(t, "F01", p.Facility)

	_, err = ParseOrders("2024-05-01", "", "F01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ParseOrders("01/05/2024", "2024-05-02", "F01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ParseOrders("2024-05-02", "2024-05-02", "F01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el rango [from, to) no puede ser vacío")
}

func TestWindowContains(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	w := Window{From: from, To: from.Add(time.Hour)}

	assert.True(t, w.Contains(from))
	assert.True(t, w.Contains(from.Add(time.Hour)))
	assert.False(t, w.Contains(from.Add(-time.Second)))
}
