package inventory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/wms-gateway/internal/domain/entity"
)

func TestSumBy_SumaDuplicados(t *testing.T) {
	rows := []entity.Row{
		{"item_id__code": "A", "ord_qty": "5"},
		{"item_id__code": "A", "ord_qty": "3"},
		{"item_id__code": "B", "ord_qty": "2"},
		{"item_id__code": "B", "ord_qty": "x"},
		{"item_id__code": "", "ord_qty": "9"},
	}

	got := SumBy(rows, "item_id__code", "ord_qty")

	assert.Len(t, got, 2)
	assert.True(t, decimal.NewFromInt(8).Equal(got["A"]))
	assert.True(t, decimal.NewFromInt(2).Equal(got["B"]), "la cantidad ilegible cuenta como cero")
}

func TestSumAbs(t *testing.T) {
	rows := []entity.Row{{"adj_qty": "-4"}, {"adj_qty": "6"}, {"adj_qty": nil}}
	assert.True(t, decimal.NewFromInt(10).Equal(SumAbs(rows, "adj_qty")))
}

func TestDistinct_Ordenado(t *testing.T) {
	rows := []entity.Row{{"lpn": "C2"}, {"lpn": "C1"}, {"lpn": "C2"}, {"lpn": ""}}
	assert.Equal(t, []string{"C1", "C2"}, Distinct(rows, "lpn"))
}

func TestEarliestBy(t *testing.T) {
	rows := []entity.Row{
		{"shp": "S1", "ts": "2024-05-01T10:30:00Z"},
		{"shp": "S1", "ts": "2024-05-01T10:00:00Z"},
		{"shp": "S2", "ts": "basura"},
	}

	got := EarliestBy(rows, "shp", "ts")

	assert.Len(t, got, 1)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), got["S1"])
}

func TestAverage(t *testing.T) {
	assert.True(t, Average(nil).IsZero())

	got := Average([]decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(20), decimal.NewFromInt(20)})
	assert.Equal(t, "16.67", got.StringFixed(2))
}

func TestPercent(t *testing.T) {
	assert.True(t, Percent(1, 0).IsZero(), "sin denominador no divide")
	assert.Equal(t, "66.67", Percent(2, 3).StringFixed(2))
	assert.Equal(t, "100.00", Percent(4, 4).StringFixed(2))
}
