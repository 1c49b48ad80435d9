// Package pdf exporta el resumen de reposición a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Facility   │  Ventana + Fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Demanda | Stock picking | Reposición | Faltante│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ítems / Demanda / Faltante                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-gateway/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// ReplenishmentPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) ReplenishmentPDF(
	_ context.Context,
	facility string,
	report *dto.ReplenishmentReport,
) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de reposición "+facility, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(facility, report, g.now().UTC()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(report.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin demanda en la ventana.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, r := range tableDetailRows(report.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// Shortfall unidades que faltan en picking tras contar la reposición ya pedida.
// Nunca negativo.
func Shortfall(r dto.ReplenishmentRow) decimal.Decimal {
	missing := r.OrderedQty.Sub(r.OnhandQty).Sub(r.PendingMOQty)
	if missing.IsNegative() {
		return decimal.Zero
	}
	return missing
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + facility (izq) y ventana + fecha de emisión (der).
func headerRow(facility string, report *dto.ReplenishmentReport, issued time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("RESUMEN DE REPOSICIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Facility: "+facility, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Despachos %s a %s", report.FromDate, report.ToDate), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Emitido: "+issued.Format("2006-01-02 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 4, align.Left),
		h("Demanda", 2, align.Right),
		h("Stock picking", 2, align.Right),
		h("Reposición", 2, align.Right),
		h("Faltante", 2, align.Right),
	)
}

// tableDetailRows: una fila por ítem; el faltante se resalta.
func tableDetailRows(rows []dto.ReplenishmentRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		missing := Shortfall(r)
		missingProps := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if missing.IsPositive() {
			missingProps.Style = fontstyle.Bold
			missingProps.Color = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(r.Item, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatQty(r.OrderedQty), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatQty(r.OnhandQty), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatQty(r.PendingMOQty), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatQty(missing), missingProps)),
		))
	}
	return result
}

func totalsRow(rows []dto.ReplenishmentRow) core.Row {
	demand, missing := decimal.Zero, decimal.Zero
	short := 0
	for _, r := range rows {
		demand = demand.Add(r.OrderedQty)
		if s := Shortfall(r); s.IsPositive() {
			missing = missing.Add(s)
			short++
		}
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Ítems:"),
			label("Demanda total:"),
			label("Faltante total:"),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d (%d con faltante)", len(rows), short)),
			value(formatQty(demand)),
			value(formatQty(missing)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatQty cantidades enteras sin decimales, fraccionarias con dos.
func formatQty(d decimal.Decimal) string {
	if d.IsInteger() {
		return formatThousands(d.StringFixed(0))
	}
	return d.StringFixed(2)
}

// formatThousands inserta puntos de miles en un entero sin signo o con signo.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatThousands(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
