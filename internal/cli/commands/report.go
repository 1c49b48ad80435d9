package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/wms-gateway/internal/application/dto"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
	"github.com/jhoicas/wms-gateway/internal/infrastructure/pdf"
)

// windowFlags days/facility comunes a reposición y KPIs. days se valida con
// las mismas reglas que el endpoint HTTP.
type windowFlags struct {
	days     string
	facility string
}

func (w *windowFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&w.days, "days", "d", "", "ventana en días (entero >= 1)")
	cmd.Flags().StringVarP(&w.facility, "facility", "f", "", "código de facility")
}

func (w *windowFlags) parse() (query.WindowParams, error) {
	return query.ParseWindow(w.days, w.facility)
}

func newReplenCmd(rt *runtime) *cobra.Command {
	var (
		flags   windowFlags
		pdfPath string
	)
	cmd := &cobra.Command{
		Use:   "replen",
		Short: "Resumen de reposición de los próximos N días",
		Example: `  $ wmsctl replen --days 3 --facility F01
  $ wmsctl replen -d 3 -f F01 --pdf replen.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := flags.parse()
			if err != nil {
				return rt.fail(err)
			}
			ctx := commandContext(cmd)
			report, err := rt.replenishment.Summary(ctx, p)
			if err != nil {
				return rt.fail(err)
			}
			if pdfPath == "" {
				return rt.print(report)
			}
			return rt.writePDF(ctx, pdfPath, p.Facility, report)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "escribe el reporte en PDF en esta ruta en lugar de JSON")
	return cmd
}

func (rt *runtime) writePDF(ctx context.Context, path, facility string, report *dto.ReplenishmentReport) error {
	doc, err := pdf.NewMarotoReportGenerator().ReplenishmentPDF(ctx, facility, report)
	if err != nil {
		return rt.fail(err)
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	_, err = fmt.Fprintf(rt.errw, "PDF escrito en %s (%d ítems)\n", path, len(report.Rows))
	return err
}
