package ports

import (
	"context"

	"github.com/jhoicas/wms-gateway/internal/application/dto"
)

// ReportPDFGenerator puerto de salida para exportar reportes a PDF.
// La aplicación solo conoce este contrato; el adaptador concreto vive en infrastructure/pdf.
type ReportPDFGenerator interface {
	// ReplenishmentPDF renderiza el resumen de reposición de una facility.
	ReplenishmentPDF(ctx context.Context, facility string, report *dto.ReplenishmentReport) ([]byte, error)
}
