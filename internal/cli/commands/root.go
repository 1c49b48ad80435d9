package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jhoicas/wms-gateway/internal/application/analytics"
	"github.com/jhoicas/wms-gateway/internal/application/dto"
	"github.com/jhoicas/wms-gateway/internal/application/inventory"
	"github.com/jhoicas/wms-gateway/internal/domain"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
	"github.com/jhoicas/wms-gateway/internal/domain/repository"
	"github.com/jhoicas/wms-gateway/internal/infrastructure/wms"
	"github.com/jhoicas/wms-gateway/pkg/config"
	"github.com/jhoicas/wms-gateway/pkg/logger"
)

const version = "0.1.0"

var errorColor = color.New(color.FgRed, color.Bold)

// runtime dependencias resueltas antes de ejecutar cada subcomando.
type runtime struct {
	repo  repository.WMSRepository
	codes *query.Codes
	now   func() time.Time
	out   io.Writer
	errw  io.Writer

	lookup        *inventory.LookupUseCase
	replenishment *inventory.ReplenishmentUseCase
	kpi           *analytics.KPIUseCase
}

// Option modifica el runtime; los tests inyectan un repositorio falso.
type Option func(*runtime)

// WithRepository usa repo en lugar del cliente HTTP del WMS.
func WithRepository(repo repository.WMSRepository) Option {
	return func(r *runtime) { r.repo = repo }
}

// WithCodes fija los códigos del tenant sin leer configuración.
func WithCodes(codes query.Codes) Option {
	return func(r *runtime) { r.codes = &codes }
}

// WithClock fija la hora de referencia de las ventanas.
func WithClock(now func() time.Time) Option {
	return func(r *runtime) { r.now = now }
}

// WithOutput redirige la salida JSON y los mensajes de error.
func WithOutput(out, errw io.Writer) Option {
	return func(r *runtime) { r.out, r.errw = out, errw }
}

// NewRootCmd construye el árbol de comandos de wmsctl.
func NewRootCmd(opts ...Option) *cobra.Command {
	rt := &runtime{now: time.Now, out: os.Stdout, errw: os.Stderr}
	for _, opt := range opts {
		opt(rt)
	}

	root := &cobra.Command{
		Use:     "wmsctl",
		Short:   "Reportes de almacén contra el WMS desde la terminal",
		Version: version,
		Long: `Ejecuta las mismas consultas, reportes de reposición y KPIs que expone el
gateway HTTP, directamente contra el WMS configurado por variables de entorno
(WMS_BASE_URL, WMS_USER, WMS_PASSWORD...). La salida es el mismo JSON.`,
		Example: `  # Resumen de reposición de los próximos 3 días
  $ wmsctl replen --days 3 --facility F01

  # Exportarlo a PDF
  $ wmsctl replen --days 3 --facility F01 --pdf replen.pdf

  # KPI dock-to-stock de la última semana
  $ wmsctl docktostock --days 7 --facility F01`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(rt.out)
	root.SetErr(rt.errw)

	root.AddCommand(
		newOrdersCmd(rt),
		newOnHandCmd(rt),
		newMoveReqCmd(rt),
		newReplenCmd(rt),
	)
	root.AddCommand(newKPICmds(rt)...)
	return root
}

// Execute ejecuta wmsctl con la configuración del entorno.
func Execute() error {
	err := NewRootCmd().Execute()
	var de *domain.Error
	if err != nil && !errors.As(err, &de) {
		errorColor.Fprintf(os.Stderr, "✗ %v\n", err)
	}
	return err
}

func (rt *runtime) init() error {
	if rt.repo == nil || rt.codes == nil {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		if rt.codes == nil {
			codes := wms.Codes(cfg.WMS)
			rt.codes = &codes
		}
		if rt.repo == nil {
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: rt.errw})
			rt.repo = wms.NewClient(cfg.WMS, log)
		}
	}

	qb := query.NewBuilder(*rt.codes)
	rt.lookup = inventory.NewLookupUseCase(rt.repo, qb)
	rt.replenishment = inventory.NewReplenishmentUseCase(rt.repo, qb, rt.now)
	rt.kpi = analytics.NewKPIUseCase(rt.repo, qb, rt.now)
	return nil
}

// print escribe v como JSON indentado.
func (rt *runtime) print(v any) error {
	b, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rt.out, string(b))
	return err
}

// fail escribe el sobre de error en la salida y un resumen en stderr; el
// comando termina con código distinto de cero.
func (rt *runtime) fail(err error) error {
	de := domain.AsError(err)
	_ = rt.print(dto.ErrorResponse{
		Status:     dto.StatusError,
		Kind:       string(de.Kind),
		Message:    de.Message,
		HTTPStatus: de.HTTPStatus,
		Body:       de.Body,
	})
	errorColor.Fprintf(rt.errw, "✗ %s: %s\n", de.Kind, de.Message)
	return de
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
