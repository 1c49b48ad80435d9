package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/wms-gateway/internal/domain/query"
)

type kpiFunc func(ctx context.Context, p query.WindowParams) (any, error)

// kpi adapta un método tipado del caso de uso a kpiFunc.
func kpi[T any](fn func(ctx context.Context, p query.WindowParams) (T, error)) kpiFunc {
	return func(ctx context.Context, p query.WindowParams) (any, error) {
		return fn(ctx, p)
	}
}

func newKPICmds(rt *runtime) []*cobra.Command {
	// rt.kpi se resuelve en PersistentPreRunE, después de construir los comandos.
	specs := []struct {
		use, short string
		run        func() kpiFunc
	}{
		{"shipping", "KPI de despacho de los últimos N días", func() kpiFunc { return kpi(rt.kpi.Shipping) }},
		{"receiving", "KPI de recepción de los últimos N días", func() kpiFunc { return kpi(rt.kpi.Receiving) }},
		{"flow", "Despacho y recepción de la misma ventana", func() kpiFunc { return kpi(rt.kpi.Flow) }},
		{"ontime", "Recepciones a tiempo contra la entrega de la OC", func() kpiFunc { return kpi(rt.kpi.OnTimeReceiving) }},
		{"docktostock", "Minutos promedio entre recepción y putaway", func() kpiFunc { return kpi(rt.kpi.DockToStock) }},
	}

	cmds := make([]*cobra.Command, 0, len(specs))
	for _, s := range specs {
		var flags windowFlags
		cmd := &cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				p, err := flags.parse()
				if err != nil {
					return rt.fail(err)
				}
				res, err := s.run()(commandContext(cmd), p)
				if err != nil {
					return rt.fail(err)
				}
				return rt.print(res)
			},
		}
		flags.bind(cmd)
		cmds = append(cmds, cmd)
	}
	return cmds
}
