package commands

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/wms-gateway/internal/domain/query"
)

func newOrdersCmd(rt *runtime) *cobra.Command {
	var from, to, facility string
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Líneas de pedidos abiertos con despacho en [from, to)",
		Example: `  $ wmsctl orders --from 2024-05-01 --to 2024-05-08 --facility F01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := query.ParseOrders(from, to, facility)
			if err != nil {
				return rt.fail(err)
			}
			res, err := rt.lookup.Orders(commandContext(cmd), p)
			if err != nil {
				return rt.fail(err)
			}
			return rt.print(res)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "fecha inicial inclusiva (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "fecha final exclusiva (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&facility, "facility", "f", "", "código de facility")
	return cmd
}

func newOnHandCmd(rt *runtime) *cobra.Command {
	return itemsCmd(rt, "onhand", "Stock en la zona de reposición por ítem", rt.onHand)
}

func newMoveReqCmd(rt *runtime) *cobra.Command {
	return itemsCmd(rt, "movereq", "Movement requests abiertos hacia la zona de reposición", rt.moveReq)
}

func (rt *runtime) onHand(cmd *cobra.Command, p query.ItemsParams) (any, error) {
	return rt.lookup.OnHand(commandContext(cmd), p)
}

func (rt *runtime) moveReq(cmd *cobra.Command, p query.ItemsParams) (any, error) {
	return rt.lookup.MovementRequests(commandContext(cmd), p)
}

func itemsCmd(rt *runtime, use, short string, run func(*cobra.Command, query.ItemsParams) (any, error)) *cobra.Command {
	var items, facility string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := query.ParseItems(items, facility)
			if err != nil {
				return rt.fail(err)
			}
			res, err := run(cmd, p)
			if err != nil {
				return rt.fail(err)
			}
			return rt.print(res)
		},
	}
	cmd.Flags().StringVarP(&items, "items", "i", "", "códigos de ítem separados por coma")
	cmd.Flags().StringVarP(&facility, "facility", "f", "", "código de facility")
	return cmd
}
