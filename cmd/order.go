package cmd

import (
	"fmt"

	"github.com/soulgarden/cbpro/order"
	"github.com/soulgarden/cbpro/request"
	"github.com/soulgarden/cbpro/service"
	"github.com/spf13/cobra"
)

type placeFlags struct {
	size, funds, price, fundingAmount string

	timeInForce, cancelAfter, clientOID, stp string

	postOnly, overdraft bool
}

func (f *placeFlags) options(cmd *cobra.Command) (order.Options, error) {
	opts := order.Options{
		TimeInForce: request.TimeInForce(f.timeInForce),
		CancelAfter: request.CancelAfter(f.cancelAfter),
		ClientOID:   f.clientOID,
		STP:         request.SelfTradePrevention(f.stp),
	}

	var err error

	if opts.Size, err = order.ParseDecimal(f.size); err != nil {
		return opts, fmt.Errorf("size: %w", err)
	}

	if opts.Funds, err = order.ParseDecimal(f.funds); err != nil {
		return opts, fmt.Errorf("funds: %w", err)
	}

	if opts.Price, err = order.ParseDecimal(f.price); err != nil {
		return opts, fmt.Errorf("price: %w", err)
	}

	if opts.FundingAmount, err = order.ParseDecimal(f.fundingAmount); err != nil {
		return opts, fmt.Errorf("funding-amount: %w", err)
	}

	if cmd.Flags().Changed("post-only") {
		opts.PostOnly = order.Bool(f.postOnly)
	}

	if cmd.Flags().Changed("overdraft") {
		opts.OverdraftEnabled = order.Bool(f.overdraft)
	}

	return opts, nil
}

func newPlaceCmd() *cobra.Command {
	f := &placeFlags{}

	cmd := &cobra.Command{
		Use:   "place <product-id> <buy|sell> <limit|market|stop>",
		Short: "Validate and place an order",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}

			_, _, svc := newAccountSvc()

			placed, err := svc.PlaceOrder(
				cmd.Context(),
				args[0],
				request.Side(args[1]),
				request.OrderType(args[2]),
				opts,
			)
			if err != nil {
				return err
			}

			heading("order %s %s", placed.ID, placed.Status)

			return printJSON(placed)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.size, "size", "", "amount of base currency")
	flags.StringVar(&f.funds, "funds", "", "amount of quote currency to use, market and stop orders")
	flags.StringVar(&f.price, "price", "", "limit price, or trigger price of stop orders")
	flags.StringVar(&f.timeInForce, "time-in-force", "", "GTC, GTT, IOC or FOK")
	flags.StringVar(&f.cancelAfter, "cancel-after", "", "min, hour or day, requires GTT")
	flags.BoolVar(&f.postOnly, "post-only", false, "only add liquidity")
	flags.BoolVar(&f.overdraft, "overdraft", false, "allow margin overdraft")
	flags.StringVar(&f.fundingAmount, "funding-amount", "", "margin funding amount")
	flags.StringVar(&f.clientOID, "client-oid", "", "client order id, a UUID")
	flags.StringVar(&f.stp, "stp", "", "self trade prevention: dc, co, cn or cb")

	return cmd
}

func newCancelCmd() *cobra.Command {
	var (
		all       bool
		productID string
	)

	cmd := &cobra.Command{
		Use:   "cancel [order-id]",
		Short: "Cancel an order, or every open order with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			if all {
				ids, err := svc.CancelAll(cmd.Context(), productID)
				if err != nil {
					return err
				}

				heading("%d orders canceled", len(ids))

				return printJSON(ids)
			}

			if len(args) == 0 {
				return fmt.Errorf("order id or --all is required")
			}

			id, err := svc.CancelOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printJSON(id)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "cancel every open order")
	cmd.Flags().StringVar(&productID, "product", "", "restrict --all to one product")

	return cmd
}

func newOrdersCmd() *cobra.Command {
	var (
		productID string
		statuses  []string
		page      service.PageParams
		max       int
	)

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			return printPages(cmd.Context(), svc.GetOrders(productID, statuses, page), max)
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "only orders of this product")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "open, pending, active, done or all")
	pageFlags(cmd, &page, &max)

	return cmd
}

func newFillsCmd() *cobra.Command {
	var (
		orderID, productID string
		page               service.PageParams
		max                int
	)

	cmd := &cobra.Command{
		Use:   "fills",
		Short: "List fills of an order or a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			it, err := svc.GetFills(orderID, productID, page)
			if err != nil {
				return err
			}

			return printPages(cmd.Context(), it, max)
		},
	}

	cmd.Flags().StringVar(&orderID, "order", "", "order id")
	cmd.Flags().StringVar(&productID, "product", "", "product id")
	pageFlags(cmd, &page, &max)

	return cmd
}
