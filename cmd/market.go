package cmd

import (
	"time"

	"github.com/soulgarden/cbpro/service"
	"github.com/spf13/cobra"
)

func newProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List available currency pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			products, err := svc.GetProducts(cmd.Context())
			if err != nil {
				return err
			}

			heading("%d products", len(products))

			for _, p := range products {
				if err := printJSON(p); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newTickerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ticker <product-id>",
		Short: "Show the last trade, best bid and ask of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			ticker, err := svc.GetProductTicker(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			heading("%s ticker", args[0])

			return printJSON(ticker)
		},
	}
}

func newBookCmd() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "book <product-id>",
		Short: "Show the order book of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			book, err := svc.GetProductOrderBook(cmd.Context(), args[0], level)
			if err != nil {
				return err
			}

			heading("%s book, level %d, sequence %d", args[0], level, book.Sequence)

			return printJSON(book)
		},
	}

	cmd.Flags().IntVar(&level, "level", 1, "book level: 1, 2 or 3")

	return cmd
}

func newTradesCmd() *cobra.Command {
	var (
		page service.PageParams
		max  int
	)

	cmd := &cobra.Command{
		Use:   "trades <product-id>",
		Short: "List the latest trades of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			return printPages(cmd.Context(), svc.GetProductTrades(args[0], page), max)
		},
	}

	pageFlags(cmd, &page, &max)

	return cmd
}

func newCandlesCmd() *cobra.Command {
	var (
		granularity int
		start, end  string
	)

	cmd := &cobra.Command{
		Use:   "candles <product-id>",
		Short: "Show historic rates of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseTime(start)
			if err != nil {
				return err
			}

			to, err := parseTime(end)
			if err != nil {
				return err
			}

			_, _, svc := newAccountSvc()

			candles, err := svc.GetProductHistoricRates(cmd.Context(), args[0], from, to, granularity)
			if err != nil {
				return err
			}

			heading("%d candles", len(candles))

			for _, c := range candles {
				if err := printJSON(c); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&granularity, "granularity", 0, "seconds: 60, 300, 900, 3600, 21600 or 86400")
	cmd.Flags().StringVar(&start, "start", "", "RFC3339 start time")
	cmd.Flags().StringVar(&end, "end", "", "RFC3339 end time")

	return cmd
}

func newTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "time",
		Short: "Show the exchange server time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			t, err := svc.GetTime(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(t)
		},
	}
}

func newCurrenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List known currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			currencies, err := svc.GetCurrencies(cmd.Context())
			if err != nil {
				return err
			}

			for _, c := range currencies {
				if err := printJSON(c); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339, s)
}

func pageFlags(cmd *cobra.Command, page *service.PageParams, max *int) {
	cmd.Flags().StringVar(&page.Before, "before", "", "return items newer than this cursor")
	cmd.Flags().StringVar(&page.After, "after", "", "return items older than this cursor")
	cmd.Flags().IntVar(&page.Limit, "limit", 0, "items per page")
	cmd.Flags().IntVar(max, "max", 0, "stop after this many items, 0 for all")
}
