package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/soulgarden/cbpro/broker"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/feed"
	"github.com/soulgarden/cbpro/storage"
	"github.com/soulgarden/cbpro/subscriber"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newFeedCmd() *cobra.Command {
	var (
		products []string
		channels []string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Stream websocket feed messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, _ := newAccountSvc()

			g, ctx := errgroup.WithContext(cmd.Context())

			eventBroker := broker.New(logger)
			go eventBroker.Start(ctx)

			st := storage.NewStorage()
			monitorSub := subscriber.NewMonitor(eventBroker, logger)
			tickerSub := subscriber.NewTicker(st, eventBroker, logger)

			g.Go(func() error { return monitorSub.Start(ctx) })
			g.Go(func() error { return tickerSub.Start(ctx) })

			if !quiet {
				printerSub := subscriber.NewPrinter(os.Stdout, eventBroker, logger)
				g.Go(func() error { return printerSub.Start(ctx) })
			}

			f, err := feed.Dial(ctx, cfg, g, logger)
			if err != nil {
				return err
			}

			g.Go(func() error {
				for msg := range f.ReadCh {
					eventBroker.Publish(msg)
				}

				if ctx.Err() != nil {
					return nil
				}

				return dictionary.ErrFeedClosed
			})

			if err := f.Subscribe(products, channels); err != nil {
				f.Close()
				_ = g.Wait()

				return err
			}

			err = g.Wait()

			summary(st, f.Received(), monitorSub.Missed())

			if err == nil || errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		},
	}

	cmd.Flags().StringSliceVar(&products, "product", []string{"BTC-USD"}, "product ids")
	cmd.Flags().StringSliceVar(
		&channels,
		"channel",
		[]string{dictionary.TickerChannel, dictionary.HeartbeatChannel},
		"channels to subscribe",
	)
	cmd.Flags().BoolVar(&quiet, "quiet", false, "only print the summary")

	return cmd
}

func summary(st *storage.Storage, received, missed int64) {
	heading("%d messages received, %d missed", received, missed)

	for _, id := range st.Products() {
		t := st.GetTicker(id)
		if t.Price == nil {
			continue
		}

		fmt.Fprintln(os.Stderr, aurora.Bold(id), t.Price.String())
	}
}
