package cmd

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/soulgarden/cbpro/client"
	"github.com/soulgarden/cbpro/conf"
	"github.com/soulgarden/cbpro/service"
	"github.com/spf13/cobra"
)

//nolint: gochecknoglobals
var rootCmd = &cobra.Command{
	Use:           "cbpro",
	Short:         "Client for the Coinbase Pro exchange API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.AddCommand(
		newProductsCmd(),
		newTickerCmd(),
		newBookCmd(),
		newTradesCmd(),
		newCandlesCmd(),
		newTimeCmd(),
		newCurrenciesCmd(),
		newAccountsCmd(),
		newHistoryCmd(),
		newHoldsCmd(),
		newOrdersCmd(),
		newFillsCmd(),
		newPlaceCmd(),
		newCancelCmd(),
		newFeedCmd(),
	)

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := service.NewManager(&logger).ListenSignal(context.Background())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Err(err).Msg("command execution failed")
		os.Exit(1)
	}
}

func newLogger(cfg *conf.Client) *zerolog.Logger {
	defaultLogLevel := zerolog.InfoLevel
	if cfg.Debug {
		defaultLogLevel = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stderr).Level(defaultLogLevel).With().Timestamp().Caller().Logger()

	return &logger
}

// newAccountSvc wires config, logger and transport. Public calls work
// without credentials.
func newAccountSvc() (*conf.Client, *zerolog.Logger, *service.Account) {
	cfg := conf.New()
	logger := newLogger(cfg)
	cli := client.New(cfg, logger)

	return cfg, logger, service.NewAccount(cfg, cli, logger)
}
