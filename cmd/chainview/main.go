// Package main runs the chain view: a bitcoin node follower with a bounded, time-travelable block view.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/ingester"
	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/tracker"
	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/view"
	"github.com/goodnatureofminers/blockinsight7000-chainview/internal/metrics"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Network           string                  `long:"network" env:"CHAINVIEW_NETWORK" description:"network name" default:"mainnet"`
	RPCURL            string                  `long:"rpc-url" env:"CHAINVIEW_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser           string                  `long:"rpc-user" env:"CHAINVIEW_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword       string                  `long:"rpc-password" env:"CHAINVIEW_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRPS            int                     `long:"rpc-rps" env:"CHAINVIEW_RPC_RPS" description:"max RPC requests per second" default:"50"`
	Workers           int                     `long:"workers" env:"CHAINVIEW_WORKERS" description:"concurrent header fetches" default:"4"`
	RetentionWindow   uint64                  `long:"retention-window" env:"CHAINVIEW_RETENTION_WINDOW" description:"heights kept behind the newest block" default:"20"`
	MaxSnapshots      int                     `long:"max-snapshots" env:"CHAINVIEW_MAX_SNAPSHOTS" description:"history capacity" default:"200"`
	DuplicatePolicy   tracker.DuplicatePolicy `long:"duplicate-policy" env:"CHAINVIEW_DUPLICATE_POLICY" description:"handling of re-added blocks" choice:"replace" choice:"reject" default:"replace"`
	BackfillDepth     uint64                  `long:"backfill-depth" env:"CHAINVIEW_BACKFILL_DEPTH" description:"heights below the tip loaded at start" default:"6"`
	ConfirmationDepth uint64                  `long:"confirmation-depth" env:"CHAINVIEW_CONFIRMATION_DEPTH" description:"blocks needed before a block is confirmed" default:"6"`
	PollInterval      time.Duration           `long:"poll-interval" env:"CHAINVIEW_POLL_INTERVAL" description:"node polling interval" default:"5s"`
	Addr              string                  `long:"addr" env:"CHAINVIEW_ADDR" description:"grpc addr" default:":8000"`
	RestAddr          string                  `long:"rest-addr" env:"CHAINVIEW_REST_ADDR" description:"rest addr" default:":8001"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("chainview failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("network", cfg.Network))

	chainView, err := view.New(view.Config{
		Tracker: tracker.Config{
			RetentionWindow: cfg.RetentionWindow,
			DuplicatePolicy: cfg.DuplicatePolicy,
		},
		MaxSnapshots: cfg.MaxSnapshots,
	}, metrics.NewChainView(), logger)
	if err != nil {
		return fmt.Errorf("init chain view: %w", err)
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init btc rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := bitcoin.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Network))

	stream, err := bitcoin.NewStream(rpc, metrics.NewStream(cfg.Network), bitcoin.Config{
		BackfillDepth:     cfg.BackfillDepth,
		ConfirmationDepth: cfg.ConfirmationDepth,
		WorkerCount:       cfg.Workers,
		RPS:               cfg.RPCRPS,
	}, logger)
	if err != nil {
		return fmt.Errorf("init stream: %w", err)
	}

	svc, err := ingester.NewService(stream, chainView, metrics.NewIngester(cfg.Network), cfg.PollInterval, logger)
	if err != nil {
		return fmt.Errorf("init ingester: %w", err)
	}

	if err := startServers(ctx, cfg.Addr, cfg.RestAddr, chainView, logger); err != nil {
		return err
	}

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("chainview stopped")
	return nil
}
