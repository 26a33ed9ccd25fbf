package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nftmakerio/masumi-payment-service/internal/ledger"
	"github.com/nftmakerio/masumi-payment-service/internal/metrics"
	"github.com/nftmakerio/masumi-payment-service/internal/model"
	"github.com/nftmakerio/masumi-payment-service/internal/repository/postgres"
	"github.com/nftmakerio/masumi-payment-service/internal/scheduler"
	"github.com/nftmakerio/masumi-payment-service/internal/service/batcher"
	"github.com/nftmakerio/masumi-payment-service/internal/service/executor"
	"github.com/nftmakerio/masumi-payment-service/internal/service/reconciler"
	"github.com/nftmakerio/masumi-payment-service/internal/txvault"
)

type config struct {
	PostgresDSN string `long:"postgres-dsn" env:"SETTLEMENT_POSTGRES_DSN" description:"Postgres DSN"`
	VaultURL    string `long:"vault-url" env:"SETTLEMENT_VAULT_URL" description:"Transaction vault base URL" default:"http://127.0.0.1:8341"`
	VaultToken  string `long:"vault-token" env:"SETTLEMENT_VAULT_TOKEN" description:"Transaction vault auth token"`

	ReconcileInterval time.Duration `long:"reconcile-interval" env:"SETTLEMENT_RECONCILE_INTERVAL" description:"Interval between ledger reconciliation passes" default:"30s"`
	BatchInterval     time.Duration `long:"batch-interval" env:"SETTLEMENT_BATCH_INTERVAL" description:"Interval between payment batching passes" default:"30s"`
	ExecuteInterval   time.Duration `long:"execute-interval" env:"SETTLEMENT_EXECUTE_INTERVAL" description:"Interval between action executor passes" default:"1m"`

	MetricsAddr string `long:"metrics-addr" env:"SETTLEMENT_METRICS_ADDR" description:"Prometheus metrics listen address" default:":9090"`
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

	if cfg.PostgresDSN == "" {
		logger.Fatal("Postgres DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("settlement service failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := postgres.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer repo.Close()

	factory := ledger.NewFactory(logger)
	vault := txvault.NewClient(cfg.VaultURL, cfg.VaultToken, logger)

	reconcileSvc, err := reconciler.New(repo, reconcilerClients{factory}, metrics.NewReconciler(), logger)
	if err != nil {
		return fmt.Errorf("init reconciler: %w", err)
	}
	batchSvc, err := batcher.New(repo, batcherClients{factory}, vault, metrics.NewBatcher(), logger)
	if err != nil {
		return fmt.Errorf("init batcher: %w", err)
	}

	executorMetrics := metrics.NewExecutor()
	execClients := executorClients{factory}
	executors := make([]*executor.Executor, 0, 4)
	for _, build := range []func(executor.Store, executor.ClientFactory, executor.Vault, executor.Metrics, *zap.Logger) (*executor.Executor, error){
		executor.NewSubmitResult,
		executor.NewCollect,
		executor.NewTimeoutRefund,
		executor.NewDenyRefund,
	} {
		exec, err := build(repo, execClients, vault, executorMetrics, logger)
		if err != nil {
			return fmt.Errorf("init executor: %w", err)
		}
		executors = append(executors, exec)
	}

	sched := scheduler.New(logger)
	sched.Register(scheduler.NewJob("reconcile", reconcileSvc.Run), cfg.ReconcileInterval)
	sched.Register(scheduler.NewJob("batch", batchSvc.Run), cfg.BatchInterval)
	for _, exec := range executors {
		sched.Register(exec, cfg.ExecuteInterval)
	}

	metricsErr := make(chan error, 1)
	metricsSrv := &http.Server{Addr: cfg.MetricsAddr, Handler: promhttp.Handler()}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			metricsErr <- err
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", zap.Error(err))
		}
	}()

	runErr := make(chan error, 1)
	go func() {
		runErr <- sched.Run(ctx)
	}()

	select {
	case err := <-metricsErr:
		return fmt.Errorf("metrics server: %w", err)
	case err := <-runErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

// The ledger factory returns concrete clients; each service consumes its own
// narrowed interface, so a thin adapter sits between them.
type reconcilerClients struct {
	factory *ledger.Factory
}

func (c reconcilerClients) ForSource(source model.PaymentSource) (reconciler.LedgerClient, error) {
	return c.factory.ForSource(source)
}

type batcherClients struct {
	factory *ledger.Factory
}

func (c batcherClients) ForSource(source model.PaymentSource) (batcher.BalanceClient, error) {
	return c.factory.ForSource(source)
}

type executorClients struct {
	factory *ledger.Factory
}

func (c executorClients) ForSource(source model.PaymentSource) (executor.LedgerClient, error) {
	return c.factory.ForSource(source)
}
