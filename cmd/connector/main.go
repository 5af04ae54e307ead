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

	"github.com/PedroCamargo-dev/fineract-core-connector/internal/config"
	domain_identifier "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/identifier"
	impl_fineract "github.com/PedroCamargo-dev/fineract-core-connector/internal/impl/gateway/fineract"
	impl_platform "github.com/PedroCamargo-dev/fineract-core-connector/internal/impl/gateway/platform"
	impl_rest "github.com/PedroCamargo-dev/fineract-core-connector/internal/impl/gateway/rest"
	impl_sdkclient "github.com/PedroCamargo-dev/fineract-core-connector/internal/impl/gateway/sdkclient"
	impl_connector "github.com/PedroCamargo-dev/fineract-core-connector/internal/impl/usecase/connector"
	platform_logging "github.com/PedroCamargo-dev/fineract-core-connector/internal/platform/logging"
	transport_http "github.com/PedroCamargo-dev/fineract-core-connector/internal/transport/httpapi"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "connector: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, _, err := platform_logging.New(platform_logging.Config{
		Environment: platform_logging.Environment(cfg.EnvName),
		Level:       cfg.LogLevel,
		Service:     "fineract-core-connector",
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	breaker := impl_rest.BreakerConfig{
		MaxRequests:         cfg.Breaker.MaxRequests,
		Interval:            cfg.Breaker.Interval,
		OpenTimeout:         cfg.Breaker.OpenTimeout,
		ConsecutiveFailures: cfg.Breaker.ConsecutiveFailures,
	}

	ledger, err := impl_fineract.New(impl_fineract.Config{
		BaseURL:  cfg.Fineract.BaseURL,
		TenantID: cfg.Fineract.TenantID,
		Username: cfg.Fineract.Username,
		Password: cfg.Fineract.Password,
		Timeout:  cfg.Fineract.Timeout,
		Breaker:  breaker,
	}, nil, log)
	if err != nil {
		return fmt.Errorf("fineract client: %w", err)
	}

	gateway, err := impl_sdkclient.New(impl_sdkclient.Config{
		BaseURL: cfg.SDK.BaseURL,
		Timeout: cfg.SDK.Timeout,
		Breaker: breaker,
	}, nil, log)
	if err != nil {
		return fmt.Errorf("sdk client: %w", err)
	}

	codec := domain_identifier.NewCodec(
		cfg.Fineract.BankCountryCode,
		cfg.Fineract.CheckDigits,
		cfg.Fineract.BankID,
		cfg.Fineract.AccountPrefix,
	)

	connector := impl_connector.NewConnectorUsecaseImpl(
		impl_connector.Settings{
			IDType:        cfg.Fineract.IDType,
			Locale:        cfg.Fineract.Locale,
			PaymentTypeID: cfg.Fineract.PaymentTypeID,
			BankID:        cfg.Fineract.BankID,
		},
		codec,
		ledger,
		gateway,
		impl_platform.SystemClock{},
		impl_platform.UUIDGenerator{},
		log,
	)

	handler, err := transport_http.NewHandler(connector, map[string]transport_http.HealthCheck{
		"fineract": ledger.Healthy,
		"sdk":      gateway.Healthy,
	}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	servers := []*http.Server{
		{Addr: cfg.Server.SDKAddr(), Handler: handler.SDKRouter(), ReadHeaderTimeout: readHeaderTimeout},
		{Addr: cfg.Server.DFSPAddr(), Handler: handler.DFSPRouter(), ReadHeaderTimeout: readHeaderTimeout},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			log.Info("listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		log.Error("connector stopped with error", zap.Error(err))
		return err
	}

	log.Info("connector stopped")
	return nil
}
