// Package worker runs the outbox dispatcher: a polling loop that delivers
// recorded events plus a small HTTP surface for probes and metrics.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"slotwise/config"
	"slotwise/internal/delivery"
	"slotwise/internal/delivery/middleware"
	"slotwise/internal/domain/lifecycle"
	"slotwise/internal/errors"
	"slotwise/internal/infra/metrics"
	"slotwise/internal/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg        *config.Config
	logger     *slog.Logger
	server     *echo.Echo
	dispatchUC usecase.EventDispatchUsecase
	interval   time.Duration
	batchSize  int

	loopCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.EventDispatchUsecase
	Metrics    *metrics.Metrics `optional:"true"`
}

// NewServer creates the dispatcher delivery
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(
		echomiddleware.Recover(),
		middleware.RequestID(params.Logger),
		middleware.RequestLogger(params.Logger, params.Cfg.Env.Debug),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(params.Metrics.Handler()))
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	srv := &workerServer{
		loopCtx:    loopCtx,
		cancel:     cancel,
		cfg:        params.Cfg,
		logger:     params.Logger,
		server:     e,
		dispatchUC: params.DispatchUC,
		interval:   params.Cfg.Events.PollInterval,
		batchSize:  params.Cfg.Events.BatchSize,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the dispatch loop and blocks on the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(s.loopCtx)
	}()

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// run dispatches one round per tick. A round that leased a full batch is
// followed immediately by another so a backlog drains without waiting.
func (s *workerServer) run(ctx context.Context) {
	s.logger.Info("Event dispatcher started",
		slog.Duration("poll_interval", s.interval),
		slog.Int("batch_size", s.batchSize),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		full := s.dispatchOnce(ctx)
		if full && ctx.Err() == nil {
			continue
		}

		select {
		case <-ctx.Done():
			s.logger.Info("Event dispatcher stopped")

			return
		case <-ticker.C:
		}
	}
}

func (s *workerServer) dispatchOnce(ctx context.Context) bool {
	result, err := s.dispatchUC.DispatchDue(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("Dispatch round failed", slog.Any("error", err))
		}

		return false
	}
	if result.Leased > 0 {
		s.logger.Debug("Dispatch round finished",
			slog.Int("leased", result.Leased),
			slog.Int("delivered", result.Delivered),
			slog.Int("retrying", result.Retrying),
			slog.Int("dead_lettered", result.DeadLettered),
		)
	}

	return s.batchSize > 0 && result.Leased >= s.batchSize
}

// stop drains the in-flight round, then shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	s.cancel()
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		s.logger.Warn("Event dispatcher did not stop before the shutdown deadline")
	}

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
