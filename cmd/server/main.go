package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc"

	"event-board-api/internal/auth"
	"event-board-api/internal/config"
	"event-board-api/internal/eventpb"
	gweb "event-board-api/internal/grpcweb"
	"event-board-api/internal/handler"
	"event-board-api/internal/metrics"
	"event-board-api/internal/middleware"
	"event-board-api/internal/store"
	"event-board-api/internal/validate"
	"event-board-api/internal/workflow"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("CONFIG_FILE"), "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := cfg.Logger(os.Stderr)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := openBackend(ctx, cfg.Store)
	if err != nil {
		return err
	}
	st := store.New(backend)
	defer st.Close()
	log.Info("store ready", "driver", cfg.Store.Driver)

	v, err := validate.New()
	if err != nil {
		return fmt.Errorf("validator: %w", err)
	}
	admin, err := auth.NewAdmin(cfg.AdminID, cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		return fmt.Errorf("admin: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	svc := workflow.New(st, v, workflow.WithMetrics(m), workflow.WithLogger(log))
	h := handler.New(svc, admin, cfg.JWTSecret, log)

	// grpc server
	rl := middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	srv := grpc.NewServer(
		grpc.ForceServerCodec(eventpb.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.Recover(log),
			middleware.Logging(log, m),
			middleware.RateLimit(rl),
			middleware.Auth(cfg.JWTSecret),
		),
	)
	eventpb.RegisterEventBoardServer(srv, h)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	errc := make(chan error, 2)
	go func() {
		log.Info("grpc listening", "port", cfg.GRPCPort)
		errc <- srv.Serve(lis)
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := gweb.New("localhost:"+cfg.GRPCPort, log)
	if err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	defer bridge.Close()

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})
	mux.Handle("/", bridge.Handler())

	httpSrv := &http.Server{Addr: ":" + cfg.WebPort, Handler: mux}
	go func() {
		log.Info("grpc-web listening", "port", cfg.WebPort)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errc:
		log.Error("listener failed", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", "err", err)
	}
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		srv.Stop()
	}
	return err
}

func openBackend(ctx context.Context, c config.Store) (store.Backend, error) {
	switch c.Driver {
	case config.DriverSQLite:
		return store.OpenSQLite(ctx, c.SQLiteDSN)
	case config.DriverPostgres:
		return store.OpenPostgres(ctx, c.DatabaseURL)
	default:
		return store.NewFileBackend(c.Paths())
	}
}
