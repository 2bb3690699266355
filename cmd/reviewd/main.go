package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	legalreviewv1 "github.com/Tanjim-Islam/legal-tabular-review/gen/legalreview/v1"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/common"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/export"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/ingest"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/repository"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/review"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/run"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/segment"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/server"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(slogger)

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// DB
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, slogger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repository.Close(entc, pool, slogger)

	if pool != nil {
		if err := repository.HealthCheck(ctx, pool, 3*time.Second, slogger); err != nil {
			log.Fatalf("DB health failed: %v", err)
		}
		log.Infow("DB health OK")
	}
	if err := repository.Migrate(ctx, entc, slogger); err != nil {
		log.Fatalf("migrating schema: %v", err)
	}

	// Engine wiring
	store := repository.NewStore(entc, slogger)
	inventory := ingest.NewInventory(cfg.Paths.DataDir, cfg.Paths.UploadsDir, slogger)
	orchestrator := run.NewOrchestrator(inventory, store, segment.New(slogger), slogger,
		run.WithWorkers(cfg.Run.Workers),
		run.WithSnippetRadius(cfg.Run.SnippetRadius),
		run.WithTemplatePath(cfg.Paths.TemplatePath),
	)
	reviews := review.NewService(store, slogger)
	exporter := export.NewService(slogger)

	// Keep the persisted document inventory in sync as files land.
	events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{cfg.Paths.DataDir, cfg.Paths.UploadsDir},
		InitialScan: true,
		Debounce:    500 * time.Millisecond,
	}, slogger)
	if err != nil {
		log.Warnf("document watcher disabled: %v", err)
	} else {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-events:
					if !ok {
						return
					}
					docs, err := inventory.List(ctx)
					if err != nil {
						log.Warnf("inventory refresh: %v", err)
						continue
					}
					if err := store.Documents.UpsertAll(ctx, docs); err != nil {
						log.Warnf("inventory persist: %v", err)
						continue
					}
					log.Infow("document inventory refreshed", "trigger", path, "count", len(docs))
				case err, ok := <-watchErrs:
					if ok && err != nil {
						log.Warnf("watcher: %v", err)
					}
				}
			}
		}()
	}

	// gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.RequestIDInterceptor(logger)))
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	// Business service
	svc := server.NewReviewService(orchestrator, reviews, exporter, inventory, logger)
	legalreviewv1.RegisterReviewServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}
