package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/radieske/ev-tracker-dashboard/internal/shared/cache"
	"github.com/radieske/ev-tracker-dashboard/internal/shared/config"
	"github.com/radieske/ev-tracker-dashboard/internal/shared/db"
	skafka "github.com/radieske/ev-tracker-dashboard/internal/shared/kafka"
	"github.com/radieske/ev-tracker-dashboard/internal/shared/logger"
	"github.com/radieske/ev-tracker-dashboard/internal/shared/metrics"
	thttp "github.com/radieske/ev-tracker-dashboard/internal/tracker/http"
	"github.com/radieske/ev-tracker-dashboard/internal/tracker/producer"
	"github.com/radieske/ev-tracker-dashboard/internal/tracker/service"
	"github.com/radieske/ev-tracker-dashboard/internal/tracker/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service",
		zap.String("service", cfg.ServiceName),
		zap.String("env", cfg.Env),
		zap.String("store", cfg.StoreBackend),
	)

	// backend da planilha conforme configuração
	var (
		sheet    store.RecordStore
		healthFn metrics.HealthFunc
	)
	switch cfg.StoreBackend {
	case "postgres":
		pg, err := db.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("pg", zap.Error(err))
		}
		defer pg.Close()

		pgStore := store.NewPostgres(pg)
		if err := pgStore.Init(context.Background()); err != nil {
			log.Fatal("pg init", zap.Error(err))
		}
		sheet = pgStore
		healthFn = pg.PingContext
		log.Info("postgres connected")

	case "redis":
		rdb, err := cache.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatal("redis", zap.Error(err))
		}
		defer rdb.Close()

		sheet = store.NewRedis(rdb, cfg.SheetKey)
		healthFn = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info("redis connected")

	case "csv":
		sheet = store.NewCSV(cfg.CSVPath)
		healthFn = func(ctx context.Context) error {
			_, err := os.Stat(cfg.CSVPath)
			return err
		}

	default:
		log.Fatal("unknown STORE_BACKEND", zap.String("backend", cfg.StoreBackend))
	}

	// Kafka writer (topic bet_appended)
	writer := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetAppended)
	defer writer.Close()
	publ := producer.NewKafkaPublisher(writer, cfg.TopicBetAppended)

	svc := service.New(log, sheet, publ, cfg.InitialCapital)

	// metrics/health em porta separada
	metrics.StartMetricsServer(cfg.MetricsPort, healthFn)
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	// HTTP público
	api := &thttp.API{Log: log, Svc: svc}
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: api.Router(),
	}

	log.Info("dashboard-service listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
