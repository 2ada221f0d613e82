package main

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/stock-ledger/internal/application/archive"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/postgres"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/redislock"
	"github.com/tu-usuario/stock-ledger/pkg/config"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// Disparo manual del archivado mensual (operación/recuperación). Usa el mismo
// lock que el scheduler in-process: correrlo contra un deployment vivo es seguro.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	var jobLock archive.JobLock = redislock.NoopLocker{}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = rdb.Close() }()
		jobLock = redislock.New(rdb)
	}

	uc := archive.NewMonthlyArchiveUseCase(postgres.NewTxRunner(pool), jobLock, cfg.Archive.RetentionMonths)
	if err := uc.Run(ctx, time.Now()); err != nil {
		os.Exit(1)
	}
}
