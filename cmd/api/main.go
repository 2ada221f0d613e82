package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/stock-ledger/internal/application/archive"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/notify"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/postgres"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/redislock"
	httpRouter "github.com/tu-usuario/stock-ledger/internal/interfaces/http"
	"github.com/tu-usuario/stock-ledger/pkg/config"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

func runMigrations(dsn string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return goose.Up(db, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	branchRepo := postgres.NewBranchRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	dispatcher := notify.NewLogDispatcher()
	adjustUC := inventory.NewAdjustStockUseCase(txRunner, userRepo, dispatcher, cfg.Alert.LowStockThreshold)
	queryUC := inventory.NewStockQueryUseCase(branchRepo, snapshotRepo, movementRepo, summaryRepo)

	// Lock distribuido solo si hay Redis; sin Redis se asume instancia única.
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
	archiveUC := archive.NewMonthlyArchiveUseCase(txRunner, jobLock, cfg.Archive.RetentionMonths)

	schedCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()
	if cfg.Archive.Enabled {
		go archive.NewScheduler(archiveUC).Start(schedCtx)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AdjustUC:      adjustUC,
		QueryUC:       queryUC,
		JWTSecret:     cfg.JWT.Secret,
		ExposeMetrics: cfg.Metrics.Enabled,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopScheduler()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
