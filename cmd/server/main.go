package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/esc4n0rx/Cortex/internal/config"
	"github.com/esc4n0rx/Cortex/internal/domain/corte"
	"github.com/esc4n0rx/Cortex/internal/domain/demanda"
	"github.com/esc4n0rx/Cortex/internal/domain/estoque"
	"github.com/esc4n0rx/Cortex/internal/infra/db"
	httpx "github.com/esc4n0rx/Cortex/internal/infra/http"
	"github.com/esc4n0rx/Cortex/internal/infra/logger"
	"github.com/esc4n0rx/Cortex/internal/infra/metrics"
	"github.com/esc4n0rx/Cortex/internal/infra/notify"
	"github.com/esc4n0rx/Cortex/internal/web"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	var obs corte.Observador
	if cfg.Metrics.Enabled {
		obs = metrics.NewCorteObservador(prometheus.DefaultRegisterer)
	}

	cortes := corte.NewRepo(pool)
	engine := corte.NewEngine(
		log,
		estoque.NewRepo(pool),
		demanda.NewRepo(pool),
		cortes,
		obs,
		cfg.Corte.PaginaDemanda,
	)

	alerta, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.AlertChatID, log)
	if err != nil {
		log.Error("telegram init failed", "err", err)
		return
	}
	var notif web.Notificador
	if alerta != nil {
		notif = alerta
	}

	handler := web.NewHandler(log, engine, cortes, notif)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, handler)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
