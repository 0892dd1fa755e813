package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"github.com/tamu-thinktank/website-sub000/internal/auth"
	"github.com/tamu-thinktank/website-sub000/internal/cache"
	"github.com/tamu-thinktank/website-sub000/internal/config"
	"github.com/tamu-thinktank/website-sub000/internal/database"
	"github.com/tamu-thinktank/website-sub000/internal/handler"
	"github.com/tamu-thinktank/website-sub000/internal/logger"
	"github.com/tamu-thinktank/website-sub000/internal/repository"
	"github.com/tamu-thinktank/website-sub000/internal/scheduler"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Redis      *redis.Client
	Logger     *zap.Logger
	Config     *config.Config
	TokenMaker *auth.JWTMaker
	Handler    *handler.Application
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.MaxConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	redisClient := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, redisClient); err != nil {
		sugar.Warnw("redis unreachable, result cache degraded", "err", err)
	}

	repo := repository.NewRepository(pool)
	resultCache := cache.NewResultCache(redisClient)

	engine := scheduler.New(repo, resultCache, log)
	cached := scheduler.NewCached(engine, resultCache, cfg.Scheduler.ResultCacheTTL, log)

	handlerApp := &handler.Application{
		Logger:    log,
		Scheduler: cached,
		Store:     repo,
	}

	app := &application{
		DB:         pool,
		Redis:      redisClient,
		Logger:     log,
		Config:     cfg,
		TokenMaker: auth.NewJWTMaker(cfg.JWT.Secret),
		Handler:    handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
