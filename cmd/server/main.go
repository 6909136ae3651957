package main

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/smzdh/smzdh/config"
	"github.com/smzdh/smzdh/internal/api"
	"github.com/smzdh/smzdh/internal/api/handler"
	"github.com/smzdh/smzdh/internal/repository"
	"github.com/smzdh/smzdh/internal/service"
	"github.com/smzdh/smzdh/internal/session"
	"github.com/smzdh/smzdh/pkg/database"
	"github.com/smzdh/smzdh/pkg/logger"
	"github.com/smzdh/smzdh/pkg/tracing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())
	log := logger.Must(cfg.Server.Mode)
	defer func() { _ = log.Sync() }()

	if cfg.Server.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Server.SentryDSN}); err != nil {
			log.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	shutdownTracing, err := tracing.Init(context.Background(), cfg.Trace.OTLPEndpoint)
	if err != nil {
		log.Fatal("tracing init failed", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	db := must(database.InitDB(cfg))
	defer func() { _ = database.Close(db) }()

	rdb := must(database.InitRedis(cfg))
	defer func() { _ = rdb.Close() }()

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	sessions := session.NewStore(rdb, cfg.Session.TTL)
	userSvc := service.NewUserService(userRepo, sessions)
	postSvc := service.NewPostService(postRepo)
	commentSvc := service.NewCommentService(commentRepo, postRepo)

	h := handler.New(userSvc, postSvc, commentSvc, sessions, log)
	r := api.NewRouter(cfg, h, sessions)

	log.Info("server listening", zap.String("addr", cfg.Server.Addr))
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
