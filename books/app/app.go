package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexkharrod/webapps/books/config"
	"github.com/alexkharrod/webapps/books/internal/handler"
	"github.com/alexkharrod/webapps/books/internal/repository"
	"github.com/alexkharrod/webapps/books/internal/service"
	"github.com/alexkharrod/webapps/books/schema"
	"github.com/alexkharrod/webapps/pkg/logger"
	"github.com/alexkharrod/webapps/pkg/postgres"
	"github.com/alexkharrod/webapps/pkg/server"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "books")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, schema.Files)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, log)

	h := handler.New(svc, log)
	srv := server.NewServer(net.JoinHostPort(cfg.Server.Host, cfg.Server.Port), cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
