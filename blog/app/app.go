package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexkharrod/webapps/blog/config"
	"github.com/alexkharrod/webapps/blog/internal/handler"
	"github.com/alexkharrod/webapps/blog/internal/mailer"
	"github.com/alexkharrod/webapps/blog/internal/posts"
	"github.com/alexkharrod/webapps/blog/internal/service"
	"github.com/alexkharrod/webapps/pkg/logger"
	"github.com/alexkharrod/webapps/pkg/server"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "blog")

	// The post collection is loaded once at startup. A dead feed means a
	// blog with no content, so refuse to start.
	feed := posts.NewClient(cfg.Posts, log)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), time.Minute)
	defer loadCancel()
	postList, err := feed.Fetch(loadCtx)
	if err != nil {
		log.Fatal("posts fetch", zap.Error(err))
	}
	log.Info("posts loaded", zap.Int("count", len(postList)))

	relay := mailer.New(cfg.Mailer, log)
	svc := service.NewService(postList, relay, log)

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
	log.Info("Graceful shutdown finished")
}
