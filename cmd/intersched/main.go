package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikmy/intersched/internal/api"
	"github.com/nikmy/intersched/internal/cache"
	"github.com/nikmy/intersched/internal/repo"
	"github.com/nikmy/intersched/internal/scheduling"
	"github.com/nikmy/intersched/internal/telegram"
	"github.com/nikmy/intersched/pkg/errors"
	"github.com/nikmy/intersched/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := loadConfig(parseFlags())
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	storage, err := repo.New(ctx, log, cfg.Storage)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init storage"))
	}

	var (
		matchCache scheduling.Cache
		closeCache = func() error { return nil }
	)
	if cfg.Cache.Enabled {
		rc, err := cache.New(ctx, cfg.Cache, log)
		if err != nil {
			log.Panic(errors.WrapFail(err, "init match cache"))
		}
		matchCache, closeCache = rc, rc.Close
	}

	sched := scheduling.New(storage, matchCache, log)
	server := api.NewServer(cfg.HTTP, log, storage, sched)

	var bot *telegram.Bot
	if cfg.Telegram.Enabled {
		bot, err = telegram.New(log, cfg.Telegram, storage, sched)
		if err != nil {
			log.Panic(errors.WrapFail(err, "initialize bot service"))
		}
	}

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		if bot != nil {
			bot.Stop()
		}

		err := errors.Join(
			server.Shutdown(shutdownCtx),
			errors.WrapFail(closeCache(), "close match cache"),
			storage.Close(shutdownCtx),
		)
		if err != nil {
			log.Error(err)
		}

		close(stopped)
	})

	if bot != nil {
		bot.Run(ctx)
		stdlog.Println("Bot has been started")
	}

	go func() {
		err := server.Serve(ctx)
		if err != nil && ctx.Err() == nil {
			log.Error(errors.WrapFail(err, "serve http"))
			cancel()
		}
	}()
	stdlog.Println("Server has been started")

	<-stopped
	stdlog.Println("Shutdown complete")
}
