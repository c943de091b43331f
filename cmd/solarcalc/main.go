package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/levenlabs/go-lflag"
	"github.com/levenlabs/go-llog"
	"github.com/raterudder/solarcalc/pkg/calculator"
	"github.com/raterudder/solarcalc/pkg/log"
	"github.com/raterudder/solarcalc/pkg/server"
	"github.com/raterudder/solarcalc/pkg/solaratlas"
	"github.com/raterudder/solarcalc/pkg/storage"
)

func main() {
	// a missing .env is fine outside of development
	_ = godotenv.Load()

	// init packages
	s := storage.Configured()
	atlas := solaratlas.Configured()
	calc := calculator.New(nil, nil, atlas)

	// init server
	srv := server.Configured(calc, s)

	// parse flags
	lflag.Configure()

	// lflag automatically sets llog's level, but we need to set the slog level
	level, err := log.LevelFromLLog(llog.GetLevel())
	if err != nil {
		panic(err)
	}
	log.SetDefaultLogLevel(level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	log.Ctx(ctx).DebugContext(ctx, "logger configured", slog.String("level", level.String()))

	// If initialization inside lflag.Do failed, we wouldn't be here (panic).
	defer func() {
		if err := s.Close(); err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to close storage", slog.Any("error", err))
		}
	}()

	// Run will block until context is canceled or error happens
	if err := srv.Run(ctx); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "server failed", slog.Any("error", err))
		os.Exit(1)
	}
	log.Ctx(ctx).InfoContext(ctx, "server exited cleanly")
}
