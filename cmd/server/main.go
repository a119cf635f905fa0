package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/connectfour/pkg/api"
	"github.com/cbodonnell/connectfour/pkg/config"
	"github.com/cbodonnell/connectfour/pkg/game"
	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/cbodonnell/connectfour/pkg/state"
	"github.com/cbodonnell/connectfour/pkg/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	port := flag.Int("port", cfg.Port, "port to listen on")
	mode := flag.String("mode", cfg.Mode, "game mode (computer, human)")
	opponent := flag.String("opponent", cfg.Opponent, "automated opponent (random, first)")
	seed := flag.Int64("seed", cfg.Seed, "random opponent seed (0 uses the current time)")
	thinkTime := flag.Duration("think-time", cfg.ThinkTime, "delay before the automated reply")
	rateLimit := flag.Float64("rate-limit", cfg.RateLimit, "per-client requests per second (0 disables)")
	rateBurst := flag.Int("rate-burst", cfg.RateBurst, "per-client request burst")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting server version %s", version.Get())

	gameMode := types.ModeVsAutomated
	switch *mode {
	case "computer":
	case "human":
		gameMode = types.ModeVsHuman
	default:
		panic(fmt.Sprintf("Unknown game mode %s", *mode))
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	automated, err := game.ParseOpponent(*opponent, *seed)
	if err != nil {
		panic(fmt.Sprintf("Failed to create opponent: %v", err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	apiServerOpts := api.NewAPIServerOptions{
		Port:         *port,
		StateManager: state.NewInMemoryStateManager(game.New(game.NewGameOptions{Mode: gameMode})),
		Opponent:     automated,
		ThinkTime:    *thinkTime,
		RateLimit:    *rateLimit,
		RateBurst:    *rateBurst,
		Registry:     registry,
	}
	if cfg.CertFile != "" && cfg.KeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: cfg.CertFile,
			KeyFile:  cfg.KeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Stop(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error("Server exited with error: %v", err)
		os.Exit(1)
	}
}
