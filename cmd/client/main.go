package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/connectfour/client/game"
	"github.com/cbodonnell/connectfour/client/network"
	"github.com/cbodonnell/connectfour/client/scenes"
	"github.com/cbodonnell/connectfour/client/session"
	"github.com/cbodonnell/connectfour/pkg/config"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/cbodonnell/connectfour/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	serverURL := flag.String("server-url", cfg.ServerURL, "game service base URL")
	transport := flag.String("transport", cfg.Transport, "service transport (http, ws)")
	movePause := flag.Duration("move-pause", cfg.MovePause, "pause between your move and the computer's")
	requestTimeout := flag.Duration("request-timeout", cfg.RequestTimeout, "per-request timeout (0 disables)")
	animate := flag.Bool("animate", cfg.Animate, "animate falling discs")
	debug := flag.Bool("debug", false, "draw the debug overlay")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	service, err := network.NewService(network.NewServiceOptions{
		Transport: *transport,
		BaseURL:   *serverURL,
		Timeout:   *requestTimeout,
		Logger:    logger,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create service client: %v", err))
	}
	if closer, ok := service.(io.Closer); ok {
		defer closer.Close()
	}

	s, err := session.New(session.NewSessionOptions{
		Service: service,
		Pause:   *movePause,
		Logger:  logger,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create session: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	strategy := scenes.DropAnimated
	if !*animate {
		strategy = scenes.DropInstant
	}
	g, err := game.NewGame(game.NewGameOptions{
		Context:  ctx,
		Debug:    *debug,
		Session:  s,
		Strategy: strategy,
		Logger:   logger,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("Connect Four")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
