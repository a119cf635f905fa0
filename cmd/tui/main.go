package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cbodonnell/connectfour/client/network"
	"github.com/cbodonnell/connectfour/client/session"
	"github.com/cbodonnell/connectfour/client/tui"
	"github.com/cbodonnell/connectfour/pkg/config"
	"github.com/cbodonnell/connectfour/pkg/log"
	tea "github.com/charmbracelet/bubbletea"
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
	logFile := flag.String("log-file", "", "write logs to this file instead of discarding them")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	// the terminal belongs to the UI, so logs only go to a file when asked
	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Sprintf("Failed to open log file: %v", err))
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)

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

	model := tui.NewModel(tui.NewModelOptions{
		Context: context.Background(),
		Session: s,
		Logger:  logger,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}
