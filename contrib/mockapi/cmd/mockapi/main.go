package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/userdesk/userdesk.go/contrib/mockapi"
	"github.com/userdesk/userdesk.go/pkg/logger"
)

func main() {
	// Create config with defaults
	config := mockapi.NewConfig()

	flag.StringVar(&config.Addr, "addr", config.Addr, "Address to listen on")
	flag.StringVar(&config.LogPath, "log", "", "Log file path (default stderr)")
	flag.BoolVar(&config.Verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	build := logger.New()
	if config.LogPath != "" {
		build = build.FromPath(config.LogPath)
	}
	logData, err := build.Make()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log := logData.Logger
	if !config.Verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mockapi.NewServer(config, log)
	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}
