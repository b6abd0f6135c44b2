package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/userdesk/userdesk.go"
	"github.com/userdesk/userdesk.go/contrib/dashboard"
	"github.com/userdesk/userdesk.go/contrib/mockapi"
	"github.com/userdesk/userdesk.go/pkg/constants"
	"github.com/userdesk/userdesk.go/pkg/gateway"
	"github.com/userdesk/userdesk.go/pkg/logger"
)

func main() {
	endpoint := flag.String("endpoint",
		userdesk.GetEnvOrDefault("USERDESK_ENDPOINT", constants.DefaultEndpoint),
		"Base URL of the user API")
	liveURL := flag.String("live", "", "Websocket URL of a mockapi /live feed (optional)")
	logPath := flag.String("log", "", "Log file path (default: logging disabled)")
	flag.Parse()

	// The terminal belongs to the TUI, so logs only go to a file.
	log := zerolog.Nop()
	if *logPath != "" {
		logData, err := logger.New().FromPath(*logPath).Make()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = logData.Logger
	}

	gw := gateway.New(*endpoint).SetLogger(log)
	store := userdesk.NewStore(gw).SetLogger(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var live <-chan mockapi.Event
	if *liveURL != "" {
		var err error
		live, err = dashboard.Subscribe(ctx, *liveURL, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: live feed: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(dashboard.NewModel(store, live, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
