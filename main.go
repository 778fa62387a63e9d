package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/ticket-day/auth"
	"github.com/danielhkuo/ticket-day/cliparse"
	"github.com/danielhkuo/ticket-day/notify"
	"github.com/danielhkuo/ticket-day/qr"
	"github.com/danielhkuo/ticket-day/router"
	"github.com/danielhkuo/ticket-day/tickets"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Wire up the day state and its collaborators
	engine := tickets.NewEngine()
	sessions := auth.NewSessions(cfg.SessionTTL)
	creds := auth.Credentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword}
	qrGen := qr.NewGenerator(cfg.QRPath)
	dispatcher := notify.NewDispatcher(notify.FromConfig(cfg))
	defer dispatcher.Close()

	// Write the initial entry QR so /qr works before the first open_form
	if err := qrGen.Generate(cfg.BaseURL + "/form"); err != nil {
		slog.Error("initial QR generation failed", "error", err)
	}

	// Create router
	mux := router.NewRouter(router.Deps{
		Engine:     engine,
		Sessions:   sessions,
		Creds:      creds,
		QR:         qrGen,
		Dispatcher: dispatcher,
		Cfg:        cfg,
	})

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
