// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/ticket-day/auth"
	"github.com/danielhkuo/ticket-day/cliparse"
	"github.com/danielhkuo/ticket-day/handlers"
	"github.com/danielhkuo/ticket-day/middleware"
	"github.com/danielhkuo/ticket-day/notify"
	"github.com/danielhkuo/ticket-day/qr"
	"github.com/danielhkuo/ticket-day/tickets"
)

type Deps struct {
	Engine     *tickets.Engine
	Sessions   *auth.Sessions
	Creds      auth.Credentials
	QR         *qr.Generator
	Dispatcher *notify.Dispatcher
	Cfg        cliparse.Config
}

func NewRouter(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(d.Engine, d.Sessions, d.Creds, d.QR, d.Dispatcher, d.Cfg)
	publicHandler := handlers.NewPublicHandler(d.Engine, d.Cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin session
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /admin/logout", middleware.WithLogging(middleware.RequireAdmin(d.Sessions, adminHandler.Logout)))

	// Day lifecycle (admin operations)
	mux.HandleFunc("GET /admin", middleware.WithLogging(middleware.RequireAdmin(d.Sessions, adminHandler.Panel)))
	mux.HandleFunc("POST /admin/open_form", middleware.WithLogging(middleware.RequireAdmin(d.Sessions, adminHandler.OpenForm)))
	mux.HandleFunc("POST /admin/generate_numbers", middleware.WithLogging(middleware.RequireAdmin(d.Sessions, adminHandler.GenerateNumbers)))
	mux.HandleFunc("POST /admin/close_form", middleware.WithLogging(middleware.RequireAdmin(d.Sessions, adminHandler.CloseForm)))

	// Attendee operations (public)
	mux.HandleFunc("GET /form", middleware.WithLogging(publicHandler.FormStatus))
	mux.HandleFunc("POST /form", middleware.WithLogging(publicHandler.Submit))
	mux.HandleFunc("GET /check_number", middleware.WithLogging(publicHandler.CheckNumber))
	mux.HandleFunc("POST /check_number", middleware.WithLogging(publicHandler.CheckNumber))

	// Entry QR image (public)
	mux.HandleFunc("GET /qr", middleware.WithLogging(adminHandler.QRCode))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ticket-day API v1"))
	})

	return mux
}
