// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ticket-day/auth"
	"github.com/danielhkuo/ticket-day/cliparse"
	"github.com/danielhkuo/ticket-day/middleware"
	"github.com/danielhkuo/ticket-day/models"
	"github.com/danielhkuo/ticket-day/notify"
	"github.com/danielhkuo/ticket-day/qr"
	"github.com/danielhkuo/ticket-day/tickets"
)

type AdminHandler struct {
	engine     *tickets.Engine
	sessions   *auth.Sessions
	creds      auth.Credentials
	qr         *qr.Generator
	dispatcher *notify.Dispatcher
	cfg        cliparse.Config
}

func NewAdminHandler(
	engine *tickets.Engine,
	sessions *auth.Sessions,
	creds auth.Credentials,
	qrGen *qr.Generator,
	dispatcher *notify.Dispatcher,
	cfg cliparse.Config,
) *AdminHandler {
	return &AdminHandler{
		engine:     engine,
		sessions:   sessions,
		creds:      creds,
		qr:         qrGen,
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	vals, err := middleware.FormValues(r, "username", "password")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.creds.Check(vals["username"], vals["password"]); err != nil {
		slog.Info("admin login rejected", "username", vals["username"])
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials. Please try again.")
		return
	}

	sessionID, err := h.sessions.Create()
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to establish session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("admin logged in")
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged in"})
}

// Logout handles POST /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName); err == nil {
		h.sessions.Destroy(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:   auth.SessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged out"})
}

// Panel handles GET /admin
func (h *AdminHandler) Panel(w http.ResponseWriter, r *http.Request) {
	mode, subs := h.engine.Snapshot()

	out := models.AdminPanelResponse{
		Mode:        mode,
		Submissions: make([]models.AdminSubmission, 0, len(subs)),
	}
	for _, sub := range subs {
		out.Submissions = append(out.Submissions, models.AdminSubmission{
			Email:        sub.Email,
			FullName:     sub.FullName,
			Phone:        sub.Phone,
			TicketNumber: sub.TicketNumber,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}

// OpenForm handles POST /admin/open_form
func (h *AdminHandler) OpenForm(w http.ResponseWriter, r *http.Request) {
	h.engine.OpenDay()

	// QR regeneration happens after the reset, outside the engine's lock.
	// A write failure is logged but never fails the open.
	formURL := h.cfg.BaseURL + "/form"
	if err := h.qr.Generate(formURL); err != nil {
		slog.Error("failed to regenerate entry QR", "url", formURL, "error", err)
	}

	slog.Info("form opened for a new day")
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Form opened"})
}

// GenerateNumbers handles POST /admin/generate_numbers
func (h *AdminHandler) GenerateNumbers(w http.ResponseWriter, r *http.Request) {
	batch, generated := h.engine.GenerateNumbers()
	if !generated {
		// Repeat trigger: accepted silently, nothing re-drawn
		_, subs := h.engine.Snapshot()
		middleware.JSONResponse(w, http.StatusOK, models.GenerateNumbersResponse{
			Generated: false,
			Count:     len(subs),
		})
		return
	}

	h.dispatcher.Enqueue(batch)

	slog.Info("ticket numbers generated", "count", len(batch))
	middleware.JSONResponse(w, http.StatusOK, models.GenerateNumbersResponse{
		Generated: true,
		Count:     len(batch),
	})
}

// CloseForm handles POST /admin/close_form
func (h *AdminHandler) CloseForm(w http.ResponseWriter, r *http.Request) {
	h.engine.CloseDay()

	slog.Info("form closed, day state cleared")
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Form closed"})
}

// QRCode handles GET /qr, serving the current entry QR image.
func (h *AdminHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, h.qr.Path())
}
