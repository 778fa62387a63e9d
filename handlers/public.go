// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ticket-day/cliparse"
	"github.com/danielhkuo/ticket-day/middleware"
	"github.com/danielhkuo/ticket-day/models"
	"github.com/danielhkuo/ticket-day/tickets"
)

type PublicHandler struct {
	engine *tickets.Engine
	cfg    cliparse.Config
}

func NewPublicHandler(engine *tickets.Engine, cfg cliparse.Config) *PublicHandler {
	return &PublicHandler{engine: engine, cfg: cfg}
}

// FormStatus handles GET /form, letting the form page show whether the draw
// has already happened.
func (h *PublicHandler) FormStatus(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.FormStatusResponse{
		Accepting: true,
		Mode:      h.engine.Mode(),
	})
}

// Submit handles POST /form
func (h *PublicHandler) Submit(w http.ResponseWriter, r *http.Request) {
	vals, err := middleware.FormValues(r, "email", "fullname", "phone")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := vals["email"]
	fullName := vals["fullname"]
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}
	if fullName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "fullname is required")
		return
	}

	number, err := h.engine.Submit(email, fullName, vals["phone"])
	if errors.Is(err, tickets.ErrAlreadySubmitted) {
		middleware.ErrorResponse(w, http.StatusConflict, "You have already submitted this form today")
		return
	}
	if err != nil {
		slog.Error("submission failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit form")
		return
	}

	slog.Info("form submitted", "email", email, "ticket_number", number)
	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		Message:      "Form submitted successfully",
		TicketNumber: number,
	})
}

// CheckNumber handles GET and POST /check_number
func (h *PublicHandler) CheckNumber(w http.ResponseWriter, r *http.Request) {
	var email string
	if r.Method == http.MethodGet {
		email = r.URL.Query().Get("email")
	} else {
		vals, err := middleware.FormValues(r, "email")
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		email = vals["email"]
	}

	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}

	res := h.engine.Lookup(email)
	switch res.Status {
	case tickets.LookupNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, "No record found with this email. Please fill out the form first.")
	case tickets.LookupPending:
		middleware.JSONResponse(w, http.StatusOK, models.CheckNumberResponse{
			Status:  string(tickets.LookupPending),
			Message: "Numbers haven't been distributed yet, wait for the draw to start.",
		})
	case tickets.LookupAssigned:
		n := res.Number
		middleware.JSONResponse(w, http.StatusOK, models.CheckNumberResponse{
			Status:       string(tickets.LookupAssigned),
			TicketNumber: &n,
			Message:      "Your assigned number is ready.",
		})
	}
}
