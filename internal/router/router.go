// Package router validates incoming API requests and shapes responses.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akhil-nair/trip-planner/internal/export"
	"github.com/akhil-nair/trip-planner/internal/model"
	"github.com/akhil-nair/trip-planner/internal/observability"
	"github.com/akhil-nair/trip-planner/internal/planner"
	"github.com/akhil-nair/trip-planner/internal/profile"
)

// TripPlanner runs one end-to-end planning request.
type TripPlanner interface {
	Plan(ctx context.Context, req model.TripRequest) (model.TripPlan, error)
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// HandlePlan decodes the planning request, runs the pipeline and renders the
// result as JSON (default), CSV or iCal per the format query parameter.
func HandlePlan(logger *slog.Logger, p TripPlanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		defer func() {
			observability.ObserveHTTP(r.Method, "/plan", sw.code, time.Since(start).Seconds())
		}()

		req, err := ParsePlanRequest(r)
		if err != nil {
			writeError(sw, http.StatusBadRequest, err.Error())
			return
		}

		plan, err := p.Plan(r.Context(), req)
		if err != nil {
			var verr *planner.ValidationError
			switch {
			case errors.As(err, &verr):
				writeError(sw, http.StatusBadRequest, verr.Error())
			case errors.Is(err, planner.ErrUnresolved):
				writeError(sw, http.StatusUnprocessableEntity, err.Error())
			default:
				logger.Error("plan failed", "err", err)
				writeError(sw, http.StatusInternalServerError, "internal error")
			}
			return
		}

		switch strings.ToLower(r.URL.Query().Get("format")) {
		case "", "json":
			writeJSON(sw, http.StatusOK, plan)
		case "csv":
			body, err := export.ItineraryCSV(plan.Itinerary)
			if err != nil {
				logger.Error("csv export failed", "err", err)
				writeError(sw, http.StatusInternalServerError, "internal error")
				return
			}
			sw.Header().Set("Content-Type", "text/csv; charset=utf-8")
			sw.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(sw, body)
		case "ics":
			sw.Header().Set("Content-Type", "text/calendar; charset=utf-8")
			sw.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(sw, export.ICal(plan.Itinerary, plan.TripID))
		default:
			writeError(sw, http.StatusBadRequest, "unsupported format (want json, csv or ics)")
		}
	}
}

// ParsePlanRequest decodes the JSON body and applies request defaults.
// Field presence validation stays in the planner so the pipeline guards its
// own contract.
func ParsePlanRequest(r *http.Request) (model.TripRequest, error) {
	var req model.TripRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return model.TripRequest{}, fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return model.TripRequest{}, fmt.Errorf("invalid request body: %w", err)
	}
	if req.Persons <= 0 {
		req.Persons = 1
	}
	if req.DailyBudget <= 0 {
		req.DailyBudget = 100
	}
	return req, nil
}

// HandleGetProfile returns the stored profile for the path's user id.
func HandleGetProfile(logger *slog.Logger, store profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")
		raw, err := store.Get(r.Context(), userID)
		if err != nil {
			logger.Error("profile get failed", "user", userID, "err", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if raw == nil {
			raw = json.RawMessage("{}")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
	}
}

// HandlePutProfile stores the request body as the user's profile.
func HandlePutProfile(logger *slog.Logger, store profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			writeError(w, http.StatusBadRequest, "read body failed")
			return
		}
		if !json.Valid(body) {
			writeError(w, http.StatusBadRequest, "profile must be valid JSON")
			return
		}
		if err := store.Put(r.Context(), userID, body); err != nil {
			logger.Error("profile put failed", "user", userID, "err", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, map[string]string{"error": reason})
}
