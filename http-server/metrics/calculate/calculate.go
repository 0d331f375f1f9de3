package calculate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"calc-golang/internal/storage"
	"calc-golang/internal/storage/mysql"
)

type MetricsCalculator interface {
	ComputeMetrics(state storage.CalculatorState) storage.CalculatedMetrics
	MetricsForSession(ctx context.Context, sessionID string) (*storage.CalculatedMetrics, *storage.CalculatorSession, error)
}

// CalculateMetrics recomputes the full snapshot from the document in the
// request body. The UI calls this on every relevant edit.
func CalculateMetrics(log *slog.Logger, calc MetricsCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.metrics.CalculateMetrics"

		var state storage.CalculatorState
		if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		metrics := calc.ComputeMetrics(state)

		render.JSON(w, r, metrics)
	}
}

// CalculateSessionMetrics loads a saved session, merges admin defaults
// and recomputes its snapshot.
func CalculateSessionMetrics(log *slog.Logger, calc MetricsCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.metrics.CalculateSessionMetrics"

		sessionID := chi.URLParam(r, "id")
		if sessionID == "" {
			http.Error(w, "Bad request: missing session id", http.StatusBadRequest)
			return
		}

		metrics, _, err := calc.MetricsForSession(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, mysql.ErrSessionNotFound) {
				http.Error(w, "Session not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to compute session metrics", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, metrics)
	}
}
