package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"calc-golang/internal/storage"
)

type SessionUpdater interface {
	SaveSession(ctx context.Context, session storage.CalculatorSession) error
	DeleteSession(ctx context.Context, id string) error
}

func UpdateSession(log *slog.Logger, updater SessionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.session.UpdateSession"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		var req storage.CalculatorSession
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}
		req.ID = id

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.SaveSession(ctx, req); err != nil {
			log.Error("failed to update session", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("session updated", slog.String("id", id))

		render.JSON(w, r, map[string]interface{}{
			"status":     strconv.Itoa(http.StatusOK),
			"session_id": id,
		})
	}
}

func DeleteSession(log *slog.Logger, updater SessionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.session.DeleteSession"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.DeleteSession(ctx, id); err != nil {
			log.Error("failed to delete session", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"status":     "success",
			"session_id": id,
		})
	}
}
