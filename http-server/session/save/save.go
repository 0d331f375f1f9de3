package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"calc-golang/internal/storage"
)

type SessionSaver interface {
	SaveSession(ctx context.Context, session storage.CalculatorSession) error
}

func SaveSession(log *slog.Logger, saver SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.session.SaveSession"

		var req storage.CalculatorSession
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.ID == "" {
			req.ID = uuid.NewString()
		}
		if req.Name == "" {
			http.Error(w, "Session name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveSession(ctx, req); err != nil {
			log.Error("failed to save session", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("session saved", slog.String("id", req.ID), slog.String("name", req.Name))

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     req.ID,
		})
	}
}
