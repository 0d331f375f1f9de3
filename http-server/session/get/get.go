package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"calc-golang/internal/storage"
)

type SessionProvider interface {
	GetSession(ctx context.Context, id string) (*storage.CalculatorSession, error)
	GetAllSessions(ctx context.Context) ([]storage.SessionSummary, error)
}

func GetSession(log *slog.Logger, provider SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.session.GetSession"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		session, err := provider.GetSession(ctx, id)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load session")
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}

		render.JSON(w, r, session)
	}
}

func GetAllSessions(log *slog.Logger, provider SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.session.GetAllSessions"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		sessions, err := provider.GetAllSessions(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to list sessions")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, sessions)
	}
}
