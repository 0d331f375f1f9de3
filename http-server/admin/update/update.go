package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"calc-golang/internal/storage"
)

type AdminUpdater interface {
	UpdateDefaults(ctx context.Context, d storage.CalculatorDefaults) error
	UpdateTemplate(ctx context.Context, code string, tpl storage.ProductTemplate) error
}

func UpdateDefaultsAdmin(log *slog.Logger, updater AdminUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.UpdateDefaultsAdmin"

		var defaults storage.CalculatorDefaults
		if err := json.NewDecoder(r.Body).Decode(&defaults); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateDefaults(ctx, defaults); err != nil {
			log.Error("failed to update defaults", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func UpdateTemplateAdmin(log *slog.Logger, updater AdminUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.UpdateTemplateAdmin"

		code := chi.URLParam(r, "code")
		if code == "" {
			http.Error(w, "Invalid code", http.StatusBadRequest)
			return
		}

		var tpl storage.ProductTemplate
		if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateTemplate(ctx, code, tpl); err != nil {
			log.Error("failed to update template", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
