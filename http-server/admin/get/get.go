package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"calc-golang/internal/storage"
)

type AdminProvider interface {
	GetDefaults(ctx context.Context) (*storage.CalculatorDefaults, error)
	GetAllTemplates(ctx context.Context) ([]*storage.ProductTemplate, error)
	GetTemplateByCode(ctx context.Context, code string) (*storage.ProductTemplate, error)
}

func GetDefaultsAdmin(log *slog.Logger, provider AdminProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.GetDefaultsAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		defaults, err := provider.GetDefaults(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load defaults")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, defaults)
	}
}

func GetAllTemplatesAdmin(log *slog.Logger, provider AdminProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.GetAllTemplatesAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		templates, err := provider.GetAllTemplates(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load templates")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, templates)
	}
}

func GetTemplateByCodeAdmin(log *slog.Logger, provider AdminProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.GetTemplateByCodeAdmin"

		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "code is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tpl, err := provider.GetTemplateByCode(ctx, code)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load template")
			http.Error(w, "Template not found", http.StatusNotFound)
			return
		}

		render.JSON(w, r, tpl)
	}
}
