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

type TemplateSaver interface {
	SaveTemplate(ctx context.Context, tpl storage.ProductTemplate) error
}

func SaveTemplateAdmin(log *slog.Logger, saver TemplateSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.SaveTemplateAdmin"

		var tpl storage.ProductTemplate
		if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if tpl.Code == "" || tpl.Name == "" {
			http.Error(w, "code and name are required", http.StatusBadRequest)
			return
		}
		if tpl.ID == "" {
			tpl.ID = uuid.NewString()
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveTemplate(ctx, tpl); err != nil {
			log.Error("failed to save template", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     tpl.ID,
		})
	}
}
