package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"calc-golang/internal/storage"
)

type MaterialSaver interface {
	SaveMaterial(ctx context.Context, m storage.Material) error
	DeleteMaterial(ctx context.Context, id string) error
}

func SaveMaterial(log *slog.Logger, saver MaterialSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.materials.SaveMaterial"

		var req storage.Material
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Name == "" {
			http.Error(w, "Material name is required", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveMaterial(ctx, req); err != nil {
			log.Error("failed to save material", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     req.ID,
		})
	}
}

func DeleteMaterial(log *slog.Logger, saver MaterialSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.materials.DeleteMaterial"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.DeleteMaterial(ctx, id); err != nil {
			log.Error("failed to delete material", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Material not found", http.StatusNotFound)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}
