package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"calc-golang/internal/storage"
)

type MaterialProvider interface {
	GetAllMaterials(ctx context.Context) ([]storage.Material, error)
}

// GetMaterials returns the shared materials library the wizard offers when
// the user itemizes a product's costs.
func GetMaterials(log *slog.Logger, provider MaterialProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.materials.GetMaterials"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		materials, err := provider.GetAllMaterials(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load materials library")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, materials)
	}
}
