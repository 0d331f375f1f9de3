package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"calc-golang/internal/service/engine"
	"calc-golang/internal/storage"
)

type CostPreviewer interface {
	ProductCosts(p storage.Product, hourlyRate float64) engine.ProductCostBreakdown
}

// PreviewProductCosts recomputes one product's cost rollup as the user types,
// without running the whole document through the engine.
func PreviewProductCosts(log *slog.Logger, calc CostPreviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.metrics.PreviewProductCosts"

		var req struct {
			Product    storage.Product `json:"product"`
			HourlyRate float64         `json:"hourly_rate"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		breakdown := calc.ProductCosts(req.Product, req.HourlyRate)

		render.JSON(w, r, breakdown)
	}
}
