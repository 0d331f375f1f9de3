package calc

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"calc-golang/internal/service/engine"
	"calc-golang/internal/storage"
)

type CalcStorage interface {
	GetSession(ctx context.Context, id string) (*storage.CalculatorSession, error)
	GetDefaults(ctx context.Context) (*storage.CalculatorDefaults, error)
	GetAllMaterials(ctx context.Context) ([]storage.Material, error)
}

type CalcService struct {
	storage CalcStorage
}

func NewCalcService(storage CalcStorage) *CalcService {
	return &CalcService{storage: storage}
}

// ComputeMetrics runs the engine on an in-memory document, without touching
// storage. The handler path for live recomputation as the user edits.
func (s *CalcService) ComputeMetrics(state storage.CalculatorState) storage.CalculatedMetrics {
	return engine.ComputeMetrics(state)
}

// ProductCosts is the single-product preview used while the user types in a
// cost field, so the UI does not recompute the whole document per keystroke.
func (s *CalcService) ProductCosts(p storage.Product, hourlyRate float64) engine.ProductCostBreakdown {
	return engine.CalculateProductCosts(p, hourlyRate)
}

// MetricsForSession loads a stored session plus the admin defaults and the
// materials library in parallel, folds the defaults into the document and
// computes the snapshot.
func (s *CalcService) MetricsForSession(ctx context.Context, sessionID string) (*storage.CalculatedMetrics, *storage.CalculatorSession, error) {
	const op = "service.calc.MetricsForSession"

	var (
		session   *storage.CalculatorSession
		defaults  *storage.CalculatorDefaults
		materials []storage.Material
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		session, err = s.storage.GetSession(gCtx, sessionID)
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		defaults, err = s.storage.GetDefaults(gCtx)
		if err != nil {
			return fmt.Errorf("defaults: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		materials, err = s.storage.GetAllMaterials(gCtx)
		if err != nil {
			return fmt.Errorf("materials: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	state := session.State
	applyDefaults(&state, defaults)
	if len(state.Materials) == 0 {
		state.Materials = materials
	}

	metrics := engine.ComputeMetrics(state)

	return &metrics, session, nil
}

// applyDefaults fills document-level zeros from the stored admin defaults.
// Product-level fallbacks (machine rate, owner rate) stay inside the engine.
func applyDefaults(state *storage.CalculatorState, defaults *storage.CalculatorDefaults) {
	if defaults == nil {
		return
	}
	if state.HourlyRate == 0 {
		state.HourlyRate = defaults.HourlyRate
	}
	if state.MonthlyGoal == 0 {
		state.MonthlyGoal = defaults.MonthlyGoal
	}
	for i := range state.Products {
		if state.Products[i].MachineTime.CostPerHour == 0 {
			state.Products[i].MachineTime.CostPerHour = defaults.MachineHourlyRate
		}
	}
}
