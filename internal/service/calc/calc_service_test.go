package calc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"calc-golang/internal/storage"
)

type MockCalcStorage struct {
	mock.Mock
}

func (m *MockCalcStorage) GetSession(ctx context.Context, id string) (*storage.CalculatorSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.CalculatorSession), args.Error(1)
}

func (m *MockCalcStorage) GetDefaults(ctx context.Context) (*storage.CalculatorDefaults, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.CalculatorDefaults), args.Error(1)
}

func (m *MockCalcStorage) GetAllMaterials(ctx context.Context) ([]storage.Material, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Material), args.Error(1)
}

func sessionFixture() *storage.CalculatorSession {
	return &storage.CalculatorSession{
		ID:   "s1",
		Name: "My shop",
		State: storage.CalculatorState{
			Products: []storage.Product{
				{
					ID:           "p1",
					Name:         "Coaster set",
					SellingPrice: 30,
					MonthlyUnits: 10,
					Costs:        storage.FlatCosts{Materials: 5},
					TimeBreakdown: map[string]float64{
						"assembly": 30,
						"machine":  10,
					},
				},
			},
		},
	}
}

func TestMetricsForSession(t *testing.T) {
	mockStorage := new(MockCalcStorage)

	mockStorage.On("GetSession", mock.Anything, "s1").Return(sessionFixture(), nil)
	mockStorage.On("GetDefaults", mock.Anything).Return(&storage.CalculatorDefaults{
		HourlyRate:        20,
		MachineHourlyRate: 5,
		MonthlyGoal:       1000,
	}, nil)
	mockStorage.On("GetAllMaterials", mock.Anything).Return([]storage.Material{
		{ID: "m1", Name: "Plywood", BatchCost: 40, BatchQuantity: 10, UnitCost: 4},
	}, nil)

	service := NewCalcService(mockStorage)

	metrics, session, err := service.MetricsForSession(context.Background(), "s1")

	assert.NoError(t, err)
	assert.Equal(t, "My shop", session.Name)
	assert.Len(t, metrics.Products, 1)

	// Defaults filled in: labor 30min at 20/h, machine 10min at 5/h.
	p := metrics.Products[0]
	assert.InDelta(t, 10.0, p.LaborCost, 0.001)
	assert.InDelta(t, 10.0/60*5, p.MachineCost, 0.001)

	// Goal comes from defaults when the document has none.
	assert.Greater(t, metrics.GoalAchievementPercentage, 0.0)

	mockStorage.AssertExpectations(t)
}

func TestMetricsForSession_DocumentValuesWin(t *testing.T) {
	mockStorage := new(MockCalcStorage)

	session := sessionFixture()
	session.State.HourlyRate = 50
	session.State.MonthlyGoal = 200

	mockStorage.On("GetSession", mock.Anything, "s1").Return(session, nil)
	mockStorage.On("GetDefaults", mock.Anything).Return(&storage.CalculatorDefaults{HourlyRate: 20, MonthlyGoal: 1000}, nil)
	mockStorage.On("GetAllMaterials", mock.Anything).Return([]storage.Material{}, nil)

	service := NewCalcService(mockStorage)

	metrics, _, err := service.MetricsForSession(context.Background(), "s1")

	assert.NoError(t, err)
	assert.InDelta(t, 25.0, metrics.Products[0].LaborCost, 0.001)
}

func TestMetricsForSession_StorageError(t *testing.T) {
	mockStorage := new(MockCalcStorage)

	mockStorage.On("GetSession", mock.Anything, "missing").Return(nil, errors.New("not found"))
	mockStorage.On("GetDefaults", mock.Anything).Return(&storage.CalculatorDefaults{}, nil).Maybe()
	mockStorage.On("GetAllMaterials", mock.Anything).Return([]storage.Material{}, nil).Maybe()

	service := NewCalcService(mockStorage)

	_, _, err := service.MetricsForSession(context.Background(), "missing")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "session")
}

func TestComputeMetrics_Passthrough(t *testing.T) {
	service := NewCalcService(new(MockCalcStorage))

	metrics := service.ComputeMetrics(sessionFixture().State)
	assert.Len(t, metrics.Products, 1)

	bd := service.ProductCosts(sessionFixture().State.Products[0], 20)
	assert.InDelta(t, 10.0, bd.LaborCost, 0.001)
}
