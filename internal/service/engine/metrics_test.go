package engine

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"calc-golang/internal/storage"
)

func metricsFixture() storage.CalculatorState {
	return storage.CalculatorState{
		HourlyRate:  25,
		MonthlyGoal: 500,
		Products:    []storage.Product{exampleProduct()},
		Labor: storage.LaborState{
			Workers: []storage.Worker{
				{ID: "owner", Name: "Owner", HourlyRate: 25, MaxHoursPerWeek: 40},
			},
			BusinessTasks: []storage.BusinessTask{
				{ID: "t1", Name: "Bookkeeping", HoursPerWeek: 1},
			},
		},
		Marketing: storage.MarketingState{
			DigitalChannels: []storage.MarketingChannel{
				{ID: "ads", Name: "Ads", MonthlySpend: 100, ConversionRate: 1},
			},
		},
		BusinessCosts: []storage.BusinessCost{
			{ID: "b1", Name: "Website", MonthlyCost: 20, Selected: true},
			{ID: "b2", Name: "Studio rent", MonthlyCost: 400, Selected: false},
		},
	}
}

func TestComputeMetrics_ProductBreakdown(t *testing.T) {
	m := ComputeMetrics(metricsFixture())

	assert.Len(t, m.Products, 1)
	p := m.Products[0]

	assert.InDelta(t, 19.33, p.TotalCosts, 0.01)
	assert.InDelta(t, 5.67, p.UnitProfit, 0.01)
	assert.InDelta(t, 113.3, p.MonthlyProfit, 0.1)
	assert.InDelta(t, 500.0, p.MonthlyRevenue, 0.001)
	assert.InDelta(t, 0.2267, p.Margin, 0.001)

	// 30 labor + 10 machine minutes, reported separately.
	assert.InDelta(t, 30.0, p.LaborMinutesPerUnit, 0.001)
	assert.InDelta(t, 10.0, p.MachineMinutesPerUnit, 0.001)
	assert.InDelta(t, 40.0/60.0, p.UnitTimeHours, 0.001)
	assert.InDelta(t, 40.0/60.0*20, p.MonthlyTimeHours, 0.001)

	assert.Equal(t, 0.0, p.FeeShareDeviation)
}

func TestComputeMetrics_Aggregates(t *testing.T) {
	m := ComputeMetrics(metricsFixture())

	assert.InDelta(t, 20.0, m.TotalMonthlyUnits, 0.001)
	assert.InDelta(t, 500.0, m.TotalMonthlyRevenue, 0.001)
	assert.InDelta(t, m.Products[0].MonthlyProfit, m.TotalGrossProfit, 0.001)
	assert.InDelta(t, m.TotalGrossProfit/m.TotalMonthlyHours, m.AverageHourlyRate, 0.001)

	// Only selected business costs count.
	assert.InDelta(t, 20.0, m.MonthlyBusinessCosts, 0.001)

	wantNet := m.TotalGrossProfit - m.Labor.MonthlyOpExLaborCost - 20 - 100
	assert.InDelta(t, wantNet, m.TotalNetProfit, 0.001)
}

func TestComputeMetrics_GoalPercentageUnclamped(t *testing.T) {
	state := metricsFixture()

	state.MonthlyGoal = 50
	m := ComputeMetrics(state)
	// The raw metric can exceed 100; clamping is a display concern.
	assert.Greater(t, m.GoalAchievementPercentage, 100.0)

	state.MonthlyGoal = 0
	m = ComputeMetrics(state)
	assert.Equal(t, 0.0, m.GoalAchievementPercentage)
}

func TestComputeMetrics_EmptyStateAllZeroes(t *testing.T) {
	m := ComputeMetrics(storage.CalculatorState{})

	assert.Equal(t, 0.0, m.AverageHourlyRate)
	assert.Equal(t, 0.0, m.GoalAchievementPercentage)
	assert.Equal(t, 0.0, m.Marketing.BlendedCAC)

	// Nothing in the snapshot may come out NaN or infinite.
	raw, err := json.Marshal(m)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "NaN")
}

func TestComputeMetrics_Idempotent(t *testing.T) {
	state := metricsFixture()

	first := ComputeMetrics(state)
	second := ComputeMetrics(state)

	assert.True(t, reflect.DeepEqual(first, second))
}

func TestComputeMetrics_DoesNotMutateInput(t *testing.T) {
	state := metricsFixture()
	before, err := json.Marshal(state)
	assert.NoError(t, err)

	_ = ComputeMetrics(state)

	after, err := json.Marshal(state)
	assert.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestComputeMetrics_FeeDeviationAdvisory(t *testing.T) {
	state := metricsFixture()
	state.Products[0].PlatformFees = []storage.PlatformFee{
		{ID: "etsy", FeePercentage: 6.5, SalesPercentage: 70},
		{ID: "direct", FeePercentage: 0, SalesPercentage: 10},
	}

	m := ComputeMetrics(state)

	// Off-100 distributions are reported, never auto-corrected.
	assert.InDelta(t, 20.0, m.Products[0].FeeShareDeviation, 0.001)
	assert.Equal(t, 70.0, state.Products[0].PlatformFees[0].SalesPercentage)
}

func TestComputeMetrics_ZeroPriceMargin(t *testing.T) {
	state := metricsFixture()
	state.Products[0].SellingPrice = 0

	m := ComputeMetrics(state)

	assert.Equal(t, 0.0, m.Products[0].Margin)
	assert.False(t, math.IsNaN(m.Products[0].EffectiveHourlyRate))
}
