package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calc-golang/internal/constants"
	"calc-golang/internal/storage"
)

func laborFixture() storage.CalculatorState {
	return storage.CalculatorState{
		HourlyRate: 20,
		Products: []storage.Product{
			{
				ID:           "p1",
				MonthlyUnits: 40,
				TimeBreakdown: map[string]float64{
					"assembly": 30,
					"machine":  15,
				},
			},
		},
		Labor: storage.LaborState{
			Workers: []storage.Worker{
				{ID: "owner", Name: "Owner", HourlyRate: 25, MaxHoursPerWeek: 40},
				{ID: "w2", Name: "Sam", HourlyRate: 18, MaxHoursPerWeek: 10},
			},
			BusinessTasks: []storage.BusinessTask{
				{ID: "t1", Name: "Bookkeeping", HoursPerWeek: 2},
				{ID: "t2", Name: "Marketing", HoursPerWeek: 3, AssignedWorkerID: "w2"},
			},
			ProductAssignments: map[string]string{"p1": "w2"},
		},
	}
}

func TestAssignedWeeklyHours(t *testing.T) {
	state := laborFixture()

	// p1: 45 min/unit * 40 units = 30 monthly hours -> /4.33 weekly.
	productWeekly := 30.0 / constants.WeeksPerMonth

	assert.InDelta(t, 2.0, AssignedWeeklyHours(state.Labor, state.Products, "owner"), 0.001)
	assert.InDelta(t, 3.0+productWeekly, AssignedWeeklyHours(state.Labor, state.Products, "w2"), 0.001)
}

func TestComputeLabor_CostSplit(t *testing.T) {
	state := laborFixture()

	m := ComputeLabor(state)

	// OpEx: bookkeeping 2h at owner 25 + marketing 3h at w2 18, weekly.
	assert.InDelta(t, constants.WeeksPerMonth*(2*25+3*18), m.MonthlyOpExLaborCost, 0.01)

	// COGS: labor minutes only (30 of 45) -> 20 monthly hours at w2 18.
	cogsWeekly := (20.0 / constants.WeeksPerMonth) * 18
	assert.InDelta(t, constants.WeeksPerMonth*cogsWeekly, m.MonthlyCOGSLaborCost, 0.01)

	assert.InDelta(t, m.MonthlyOpExLaborCost+m.MonthlyCOGSLaborCost, m.MonthlyTotalLaborCost, 0.001)
	assert.InDelta(t, 2.0, m.OwnerWeeklyHours, 0.001)
	assert.Equal(t, 0.0, m.UnassignedHours)
}

func TestComputeLabor_UnassignedNeverNegative(t *testing.T) {
	state := laborFixture()

	// Point the product at a worker that no longer exists: those hours show
	// up as slack, not as a negative.
	state.Labor.ProductAssignments["p1"] = "ghost"
	m := ComputeLabor(state)
	assert.Greater(t, m.UnassignedHours, 0.0)

	state.Labor.ProductAssignments["p1"] = "owner"
	m = ComputeLabor(state)
	assert.Equal(t, 0.0, m.UnassignedHours)
}

func TestComputeLabor_OverflowHours(t *testing.T) {
	state := laborFixture()
	state.Labor.Workers[1].MaxHoursPerWeek = 5

	m := ComputeLabor(state)

	var w2 storage.WorkerLoad
	for _, w := range m.Workers {
		if w.WorkerID == "w2" {
			w2 = w
		}
	}
	assert.Greater(t, w2.OverflowHours, 0.0)
	assert.InDelta(t, w2.AssignedWeeklyHours-5, w2.OverflowHours, 0.001)
}

func TestResolveHourlyRate_FallbackChain(t *testing.T) {
	state := laborFixture()

	// Explicit product assignment wins.
	assert.Equal(t, 18.0, ResolveHourlyRate(state, "p1"))

	// No assignment: global rate.
	assert.Equal(t, 20.0, ResolveHourlyRate(state, "other"))

	// No global rate: owner's rate.
	state.HourlyRate = 0
	assert.Equal(t, 25.0, ResolveHourlyRate(state, "other"))

	// Nothing at all: centralized default.
	state.Labor.Workers = nil
	state.Labor.ProductAssignments = nil
	assert.Equal(t, constants.DefaultHourlyRate, ResolveHourlyRate(state, "other"))
}

func TestRemoveWorker_ReassignsToOwner(t *testing.T) {
	state := laborFixture()

	out := RemoveWorker(state.Labor, "w2")

	assert.Len(t, out.Workers, 1)
	for _, task := range out.BusinessTasks {
		assert.NotEqual(t, "w2", task.AssignedWorkerID)
	}
	assert.Equal(t, constants.OwnerWorkerID, out.BusinessTasks[1].AssignedWorkerID)
	assert.Equal(t, constants.OwnerWorkerID, out.ProductAssignments["p1"])

	// Input state untouched.
	assert.Len(t, state.Labor.Workers, 2)
	assert.Equal(t, "w2", state.Labor.ProductAssignments["p1"])
}

func TestRemoveWorker_OwnerIsKept(t *testing.T) {
	state := laborFixture()
	out := RemoveWorker(state.Labor, constants.OwnerWorkerID)
	assert.Len(t, out.Workers, 2)
}

func TestBatchTimeEditor_RoundTrip(t *testing.T) {
	e := NewBatchTimeEditor()

	// Apply a batch of 30 taking 60 minutes: stored per-unit is 2.0.
	perUnit := e.Apply("sanding", 60, 30)
	assert.Equal(t, 2.0, perUnit)
	assert.Equal(t, 30.0, e.Size("sanding"))

	// Re-entering shows the batch total again; canceling restores exactly
	// the prior per-unit value, no drift.
	total := e.Enter("sanding", perUnit)
	assert.Equal(t, 60.0, total)

	restored, ok := e.Cancel("sanding")
	assert.True(t, ok)
	assert.Equal(t, 2.0, restored)
}

func TestBatchTimeEditor_RepeatedCyclesDoNotDrift(t *testing.T) {
	e := NewBatchTimeEditor()

	perUnit := e.Apply("glueing", 7, 3) // 2.33 after rounding
	assert.Equal(t, 2.33, perUnit)

	for i := 0; i < 10; i++ {
		e.Enter("glueing", perUnit)
		restored, ok := e.Cancel("glueing")
		assert.True(t, ok)
		assert.Equal(t, perUnit, restored)
	}
}

func TestBatchTimeEditor_DefaultSize(t *testing.T) {
	e := NewBatchTimeEditor()

	assert.Equal(t, 1.0, e.Size("new-task"))
	assert.Equal(t, 4.5, e.Enter("new-task", 4.5))

	// Apply with a bogus size falls back to 1.
	assert.Equal(t, 12.0, e.Apply("new-task", 12, 0))
}

func TestBatchTimeEditor_CancelWithoutEnter(t *testing.T) {
	e := NewBatchTimeEditor()
	_, ok := e.Cancel("never-opened")
	assert.False(t, ok)
}
