package engine

import (
	"calc-golang/internal/constants"
	"calc-golang/internal/storage"
)

// Labor allocation over LaborState: who works how many hours, what that labor
// costs, and the bookkeeping that keeps assignments valid when workers come
// and go. All functions return fresh values; the input state is never mutated.

func findWorker(ls storage.LaborState, id string) (storage.Worker, bool) {
	for _, w := range ls.Workers {
		if w.ID == id {
			return w, true
		}
	}
	return storage.Worker{}, false
}

func taskWorkerID(t storage.BusinessTask) string {
	if t.AssignedWorkerID == "" {
		return constants.OwnerWorkerID
	}
	return t.AssignedWorkerID
}

func productWorkerID(ls storage.LaborState, productID string) string {
	if id, ok := ls.ProductAssignments[productID]; ok && id != "" {
		return id
	}
	return constants.OwnerWorkerID
}

// workerRate resolves a worker's rate with the owner as last resort.
func workerRate(ls storage.LaborState, workerID string, globalRate float64) float64 {
	if w, ok := findWorker(ls, workerID); ok && num(w.HourlyRate) > 0 {
		return num(w.HourlyRate)
	}
	if r := num(globalRate); r > 0 {
		return r
	}
	if owner, ok := findWorker(ls, constants.OwnerWorkerID); ok && num(owner.HourlyRate) > 0 {
		return num(owner.HourlyRate)
	}
	return constants.DefaultHourlyRate
}

// ResolveHourlyRate is the rate the cost aggregator charges a product's labor
// at: explicit product assignment, then the global default rate, then the
// owner's rate.
func ResolveHourlyRate(state storage.CalculatorState, productID string) float64 {
	if id, ok := state.Labor.ProductAssignments[productID]; ok && id != "" {
		if w, ok := findWorker(state.Labor, id); ok && num(w.HourlyRate) > 0 {
			return num(w.HourlyRate)
		}
	}
	if r := num(state.HourlyRate); r > 0 {
		return r
	}
	if owner, ok := findWorker(state.Labor, constants.OwnerWorkerID); ok && num(owner.HourlyRate) > 0 {
		return num(owner.HourlyRate)
	}
	return constants.DefaultHourlyRate
}

// productUnitMinutes sums the full time breakdown, machine minutes included:
// the assigned worker is on the clock while the machine runs.
func productUnitMinutes(p storage.Product) float64 {
	var minutes float64
	for _, m := range p.TimeBreakdown {
		minutes += num(m)
	}
	return minutes
}

// productLaborMinutes is the breakdown without the machine key, the part
// priced as labor.
func productLaborMinutes(p storage.Product) float64 {
	var minutes float64
	for task, m := range p.TimeBreakdown {
		if task == constants.MachineTimeKey {
			continue
		}
		minutes += num(m)
	}
	return minutes
}

// ProductWeeklyHours is a product's production hours per week: unit time
// times monthly units, brought back to a week at 4.33.
func ProductWeeklyHours(p storage.Product) float64 {
	monthly := MinutesToHours(productUnitMinutes(p)) * monthlyUnits(p)
	return MonthlyToWeekly(monthly)
}

// AssignedWeeklyHours totals a worker's business-task hours plus the weekly
// production hours of every product assigned to them.
func AssignedWeeklyHours(ls storage.LaborState, products []storage.Product, workerID string) float64 {
	var hours float64
	for _, t := range ls.BusinessTasks {
		if taskWorkerID(t) == workerID {
			hours += num(t.HoursPerWeek)
		}
	}
	for _, p := range products {
		if productWorkerID(ls, p.ID) == workerID {
			hours += ProductWeeklyHours(p)
		}
	}
	return hours
}

// ComputeLabor builds the full labor snapshot for a state.
func ComputeLabor(state storage.CalculatorState) storage.LaborMetrics {
	ls := state.Labor

	var m storage.LaborMetrics

	// Weekly cost subtotals, kept separate: tasks are OpEx, product time COGS.
	var weeklyTaskCost, weeklyProductCost float64

	for _, t := range ls.BusinessTasks {
		hours := num(t.HoursPerWeek)
		m.WeeklyTaskHours += hours
		weeklyTaskCost += hours * workerRate(ls, taskWorkerID(t), state.HourlyRate)
	}

	for _, p := range state.Products {
		hours := ProductWeeklyHours(p)
		m.WeeklyProductHours += hours
		laborHours := MonthlyToWeekly(MinutesToHours(productLaborMinutes(p)) * monthlyUnits(p))
		weeklyProductCost += laborHours * workerRate(ls, productWorkerID(ls, p.ID), state.HourlyRate)
	}

	m.TotalWeeklyHours = m.WeeklyTaskHours + m.WeeklyProductHours
	m.MonthlyOpExLaborCost = WeeklyToMonthly(weeklyTaskCost)
	m.MonthlyCOGSLaborCost = WeeklyToMonthly(weeklyProductCost)
	m.MonthlyTotalLaborCost = m.MonthlyOpExLaborCost + m.MonthlyCOGSLaborCost

	var totalAssigned float64
	for _, w := range ls.Workers {
		assigned := AssignedWeeklyHours(ls, state.Products, w.ID)
		load := storage.WorkerLoad{
			WorkerID:            w.ID,
			Name:                w.Name,
			HourlyRate:          num(w.HourlyRate),
			AssignedWeeklyHours: assigned,
			MaxHoursPerWeek:     num(w.MaxHoursPerWeek),
			MonthlyCost:         WeeklyToMonthly(assigned) * workerRate(ls, w.ID, state.HourlyRate),
		}
		if load.MaxHoursPerWeek > 0 && assigned > load.MaxHoursPerWeek {
			load.OverflowHours = assigned - load.MaxHoursPerWeek
		}
		if w.ID == constants.OwnerWorkerID {
			m.OwnerWeeklyHours = assigned
		}
		totalAssigned += assigned
		m.Workers = append(m.Workers, load)
	}

	// Slack between hours needed and hours on someone's plate. Never reported
	// negative, even mid-edit when assignment bookkeeping briefly overshoots.
	if slack := m.TotalWeeklyHours - totalAssigned; slack > 0 {
		m.UnassignedHours = slack
	}

	return m
}

// RemoveWorker returns a copy of the labor state without the given worker.
// Every business task and product assignment pointing at the removed worker
// is reassigned to the owner, never left dangling. The owner itself cannot be
// removed.
func RemoveWorker(ls storage.LaborState, workerID string) storage.LaborState {
	if workerID == constants.OwnerWorkerID {
		return ls
	}

	out := storage.LaborState{
		Workers:            make([]storage.Worker, 0, len(ls.Workers)),
		BusinessTasks:      make([]storage.BusinessTask, len(ls.BusinessTasks)),
		ProductAssignments: make(map[string]string, len(ls.ProductAssignments)),
	}

	for _, w := range ls.Workers {
		if w.ID == workerID {
			continue
		}
		out.Workers = append(out.Workers, w)
	}

	copy(out.BusinessTasks, ls.BusinessTasks)
	for i := range out.BusinessTasks {
		if out.BusinessTasks[i].AssignedWorkerID == workerID {
			out.BusinessTasks[i].AssignedWorkerID = constants.OwnerWorkerID
		}
	}

	for productID, id := range ls.ProductAssignments {
		if id == workerID {
			id = constants.OwnerWorkerID
		}
		out.ProductAssignments[productID] = id
	}

	return out
}

// BatchTimeEditor drives the per-batch time entry mode. A task's stored
// minutes are always per unit; entering batch mode shows the batch total for
// the last-applied batch size, applying stores total/size back as per-unit,
// and cancel restores the exact per-unit value from before the edit. The
// editor keys everything by task so repeated enter/cancel cycles do not
// drift.
type BatchTimeEditor struct {
	sizes    map[string]float64
	snapshot map[string]float64
}

func NewBatchTimeEditor() *BatchTimeEditor {
	return &BatchTimeEditor{
		sizes:    make(map[string]float64),
		snapshot: make(map[string]float64),
	}
}

// Size reports the last-applied batch size for a task, defaulting to 1.
func (e *BatchTimeEditor) Size(taskKey string) float64 {
	if size, ok := e.sizes[taskKey]; ok && size > 0 {
		return size
	}
	return 1
}

// Enter opens batch mode for a task and returns the batch-total view of the
// stored per-unit minutes.
func (e *BatchTimeEditor) Enter(taskKey string, perUnitMinutes float64) float64 {
	e.snapshot[taskKey] = num(perUnitMinutes)
	return PerUnitToBatch(perUnitMinutes, e.Size(taskKey))
}

// Apply commits an edited batch total at the given batch size and returns the
// per-unit minutes to store. The size is remembered for the next Enter.
func (e *BatchTimeEditor) Apply(taskKey string, batchTotalMinutes, batchSize float64) float64 {
	if num(batchSize) <= 0 {
		batchSize = 1
	}
	e.sizes[taskKey] = num(batchSize)
	delete(e.snapshot, taskKey)
	return BatchToPerUnit(batchTotalMinutes, batchSize)
}

// Cancel abandons an open batch edit and returns the per-unit value from
// before Enter, exactly as it was stored.
func (e *BatchTimeEditor) Cancel(taskKey string) (float64, bool) {
	v, ok := e.snapshot[taskKey]
	if ok {
		delete(e.snapshot, taskKey)
	}
	return v, ok
}
