package engine

import (
	"math"

	"calc-golang/internal/constants"
)

// Unit conversions and the numeric guards every other calculator builds on.
// The document is user-edited JSON, so any field can arrive as NaN/Inf or be
// missing entirely; num() turns all of that into 0 before arithmetic.

func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func safeDiv(a, b float64) float64 {
	a, b = num(a), num(b)
	if b == 0 {
		return 0
	}
	return a / b
}

func round2(v float64) float64 {
	return math.Round(num(v)*100) / 100
}

func clampPercent(v float64) float64 {
	v = num(v)
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func MinutesToHours(minutes float64) float64 {
	return num(minutes) / 60
}

func HoursToMinutes(hours float64) float64 {
	return num(hours) * 60
}

func WeeklyToMonthly(v float64) float64 {
	return num(v) * constants.WeeksPerMonth
}

func MonthlyToWeekly(v float64) float64 {
	return num(v) / constants.WeeksPerMonth
}

// BatchToPerUnit converts a batch-total time entry to stored per-unit
// minutes. A batch size below 1 is treated as 1.
func BatchToPerUnit(batchTotal, batchSize float64) float64 {
	if num(batchSize) <= 0 {
		batchSize = 1
	}
	return round2(num(batchTotal) / batchSize)
}

// PerUnitToBatch restores the batch-total view of a stored per-unit value.
func PerUnitToBatch(perUnit, batchSize float64) float64 {
	if num(batchSize) <= 0 {
		batchSize = 1
	}
	return round2(num(perUnit) * batchSize)
}
