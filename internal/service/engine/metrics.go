package engine

import (
	"calc-golang/internal/constants"
	"calc-golang/internal/storage"
)

// ComputeMetrics is the single entry point: a full CalculatedMetrics snapshot
// from one CalculatorState document. Pure and deterministic; calling it twice
// on the same input yields identical output, and the input is never mutated.
func ComputeMetrics(state storage.CalculatorState) storage.CalculatedMetrics {
	var out storage.CalculatedMetrics

	for _, p := range state.Products {
		rate := ResolveHourlyRate(state, p.ID)
		bd := CalculateProductCosts(p, rate)

		units := monthlyUnits(p)
		price := num(p.SellingPrice)

		laborMinutes := productLaborMinutes(p)
		machineMinutes := num(p.TimeBreakdown[constants.MachineTimeKey])
		unitHours := MinutesToHours(laborMinutes + machineMinutes)
		monthlyHours := unitHours * units

		pm := storage.ProductMetrics{
			ProductID:    p.ID,
			Name:         p.Name,
			SellingPrice: price,
			MonthlyUnits: units,

			MaterialCost:    bd.MaterialCost,
			MachineCost:     bd.MachineCost,
			LaborCost:       bd.LaborCost,
			PlatformFeeCost: bd.PlatformFeeCost,
			TotalCosts:      bd.TotalCosts,

			UnitProfit:     bd.UnitProfit,
			MonthlyRevenue: price * units,
			MonthlyProfit:  bd.MonthlyProfit,
			Margin:         safeDiv(bd.UnitProfit, price),

			LaborMinutesPerUnit:   laborMinutes,
			MachineMinutesPerUnit: machineMinutes,
			UnitTimeHours:         unitHours,
			MonthlyTimeHours:      monthlyHours,

			EffectiveHourlyRate: safeDiv(bd.MonthlyProfit, monthlyHours),

			FeeShareDeviation: ShareDeviation(FeeShares(p.PlatformFees)),
		}

		out.Products = append(out.Products, pm)

		out.TotalMonthlyUnits += units
		out.TotalMonthlyHours += monthlyHours
		out.TotalMonthlyRevenue += pm.MonthlyRevenue
		out.TotalMonthlyCosts += bd.TotalCosts * units
		out.TotalGrossProfit += bd.MonthlyProfit
	}

	out.Labor = ComputeLabor(state)
	out.Marketing = ComputeMarketing(state.Marketing, out.TotalMonthlyUnits)

	for _, c := range state.BusinessCosts {
		if c.Selected {
			out.MonthlyBusinessCosts += num(c.MonthlyCost)
		}
	}

	// Gross profit already carries COGS (materials, machine, product labor,
	// fees); net subtracts the overhead side: business-task labor, selected
	// fixed costs, and paid marketing spend.
	out.TotalNetProfit = out.TotalGrossProfit -
		out.Labor.MonthlyOpExLaborCost -
		out.MonthlyBusinessCosts -
		out.Marketing.TotalMonthlySpend

	out.AverageHourlyRate = safeDiv(out.TotalGrossProfit, out.TotalMonthlyHours)
	out.GoalAchievementPercentage = safeDiv(out.TotalGrossProfit*100, num(state.MonthlyGoal))

	return out
}
