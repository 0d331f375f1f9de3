package engine

import (
	"calc-golang/internal/constants"
	"calc-golang/internal/storage"
)

// CostMode tags which of the two mutually exclusive cost representations a
// product is using. Any itemized usage line suppresses the flat buckets, so
// the two can never both contribute to a total.
type CostMode int

const (
	CostModeFlat CostMode = iota
	CostModeItemized
)

func ProductCostMode(p storage.Product) CostMode {
	if len(p.MaterialUsage) > 0 {
		return CostModeItemized
	}
	return CostModeFlat
}

// ProductCostBreakdown is the per-unit cost rollup for one product. Monthly
// figures are the per-unit ones times monthly units.
type ProductCostBreakdown struct {
	MaterialCost    float64 `json:"material_cost"`
	MachineCost     float64 `json:"machine_cost"`
	LaborCost       float64 `json:"labor_cost"`
	PlatformFeeCost float64 `json:"platform_fee_cost"`
	TotalCosts      float64 `json:"total_costs"`
	UnitProfit      float64 `json:"unit_profit"`
	MonthlyProfit   float64 `json:"monthly_profit"`
}

func MaterialCost(p storage.Product) float64 {
	if ProductCostMode(p) == CostModeItemized {
		var total float64
		for _, u := range p.MaterialUsage {
			total += num(u.Cost)
		}
		return total
	}
	c := p.Costs
	return num(c.Materials) + num(c.Finishing) + num(c.Packaging) + num(c.Shipping) + num(c.Other)
}

// MachineCost prices the "machine" minutes of the time breakdown. The rate
// falls back to the baseline so machine time is never free.
func MachineCost(p storage.Product) float64 {
	minutes := num(p.TimeBreakdown[constants.MachineTimeKey])
	rate := num(p.MachineTime.CostPerHour)
	if rate == 0 {
		rate = constants.DefaultMachineHourlyRate
	}
	return MinutesToHours(minutes) * rate
}

// LaborCost prices every time-breakdown entry except "machine" at the
// resolved hourly rate.
func LaborCost(p storage.Product, hourlyRate float64) float64 {
	var minutes float64
	for task, m := range p.TimeBreakdown {
		if task == constants.MachineTimeKey {
			continue
		}
		minutes += num(m)
	}
	return MinutesToHours(minutes) * num(hourlyRate)
}

// blendedFeeRate is the effective fee fraction across the product's platform
// fee list: sum of fee% x sales-share%.
func blendedFeeRate(fees []storage.PlatformFee) float64 {
	var rate float64
	for _, f := range fees {
		rate += num(f.FeePercentage) / 100 * num(f.SalesPercentage) / 100
	}
	return rate
}

// PlatformFeeCost is the per-unit fee: the blended rate applied to the
// selling price. Multiplied out by monthly units this equals the blended
// rate on full projected revenue.
func PlatformFeeCost(p storage.Product) float64 {
	return num(p.SellingPrice) * blendedFeeRate(p.PlatformFees)
}

func monthlyUnits(p storage.Product) float64 {
	if p.MonthlyUnits < 0 {
		return 0
	}
	return float64(p.MonthlyUnits)
}

// CalculateProductCosts rolls up the four cost components for one product at
// the given hourly rate.
func CalculateProductCosts(p storage.Product, hourlyRate float64) ProductCostBreakdown {
	bd := ProductCostBreakdown{
		MaterialCost:    MaterialCost(p),
		MachineCost:     MachineCost(p),
		LaborCost:       LaborCost(p, hourlyRate),
		PlatformFeeCost: PlatformFeeCost(p),
	}
	bd.TotalCosts = bd.MaterialCost + bd.MachineCost + bd.LaborCost + bd.PlatformFeeCost
	bd.UnitProfit = num(p.SellingPrice) - bd.TotalCosts
	bd.MonthlyProfit = bd.UnitProfit * monthlyUnits(p)
	return bd
}
