package engine

import (
	"math"

	"calc-golang/internal/storage"
)

// Marketing blender: paid-channel output is a forward function of channel
// inputs and is never back-computed from demand. Organic units are the only
// free variable and are derived on every computation as the remainder up to
// total demand, clamped at zero, which keeps paid output as ground truth even
// when it exceeds demand.

// DigitalChannelUnits estimates monthly units from ad spend through the
// reach model: spend x 10 impressions, converted at the channel rate.
func DigitalChannelUnits(c storage.MarketingChannel) float64 {
	spend := num(c.MonthlySpend)
	if spend <= 0 {
		return 0
	}
	return math.Floor(spend * 10 * num(c.ConversionRate) / 100)
}

// EventChannelUnits converts attendance through the sales rate.
func EventChannelUnits(c storage.EventChannel) float64 {
	attendance := num(c.MonthlyAttendance)
	if attendance <= 0 {
		return 0
	}
	return math.Floor(attendance * num(c.SalesRate) / 100)
}

func DigitalCostPerUnit(c storage.MarketingChannel) float64 {
	return safeDiv(num(c.MonthlySpend), DigitalChannelUnits(c))
}

func EventCostPerUnit(c storage.EventChannel) float64 {
	return safeDiv(num(c.MonthlySpend), EventChannelUnits(c))
}

// BalanceOrganic returns the organic units that fill the gap between paid
// output and demand. Paid exceeding demand clamps organic at zero, never
// negative.
func BalanceOrganic(totalUnitsNeeded, paidUnits float64) float64 {
	return math.Max(0, num(totalUnitsNeeded)-num(paidUnits))
}

// BlendedCAC is total paid spend over total paid units, 0 when nothing was
// acquired through paid channels.
func BlendedCAC(totalMonthlySpend, paidUnits float64) float64 {
	return safeDiv(totalMonthlySpend, paidUnits)
}

// ComputeMarketing builds the marketing snapshot for a given total demand.
func ComputeMarketing(ms storage.MarketingState, totalUnitsNeeded float64) storage.MarketingMetrics {
	m := storage.MarketingMetrics{
		TotalUnitsNeeded: num(totalUnitsNeeded),
	}

	for _, c := range ms.DigitalChannels {
		units := DigitalChannelUnits(c)
		m.Channels = append(m.Channels, storage.ChannelMetrics{
			ChannelID:     c.ID,
			Name:          c.Name,
			Kind:          "digital",
			MonthlySpend:  num(c.MonthlySpend),
			UnitsPerMonth: units,
			CostPerUnit:   DigitalCostPerUnit(c),
		})
		m.PaidUnits += units
		m.TotalMonthlySpend += num(c.MonthlySpend)
	}

	for _, c := range ms.EventChannels {
		units := EventChannelUnits(c)
		m.Channels = append(m.Channels, storage.ChannelMetrics{
			ChannelID:     c.ID,
			Name:          c.Name,
			Kind:          "event",
			MonthlySpend:  num(c.MonthlySpend),
			UnitsPerMonth: units,
			CostPerUnit:   EventCostPerUnit(c),
		})
		m.PaidUnits += units
		m.TotalMonthlySpend += num(c.MonthlySpend)
	}

	m.OrganicUnits = BalanceOrganic(m.TotalUnitsNeeded, m.PaidUnits)

	// Surfaced, never silently hidden; zero whenever organic is free to fill
	// the gap.
	m.Shortfall = math.Max(0, m.TotalUnitsNeeded-(m.OrganicUnits+m.PaidUnits))

	m.BlendedCAC = BlendedCAC(m.TotalMonthlySpend, m.PaidUnits)

	return m
}
