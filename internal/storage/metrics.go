package storage

// CalculatedMetrics is the derived snapshot the UI renders. It is rebuilt in
// full on every state change, never patched, so the numbers stay consistent
// with each other.

type ProductMetrics struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	SellingPrice float64 `json:"selling_price"`
	MonthlyUnits float64 `json:"monthly_units"`

	MaterialCost    float64 `json:"material_cost"`
	MachineCost     float64 `json:"machine_cost"`
	LaborCost       float64 `json:"labor_cost"`
	PlatformFeeCost float64 `json:"platform_fee_cost"`
	TotalCosts      float64 `json:"total_costs"`

	UnitProfit     float64 `json:"unit_profit"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	MonthlyProfit  float64 `json:"monthly_profit"`

	// Margin is unit profit as a fraction of selling price, 0 when price is 0.
	Margin float64 `json:"margin"`

	LaborMinutesPerUnit   float64 `json:"labor_minutes_per_unit"`
	MachineMinutesPerUnit float64 `json:"machine_minutes_per_unit"`
	UnitTimeHours         float64 `json:"unit_time_hours"`
	MonthlyTimeHours      float64 `json:"monthly_time_hours"`

	// EffectiveHourlyRate is monthly profit per monthly hour of total time.
	EffectiveHourlyRate float64 `json:"effective_hourly_rate"`

	// FeeShareDeviation is |sum of platform-fee sales shares - 100|, reported
	// for UI warning display and never auto-corrected.
	FeeShareDeviation float64 `json:"fee_share_deviation"`
}

type WorkerLoad struct {
	WorkerID            string  `json:"worker_id"`
	Name                string  `json:"name"`
	HourlyRate          float64 `json:"hourly_rate"`
	AssignedWeeklyHours float64 `json:"assigned_weekly_hours"`
	MaxHoursPerWeek     float64 `json:"max_hours_per_week"`
	OverflowHours       float64 `json:"overflow_hours"`
	MonthlyCost         float64 `json:"monthly_cost"`
}

type LaborMetrics struct {
	WeeklyTaskHours    float64 `json:"weekly_task_hours"`
	WeeklyProductHours float64 `json:"weekly_product_hours"`
	TotalWeeklyHours   float64 `json:"total_weekly_hours"`
	OwnerWeeklyHours   float64 `json:"owner_weekly_hours"`

	// UnassignedHours is non-negative slack: hours needed beyond what workers
	// can take on at their weekly caps.
	UnassignedHours float64 `json:"unassigned_hours"`

	// OpEx is business-task labor, COGS is product labor; both monthly.
	MonthlyOpExLaborCost  float64 `json:"monthly_opex_labor_cost"`
	MonthlyCOGSLaborCost  float64 `json:"monthly_cogs_labor_cost"`
	MonthlyTotalLaborCost float64 `json:"monthly_total_labor_cost"`

	Workers []WorkerLoad `json:"workers,omitempty"`
}

type ChannelMetrics struct {
	ChannelID     string  `json:"channel_id"`
	Name          string  `json:"name"`
	Kind          string  `json:"kind"`
	MonthlySpend  float64 `json:"monthly_spend"`
	UnitsPerMonth float64 `json:"units_per_month"`
	CostPerUnit   float64 `json:"cost_per_unit"`
}

type MarketingMetrics struct {
	TotalUnitsNeeded  float64          `json:"total_units_needed"`
	PaidUnits         float64          `json:"paid_units"`
	OrganicUnits      float64          `json:"organic_units"`
	Shortfall         float64          `json:"shortfall"`
	TotalMonthlySpend float64          `json:"total_monthly_spend"`
	BlendedCAC        float64          `json:"blended_cac"`
	Channels          []ChannelMetrics `json:"channels,omitempty"`
}

type CalculatedMetrics struct {
	Products []ProductMetrics `json:"products,omitempty"`

	TotalMonthlyUnits   float64 `json:"total_monthly_units"`
	TotalMonthlyHours   float64 `json:"total_monthly_hours"`
	TotalMonthlyRevenue float64 `json:"total_monthly_revenue"`
	TotalMonthlyCosts   float64 `json:"total_monthly_costs"`

	TotalGrossProfit     float64 `json:"total_gross_profit"`
	MonthlyBusinessCosts float64 `json:"monthly_business_costs"`
	TotalNetProfit       float64 `json:"total_net_profit"`

	AverageHourlyRate float64 `json:"average_hourly_rate"`

	// GoalAchievementPercentage is deliberately not clamped to 100; clamping
	// for progress bars is a display concern.
	GoalAchievementPercentage float64 `json:"goal_achievement_percentage"`

	Labor     LaborMetrics     `json:"labor"`
	Marketing MarketingMetrics `json:"marketing"`
}
