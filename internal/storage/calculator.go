package storage

// Document types for the machine-business calculator. The UI owns the
// CalculatorState document and mutates it in fragments; the engine only ever
// reads it. Every numeric field may be missing in the JSON and must be read
// as 0, every collection as empty.

type FlatCosts struct {
	Materials float64 `json:"materials"`
	Finishing float64 `json:"finishing"`
	Packaging float64 `json:"packaging"`
	Shipping  float64 `json:"shipping"`
	Other     float64 `json:"other"`
}

// MaterialUsage is one itemized cost line on a product. Cost is stored, not
// re-derived from the library, so later edits to a library material do not
// rewrite historical product costs until the user re-syncs the line.
type MaterialUsage struct {
	ID         string  `json:"id"`
	MaterialID string  `json:"material_id,omitempty"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	UnitCost   float64 `json:"unit_cost"`
	Cost       float64 `json:"cost"`
}

type MachineTime struct {
	Minutes     float64 `json:"minutes"`
	CostPerHour float64 `json:"cost_per_hour"`
	TotalCost   float64 `json:"total_cost"`
}

type PlatformFee struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	FeePercentage   float64 `json:"fee_percentage"`
	SalesPercentage float64 `json:"sales_percentage"`
}

type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SellingPrice float64 `json:"selling_price"`
	MonthlyUnits int     `json:"monthly_units"`

	// Costs and MaterialUsage are mutually exclusive cost models: any usage
	// line suppresses the flat buckets entirely.
	Costs         FlatCosts       `json:"costs"`
	MaterialUsage []MaterialUsage `json:"material_usage,omitempty"`

	MachineTime MachineTime `json:"machine_time"`

	// TimeBreakdown maps task name -> minutes per unit. The "machine" key is
	// costed via MachineTime, not as labor.
	TimeBreakdown map[string]float64 `json:"time_breakdown,omitempty"`

	PlatformFees []PlatformFee `json:"platform_fees,omitempty"`
}

// Material is a reusable batch-pricing library entry.
type Material struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	BatchCost     float64 `json:"batch_cost"`
	BatchQuantity float64 `json:"batch_quantity"`
	Unit          string  `json:"unit"`
	UnitCost      float64 `json:"unit_cost"`
}

type Worker struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	HourlyRate      float64  `json:"hourly_rate"`
	MaxHoursPerWeek float64  `json:"max_hours_per_week"`
	Skills          []string `json:"skills,omitempty"`
}

// BusinessTask is recurring overhead labor (bookkeeping, marketing, ...),
// distinct from per-product production time.
type BusinessTask struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	HoursPerWeek     float64 `json:"hours_per_week"`
	AssignedWorkerID string  `json:"assigned_worker_id,omitempty"`
}

type LaborState struct {
	Workers       []Worker       `json:"workers,omitempty"`
	BusinessTasks []BusinessTask `json:"business_tasks,omitempty"`

	// ProductAssignments maps product id -> worker id, default "owner".
	ProductAssignments map[string]string `json:"product_assignments,omitempty"`
}

// MarketingChannel is a flat-rate digital ad channel. Units and cost-per-unit
// are derived, never settable.
type MarketingChannel struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	MonthlySpend   float64 `json:"monthly_spend"`
	ConversionRate float64 `json:"conversion_rate"`
}

// EventChannel is an attendance-based channel with a fixed event cost.
type EventChannel struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	MonthlySpend      float64 `json:"monthly_spend"`
	MonthlyAttendance float64 `json:"monthly_attendance"`
	SalesRate         float64 `json:"sales_rate"`
}

type MarketingState struct {
	OrganicUnitsPerMonth float64            `json:"organic_units_per_month"`
	DigitalChannels      []MarketingChannel `json:"digital_channels,omitempty"`
	EventChannels        []EventChannel     `json:"event_channels,omitempty"`
}

type BusinessCost struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MonthlyCost float64 `json:"monthly_cost"`
	Selected    bool    `json:"selected"`
}

type WizardProgress struct {
	CurrentLevel    int   `json:"current_level"`
	CompletedLevels []int `json:"completed_levels,omitempty"`
}

// CalculatorState is the root aggregate the wizard edits.
type CalculatorState struct {
	Products      []Product      `json:"products,omitempty"`
	Materials     []Material     `json:"materials,omitempty"`
	HourlyRate    float64        `json:"hourly_rate"`
	MonthlyGoal   float64        `json:"monthly_goal"`
	Labor         LaborState     `json:"labor"`
	Marketing     MarketingState `json:"marketing"`
	BusinessCosts []BusinessCost `json:"business_costs,omitempty"`
	Progress      WizardProgress `json:"progress"`
}
