package storage

import "time"

// CalculatorSession is one saved calculator document.
type CalculatorSession struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	State     CalculatorState `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type SessionSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CalculatorDefaults are the admin-editable global rates applied to a state
// before computation when the document carries zeros.
type CalculatorDefaults struct {
	HourlyRate        float64 `json:"hourly_rate"`
	MachineHourlyRate float64 `json:"machine_hourly_rate"`
	MonthlyGoal       float64 `json:"monthly_goal"`
}

// ProductTemplate is a prefilled product for the setup step.
type ProductTemplate struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Product  Product `json:"product"`
	IsActive bool    `json:"is_active"`
}
