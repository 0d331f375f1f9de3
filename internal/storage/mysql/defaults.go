package mysql

import (
	"context"
	"fmt"

	"calc-golang/internal/storage"
)

// Defaults live in a single row seeded by the migrations, so reads never
// come back empty.

func (s *Storage) GetDefaults(ctx context.Context) (*storage.CalculatorDefaults, error) {
	const op = "storage.mysql.GetDefaults"

	query := `
		SELECT hourly_rate, machine_hourly_rate, monthly_goal
		FROM calc_defaults
		WHERE id = 1
	`

	d := &storage.CalculatorDefaults{}
	err := s.db.QueryRowContext(ctx, query).Scan(
		&d.HourlyRate,
		&d.MachineHourlyRate,
		&d.MonthlyGoal,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}

func (s *Storage) UpdateDefaults(ctx context.Context, d storage.CalculatorDefaults) error {
	const op = "storage.mysql.UpdateDefaults"

	_, err := s.db.ExecContext(ctx, `
		UPDATE calc_defaults
		SET hourly_rate = ?, machine_hourly_rate = ?, monthly_goal = ?
		WHERE id = 1
	`, d.HourlyRate, d.MachineHourlyRate, d.MonthlyGoal)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
