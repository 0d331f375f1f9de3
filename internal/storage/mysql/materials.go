package mysql

import (
	"context"
	"fmt"

	"calc-golang/internal/storage"
)

func (s *Storage) GetAllMaterials(ctx context.Context) ([]storage.Material, error) {
	const op = "storage.mysql.GetAllMaterials"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, batch_cost, batch_quantity, unit
		FROM calc_materials
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var materials []storage.Material
	for rows.Next() {
		var m storage.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.BatchCost, &m.BatchQuantity, &m.Unit); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if m.BatchQuantity > 0 {
			m.UnitCost = m.BatchCost / m.BatchQuantity
		}
		materials = append(materials, m)
	}

	return materials, rows.Err()
}

func (s *Storage) SaveMaterial(ctx context.Context, m storage.Material) error {
	const op = "storage.mysql.SaveMaterial"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calc_materials (id, name, batch_cost, batch_quantity, unit)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name),
			batch_cost = VALUES(batch_cost),
			batch_quantity = VALUES(batch_quantity),
			unit = VALUES(unit)
	`, m.ID, m.Name, m.BatchCost, m.BatchQuantity, m.Unit)
	if err != nil {
		return fmt.Errorf("%s: upsert material id=%s: %w", op, m.ID, err)
	}

	return nil
}

func (s *Storage) DeleteMaterial(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteMaterial"

	_, err := s.db.ExecContext(ctx, `DELETE FROM calc_materials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, id, err)
	}

	return nil
}
