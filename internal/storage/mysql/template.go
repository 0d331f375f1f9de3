package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"calc-golang/internal/storage"
)

func (s *Storage) GetTemplateByCode(ctx context.Context, code string) (*storage.ProductTemplate, error) {
	const op = "storage.mysql.GetTemplateByCode"

	query := `
		SELECT id, code, name, category, product
		FROM calc_templates
		WHERE code = ? AND is_active = TRUE
	`

	tpl := &storage.ProductTemplate{}
	var productJSON []byte

	err := s.db.QueryRowContext(ctx, query, code).Scan(
		&tpl.ID,
		&tpl.Code,
		&tpl.Name,
		&tpl.Category,
		&productJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: template code=%s not found: %w", op, code, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(productJSON, &tpl.Product); err != nil {
		return nil, fmt.Errorf("%s: unmarshal product: %w", op, err)
	}
	tpl.IsActive = true

	return tpl, nil
}

func (s *Storage) GetAllTemplates(ctx context.Context) ([]*storage.ProductTemplate, error) {
	const op = "storage.mysql.GetAllTemplates"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, code, name, category, product
		FROM calc_templates
		WHERE is_active = TRUE
		ORDER BY category, name
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var templates []*storage.ProductTemplate
	for rows.Next() {
		tpl := &storage.ProductTemplate{IsActive: true}
		var productJSON []byte
		if err := rows.Scan(&tpl.ID, &tpl.Code, &tpl.Name, &tpl.Category, &productJSON); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if err := json.Unmarshal(productJSON, &tpl.Product); err != nil {
			return nil, fmt.Errorf("%s: unmarshal product code=%s: %w", op, tpl.Code, err)
		}
		templates = append(templates, tpl)
	}

	return templates, rows.Err()
}

func (s *Storage) SaveTemplate(ctx context.Context, tpl storage.ProductTemplate) error {
	const op = "storage.mysql.SaveTemplate"

	productJSON, err := json.Marshal(tpl.Product)
	if err != nil {
		return fmt.Errorf("%s: marshal product: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO calc_templates (id, code, name, category, product, is_active)
		VALUES (?, ?, ?, ?, ?, TRUE)
	`, tpl.ID, tpl.Code, tpl.Name, tpl.Category, productJSON)
	if err != nil {
		return fmt.Errorf("%s: insert template code=%s: %w", op, tpl.Code, err)
	}

	return nil
}

func (s *Storage) UpdateTemplate(ctx context.Context, code string, tpl storage.ProductTemplate) error {
	const op = "storage.mysql.UpdateTemplate"

	productJSON, err := json.Marshal(tpl.Product)
	if err != nil {
		return fmt.Errorf("%s: marshal product: %w", op, err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE calc_templates
		SET name = ?, category = ?, product = ?, is_active = ?
		WHERE code = ?
	`, tpl.Name, tpl.Category, productJSON, tpl.IsActive, code)
	if err != nil {
		return fmt.Errorf("%s: update template code=%s: %w", op, code, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: template code=%s not found", op, code)
	}

	return nil
}
