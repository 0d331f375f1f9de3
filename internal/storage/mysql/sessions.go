package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"calc-golang/internal/storage"
)

var ErrSessionNotFound = errors.New("session not found")

// SaveSession upserts one calculator document. The state travels as a JSON
// column: the engine is the only thing that interprets its insides, the
// database just keeps whole documents.
func (s *Storage) SaveSession(ctx context.Context, session storage.CalculatorSession) error {
	const op = "storage.mysql.SaveSession"

	stateJSON, err := json.Marshal(session.State)
	if err != nil {
		return fmt.Errorf("%s: marshal state: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO calc_sessions (id, name, state)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name),
			state = VALUES(state),
			updated_at = CURRENT_TIMESTAMP
	`, session.ID, session.Name, stateJSON)
	if err != nil {
		return fmt.Errorf("%s: upsert session id=%s: %w", op, session.ID, err)
	}

	return nil
}

func (s *Storage) GetSession(ctx context.Context, id string) (*storage.CalculatorSession, error) {
	const op = "storage.mysql.GetSession"

	query := `
		SELECT id, name, state, created_at, updated_at
		FROM calc_sessions
		WHERE id = ?
	`

	session := &storage.CalculatorSession{}
	var stateJSON []byte

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.Name,
		&stateJSON,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: id=%s: %w", op, id, ErrSessionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(stateJSON, &session.State); err != nil {
		return nil, fmt.Errorf("%s: unmarshal state: %w", op, err)
	}

	return session, nil
}

func (s *Storage) GetAllSessions(ctx context.Context) ([]storage.SessionSummary, error) {
	const op = "storage.mysql.GetAllSessions"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, updated_at
		FROM calc_sessions
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sessions []storage.SessionSummary
	for rows.Next() {
		var sum storage.SessionSummary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		sessions = append(sessions, sum)
	}

	return sessions, rows.Err()
}

func (s *Storage) DeleteSession(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteSession"

	res, err := s.db.ExecContext(ctx, `DELETE FROM calc_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, id, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: id=%s: %w", op, id, ErrSessionNotFound)
	}

	return nil
}
