package storage

import (
	"context"
	"database/sql"
	"errors"
)

const lastRestaurantKey = "last_restaurant"

// PostgresVisitStore persists client state rows in the client_state table.
type PostgresVisitStore struct {
	DB *sql.DB
}

func NewPostgresVisitStore(db *sql.DB) *PostgresVisitStore {
	return &PostgresVisitStore{DB: db}
}

func (s *PostgresVisitStore) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS client_state (
			user_id    BIGINT NOT NULL,
			key        TEXT NOT NULL,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, key)
		)
	`)
	return err
}

func (s *PostgresVisitStore) LastRestaurant(ctx context.Context, userID int64) (string, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, `
		SELECT value FROM client_state
		WHERE user_id = $1 AND key = $2
	`, userID, lastRestaurantKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *PostgresVisitStore) SetLastRestaurant(ctx context.Context, userID int64, restaurantID string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO client_state (user_id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP
	`, userID, lastRestaurantKey, restaurantID)
	return err
}
