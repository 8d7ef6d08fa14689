package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type healthRepository struct {
	db *sqlx.DB
}

func NewHealthRepository(db *sqlx.DB) HealthRepository {
	return &healthRepository{db: db}
}

// Ping runs a trivial query so a dead pool is reported even when the
// driver keeps idle connections around.
func (r *healthRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.GetContext(ctx, &one, `SELECT 1`); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}
	return nil
}
