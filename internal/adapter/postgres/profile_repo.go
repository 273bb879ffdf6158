package postgres

import (
	"context"
	"database/sql"
	"errors"
)

// TargetWeight returns the owner's target weight, or nil when the profile
// row is missing or the column is null.
func (d *DB) TargetWeight(ctx context.Context, ownerID int64) (*float64, error) {
	var target sql.NullFloat64
	err := d.sql.QueryRowContext(ctx,
		"SELECT target_weight_kg FROM profiles WHERE owner_id = $1;", ownerID,
	).Scan(&target)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !target.Valid {
		return nil, nil
	}
	return &target.Float64, nil
}

// UpsertTargetWeight overwrites the single target value for the owner.
func (d *DB) UpsertTargetWeight(ctx context.Context, ownerID int64, weightKg float64) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profiles(owner_id, target_weight_kg) VALUES($1, $2)
		 ON CONFLICT (owner_id) DO UPDATE SET target_weight_kg = EXCLUDED.target_weight_kg;`,
		ownerID, weightKg)
	return err
}
