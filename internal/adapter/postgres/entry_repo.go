package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"weightboard/internal/domain"
)

// ListByOwner returns all weigh-ins for the owner, newest entry day first.
func (d *DB) ListByOwner(ctx context.Context, ownerID int64) ([]domain.WeighIn, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, owner_id, to_char(entry_day, 'YYYY-MM-DD'), weight_kg, created_at
		 FROM weigh_ins WHERE owner_id = $1 ORDER BY entry_day DESC;`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WeighIn
	for rows.Next() {
		var e domain.WeighIn
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Day, &e.WeightKg, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByOwnerAndDay returns the entry for a calendar day, or nil.
func (d *DB) GetByOwnerAndDay(ctx context.Context, ownerID int64, day string) (*domain.WeighIn, error) {
	row := d.sql.QueryRowContext(ctx,
		`SELECT id, owner_id, to_char(entry_day, 'YYYY-MM-DD'), weight_kg, created_at
		 FROM weigh_ins WHERE owner_id = $1 AND entry_day = $2;`, ownerID, day)

	var e domain.WeighIn
	if err := row.Scan(&e.ID, &e.OwnerID, &e.Day, &e.WeightKg, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// Insert stores a new weigh-in. A unique-constraint conflict on
// (owner_id, entry_day) is reported as ErrDuplicateDate.
func (d *DB) Insert(ctx context.Context, entry domain.WeighIn) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO weigh_ins(id, owner_id, entry_day, weight_kg, created_at)
		 VALUES($1, $2, $3, $4, $5);`,
		entry.ID, entry.OwnerID, entry.Day, entry.WeightKg, createdAt.UTC())
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.ErrDuplicateDate
	}
	return err
}

// UpdateWeight sets a new weight for an entry. Ids that do not belong to the
// owner match no row, which is a silent no-op.
func (d *DB) UpdateWeight(ctx context.Context, id string, ownerID int64, weightKg float64) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE weigh_ins SET weight_kg = $1 WHERE id = $2 AND owner_id = $3;",
		weightKg, id, ownerID)
	return err
}

// Delete removes an entry; deleting a missing id is not an error.
func (d *DB) Delete(ctx context.Context, id string, ownerID int64) error {
	_, err := d.sql.ExecContext(ctx,
		"DELETE FROM weigh_ins WHERE id = $1 AND owner_id = $2;", id, ownerID)
	return err
}
