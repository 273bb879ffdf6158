package domain

import (
	"context"
	"time"
)

// WeighIn is a single dated body-weight measurement owned by one user.
// Entries are listed by entry day descending; index 0 is the latest.
type WeighIn struct {
	ID        string    `json:"id"`
	OwnerID   int64     `json:"ownerId"`
	Day       string    `json:"day"` // YYYY-MM-DD, one entry per owner per day
	WeightKg  float64   `json:"weightKg"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntryRepository is the port for weigh-in persistence. Every operation is
// scoped to a single owner; ids that do not belong to the owner are treated
// as missing.
type EntryRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]WeighIn, error)
	GetByOwnerAndDay(ctx context.Context, ownerID int64, day string) (*WeighIn, error)
	Insert(ctx context.Context, entry WeighIn) error
	UpdateWeight(ctx context.Context, id string, ownerID int64, weightKg float64) error
	Delete(ctx context.Context, id string, ownerID int64) error
}
