package domain

import "context"

// Profile holds per-owner settings. The target weight is optional; nil means
// the owner never set one.
type Profile struct {
	OwnerID        int64    `json:"ownerId"`
	TargetWeightKg *float64 `json:"targetWeightKg"`
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	// TargetWeight returns nil (not an error) when no target is set.
	TargetWeight(ctx context.Context, ownerID int64) (*float64, error)
	// UpsertTargetWeight overwrites the single target value for the owner.
	UpsertTargetWeight(ctx context.Context, ownerID int64, weightKg float64) error
}
