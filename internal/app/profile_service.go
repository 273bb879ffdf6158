package app

import (
	"context"

	"weightboard/internal/domain"
)

// ProfileService encapsulates the target-weight use cases.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Target returns the owner's target weight, or nil when none is set.
func (s *ProfileService) Target(ctx context.Context, ownerID int64) (*float64, error) {
	target, err := s.repo.TargetWeight(ctx, ownerID)
	if err != nil {
		return nil, &domain.StoreError{Err: err}
	}
	return target, nil
}

// SaveTarget validates and overwrites the owner's single target value.
func (s *ProfileService) SaveTarget(ctx context.Context, ownerID int64, weightKg float64) error {
	if err := validWeight(weightKg); err != nil {
		return err
	}
	if err := s.repo.UpsertTargetWeight(ctx, ownerID, weightKg); err != nil {
		return &domain.StoreError{Err: err}
	}
	return nil
}
