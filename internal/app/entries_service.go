package app

import (
	"context"
	"math"

	"github.com/google/uuid"

	"weightboard/internal/domain"
)

// EntriesService encapsulates the weigh-in use cases. All inputs are
// validated before the repository is touched; repository failures are wrapped
// as StoreError so handlers can surface the message verbatim.
type EntriesService struct {
	repo domain.EntryRepository
}

// NewEntriesService creates an EntriesService backed by the given repository.
func NewEntriesService(repo domain.EntryRepository) *EntriesService {
	return &EntriesService{repo: repo}
}

// List returns all entries for the owner, newest day first.
func (s *EntriesService) List(ctx context.Context, ownerID int64) ([]domain.WeighIn, error) {
	entries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &domain.StoreError{Err: err}
	}
	return entries, nil
}

// Add validates and stores a new entry. A day that already has an entry is
// rejected with ErrDuplicateDate before the insert; the caller should offer
// edit/delete instead.
func (s *EntriesService) Add(ctx context.Context, ownerID int64, day string, weightKg float64) (*domain.WeighIn, error) {
	if day == "" {
		return nil, &domain.ValidationError{Reason: "date is missing"}
	}
	if _, err := domain.ParseDay(day); err != nil {
		return nil, &domain.ValidationError{Reason: err.Error()}
	}
	if err := validWeight(weightKg); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByOwnerAndDay(ctx, ownerID, day)
	if err != nil {
		return nil, &domain.StoreError{Err: err}
	}
	if existing != nil {
		return nil, domain.ErrDuplicateDate
	}

	entry := domain.WeighIn{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		Day:      day,
		WeightKg: weightKg,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		if err == domain.ErrDuplicateDate {
			// Lost a race against a concurrent insert; same user guidance.
			return nil, err
		}
		return nil, &domain.StoreError{Err: err}
	}
	return &entry, nil
}

// UpdateWeight validates and stores a new weight for an existing entry.
// An id that does not belong to the owner is a silent no-op.
func (s *EntriesService) UpdateWeight(ctx context.Context, id string, ownerID int64, weightKg float64) error {
	if err := validWeight(weightKg); err != nil {
		return err
	}
	if err := s.repo.UpdateWeight(ctx, id, ownerID, weightKg); err != nil {
		return &domain.StoreError{Err: err}
	}
	return nil
}

// Delete removes an entry. Deleting a missing id is not an error.
func (s *EntriesService) Delete(ctx context.Context, id string, ownerID int64) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return &domain.StoreError{Err: err}
	}
	return nil
}

func validWeight(kg float64) error {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg <= 0 {
		return &domain.ValidationError{Reason: "weight must be a positive number"}
	}
	return nil
}
