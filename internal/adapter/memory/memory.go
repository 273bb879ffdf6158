// Package memory implements an in-memory store for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"weightboard/internal/domain"
)

// DB implements all domain repositories in memory.
type DB struct {
	mu       sync.Mutex
	entries  []domain.WeighIn
	targets  map[int64]float64
	users    []*domain.User
	sessions map[string]*domain.Session

	userIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		targets:  make(map[int64]float64),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.EntryRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)

// --- EntryRepository ---

// ListByOwner returns the owner's entries, newest day first.
func (db *DB) ListByOwner(ctx context.Context, ownerID int64) ([]domain.WeighIn, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.WeighIn
	for _, e := range db.entries {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	// Day strings are YYYY-MM-DD; lexical order is chronological.
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	return out, nil
}

// GetByOwnerAndDay returns the entry for a day, or nil.
func (db *DB) GetByOwnerAndDay(ctx context.Context, ownerID int64, day string) (*domain.WeighIn, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].OwnerID == ownerID && db.entries[i].Day == day {
			e := db.entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

// Insert stores a new entry, enforcing the one-per-day rule like the
// database unique constraint does.
func (db *DB) Insert(ctx context.Context, entry domain.WeighIn) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].OwnerID == entry.OwnerID && db.entries[i].Day == entry.Day {
			return domain.ErrDuplicateDate
		}
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	db.entries = append(db.entries, entry)
	return nil
}

// UpdateWeight sets a new weight; foreign or missing ids match nothing.
func (db *DB) UpdateWeight(ctx context.Context, id string, ownerID int64, weightKg float64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].ID == id && db.entries[i].OwnerID == ownerID {
			db.entries[i].WeightKg = weightKg
			return nil
		}
	}
	return nil
}

// Delete removes an entry; missing ids are ignored.
func (db *DB) Delete(ctx context.Context, id string, ownerID int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].ID == id && db.entries[i].OwnerID == ownerID {
			db.entries = append(db.entries[:i], db.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- ProfileRepository ---

// TargetWeight returns the owner's target, or nil when unset.
func (db *DB) TargetWeight(ctx context.Context, ownerID int64) (*float64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if t, ok := db.targets[ownerID]; ok {
		return &t, nil
	}
	return nil, nil
}

// UpsertTargetWeight overwrites the owner's target.
func (db *DB) UpsertTargetWeight(ctx context.Context, ownerID int64, weightKg float64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.targets[ownerID] = weightKg
	return nil
}

// --- UserRepository ---

// GetByEmail returns the user with the given email, or nil.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID returns the user with the given id, or nil.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create stores a new user.
func (db *DB) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	db.users = append(db.users, u)
	cp := *u
	return &cp, nil
}

// --- SessionRepository ---

// SessionRepo exposes the session operations of a DB. DB.Create already
// creates users, so sessions live on a wrapper.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

var _ domain.SessionRepository = (*SessionRepo)(nil)

// Create stores a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

// GetByToken returns the session for a token, or nil.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

// Delete removes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired removes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now()
	for tok, s := range r.db.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.db.sessions, tok)
		}
	}
	return nil
}
