package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store aggregates the repositories behind one injectable capability, so
// services can run against the database or an in-memory fake alike. Atomic
// runs the callback against a store bound to a single transaction.
type Store interface {
	Guests() IGuestRepository
	Delegations() IDelegationRepository
	RSVPs() IRSVPRepository
	Messages() IMessageRepository

	Atomic(ctx context.Context, fn func(tx Store) error) error
	// Wipe truncates every table. Callers gate this; the store does not.
	Wipe(ctx context.Context) error
}

// GormStore implements Store on a GORM handle.
type GormStore struct {
	db          *gorm.DB
	guests      IGuestRepository
	delegations IDelegationRepository
	rsvps       IRSVPRepository
	messages    IMessageRepository
}

// NewStore binds all repositories to the given handle, which may be the
// shared pool or a transaction started by Atomic.
func NewStore(db *gorm.DB) Store {
	return &GormStore{
		db:          db,
		guests:      NewGuestRepository(db),
		delegations: NewDelegationRepository(db),
		rsvps:       NewRSVPRepository(db),
		messages:    NewMessageRepository(db),
	}
}

func (s *GormStore) Guests() IGuestRepository           { return s.guests }
func (s *GormStore) Delegations() IDelegationRepository { return s.delegations }
func (s *GormStore) RSVPs() IRSVPRepository             { return s.rsvps }
func (s *GormStore) Messages() IMessageRepository       { return s.messages }

func (s *GormStore) Atomic(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func (s *GormStore) Wipe(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec(
		`TRUNCATE TABLE can_rsvp_for, rsvp_guest, messages, guests RESTART IDENTITY CASCADE`,
	).Error
}

var _ Store = (*GormStore)(nil)
