package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"
	"nightsky.wedding/repositories"
)

// GuestServiceError is a typed service error.
type GuestServiceError string

func (e GuestServiceError) Error() string { return string(e) }

const (
	ErrGuestNameRequired GuestServiceError = "first and last name are required"
	ErrGuestNotFound     GuestServiceError = "guest not found"
	ErrNoValidGuests     GuestServiceError = "no valid guests provided"
)

// Guest listing limits for the admin console.
const (
	DefaultGuestListLimit = 500
	MaxGuestListLimit     = 2000
)

// NewGuestInput describes one guest to create. IsParent only matters in
// batch creation: a flagged guest is granted delegation over every other
// member of the same batch.
type NewGuestInput struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	IsChild            bool   `json:"isChild"`
	ExpectedGlutenFree bool   `json:"expectedGlutenFree"`
	IsParent           bool   `json:"isParent"`
}

// IGuestService covers guest directory administration and the delegation
// graph operations.
type IGuestService interface {
	CreateGuest(ctx context.Context, input NewGuestInput) (*models.Guest, error)
	CreateGuestsBatch(ctx context.Context, inputs []NewGuestInput) ([]models.Guest, error)
	ListGuests(ctx context.Context, query string, limit int) ([]models.Guest, error)
	// SetPermissions replaces the parent's outgoing edges with exactly the
	// given set. Full-replace semantics: callers resend the complete desired
	// set each time. Self is force-included in the returned set but never
	// persisted as an edge.
	SetPermissions(ctx context.Context, parentID string, childIDs []string) ([]string, error)
	// GetPermissions returns the parent's allowed ids, always including the
	// parent itself.
	GetPermissions(ctx context.Context, parentID string) ([]string, error)
}

// GuestService implements IGuestService.
type GuestService struct {
	store repositories.Store
}

func NewGuestService(store repositories.Store) IGuestService {
	return &GuestService{store: store}
}

// CreateGuest creates a single guest plus its stored self edge.
func (s *GuestService) CreateGuest(ctx context.Context, input NewGuestInput) (*models.Guest, error) {
	first := strings.TrimSpace(input.FirstName)
	last := strings.TrimSpace(input.LastName)
	if first == "" || last == "" {
		return nil, ErrGuestNameRequired
	}

	guest := &models.Guest{
		FirstName:          first,
		LastName:           last,
		IsChild:            input.IsChild,
		ExpectedGlutenFree: input.ExpectedGlutenFree,
	}
	err := s.store.Atomic(ctx, func(tx repositories.Store) error {
		if err := tx.Guests().Create(ctx, guest); err != nil {
			return err
		}
		return tx.Delegations().Grant(ctx, guest.ID, guest.ID)
	})
	if err != nil {
		return nil, err
	}
	configslog.SLog.Infof("guest created: %s %s (%s)", guest.FirstName, guest.LastName, guest.ID)
	return guest, nil
}

// CreateGuestsBatch creates all valid inputs in one transaction: the guests,
// a self edge for each, and a parent edge from every flagged parent to every
// other member of the same batch. Inputs with empty names are dropped.
func (s *GuestService) CreateGuestsBatch(ctx context.Context, inputs []NewGuestInput) ([]models.Guest, error) {
	type member struct {
		guest    *models.Guest
		isParent bool
	}
	members := []member{}
	for _, input := range inputs {
		first := strings.TrimSpace(input.FirstName)
		last := strings.TrimSpace(input.LastName)
		if first == "" || last == "" {
			continue
		}
		members = append(members, member{
			guest: &models.Guest{
				FirstName:          first,
				LastName:           last,
				IsChild:            input.IsChild,
				ExpectedGlutenFree: input.ExpectedGlutenFree,
			},
			isParent: input.IsParent,
		})
	}
	if len(members) == 0 {
		return nil, ErrNoValidGuests
	}

	err := s.store.Atomic(ctx, func(tx repositories.Store) error {
		guests := make([]*models.Guest, 0, len(members))
		for _, m := range members {
			guests = append(guests, m.guest)
		}
		if err := tx.Guests().CreateBatch(ctx, guests); err != nil {
			return err
		}
		for _, m := range members {
			if err := tx.Delegations().Grant(ctx, m.guest.ID, m.guest.ID); err != nil {
				return err
			}
		}
		for _, parent := range members {
			if !parent.isParent {
				continue
			}
			for _, child := range members {
				if child.guest.ID == parent.guest.ID {
					continue
				}
				if err := tx.Delegations().Grant(ctx, parent.guest.ID, child.guest.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created := make([]models.Guest, 0, len(members))
	for _, m := range members {
		created = append(created, *m.guest)
	}
	configslog.SLog.Infof("guest batch created: %d guests", len(created))
	return created, nil
}

func (s *GuestService) ListGuests(ctx context.Context, query string, limit int) ([]models.Guest, error) {
	if limit <= 0 {
		limit = DefaultGuestListLimit
	}
	if limit > MaxGuestListLimit {
		limit = MaxGuestListLimit
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return s.store.Guests().List(ctx, limit)
	}
	return s.store.Guests().Search(ctx, query, limit)
}

func (s *GuestService) SetPermissions(ctx context.Context, parentID string, childIDs []string) ([]string, error) {
	parentID = strings.TrimSpace(parentID)
	if parentID == "" {
		return nil, ErrGuestNotFound
	}
	if _, err := s.store.Guests().FindByID(ctx, parentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	// Normalize to a unique set with self force-included; the self edge
	// itself stays implicit and is not persisted.
	requested := []string{parentID}
	seen := map[string]struct{}{parentID: {}}
	toStore := []string{}
	for _, childID := range childIDs {
		childID = strings.TrimSpace(childID)
		if childID == "" {
			continue
		}
		if _, dup := seen[childID]; dup {
			continue
		}
		seen[childID] = struct{}{}
		requested = append(requested, childID)
		toStore = append(toStore, childID)
	}

	err := s.store.Atomic(ctx, func(tx repositories.Store) error {
		return tx.Delegations().ReplaceChildren(ctx, parentID, toStore)
	})
	if err != nil {
		return nil, err
	}
	configslog.SLog.Infof("permissions replaced: parent=%s children=%d", parentID, len(toStore))
	return requested, nil
}

func (s *GuestService) GetPermissions(ctx context.Context, parentID string) ([]string, error) {
	stored, err := s.store.Delegations().ChildIDs(ctx, parentID)
	if err != nil {
		return nil, err
	}
	children := []string{parentID}
	for _, childID := range stored {
		if childID == parentID {
			continue
		}
		children = append(children, childID)
	}
	sort.Strings(children[1:])
	return children, nil
}

var _ IGuestService = (*GuestService)(nil)
