package services

import (
	"context"
	"errors"

	"nightsky.wedding/models"
	"nightsky.wedding/repositories"
)

// IAuthorizationService resolves which guests an actor may submit RSVPs for:
// the actor itself plus every guest one delegation hop away. The self edge is
// a resolver rule, not a stored row, so it survives any permission rewrite.
type IAuthorizationService interface {
	// AllowedGuests returns the guest records of the allowed set. An unknown
	// actor yields an empty set, never an error; the write path is the
	// enforcement point.
	AllowedGuests(ctx context.Context, actorID string) ([]models.Guest, error)
	// AllowedIDs returns the allowed set as ids, including the actor itself
	// whether or not a self edge is stored.
	AllowedIDs(ctx context.Context, actorID string) (map[string]struct{}, error)
}

// AuthorizationService implements IAuthorizationService on the delegation
// graph and guest directory.
type AuthorizationService struct {
	store repositories.Store
}

func NewAuthorizationService(store repositories.Store) IAuthorizationService {
	return &AuthorizationService{store: store}
}

func (s *AuthorizationService) AllowedGuests(ctx context.Context, actorID string) ([]models.Guest, error) {
	return allowedGuests(ctx, s.store, actorID)
}

func (s *AuthorizationService) AllowedIDs(ctx context.Context, actorID string) (map[string]struct{}, error) {
	return allowedIDs(ctx, s.store, actorID)
}

// allowedIDs computes self ∪ stored-children(actor). Shared with the ledger
// write path, which re-runs it inside the submission transaction.
func allowedIDs(ctx context.Context, store repositories.Store, actorID string) (map[string]struct{}, error) {
	children, err := store.Delegations().ChildIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}
	allowed := map[string]struct{}{actorID: {}}
	for _, childID := range children {
		allowed[childID] = struct{}{}
	}
	return allowed, nil
}

func allowedGuests(ctx context.Context, store repositories.Store, actorID string) ([]models.Guest, error) {
	allowed, err := allowedIDs(ctx, store, actorID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(allowed))
	for id := range allowed {
		ids = append(ids, id)
	}
	// Unknown ids (including an unknown actor) silently drop out here.
	guests, err := store.Guests().FindByIDs(ctx, ids)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return []models.Guest{}, nil
		}
		return nil, err
	}
	return guests, nil
}

var _ IAuthorizationService = (*AuthorizationService)(nil)
