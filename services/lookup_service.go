package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"nightsky.wedding/models"
	"nightsky.wedding/repositories"
)

// LookupResultLimit caps how many candidates one lookup may return.
const LookupResultLimit = 50

// lookupMinQueryLength is the minimum query length after trimming. Shorter
// queries yield an empty match list, never an error.
const lookupMinQueryLength = 2

// ILookupService lets a visitor find their own guest record by name.
type ILookupService interface {
	Lookup(ctx context.Context, name string) ([]models.Guest, error)
}

// LookupService implements ILookupService against the guest directory.
type LookupService struct {
	store repositories.Store
}

func NewLookupService(store repositories.Store) ILookupService {
	return &LookupService{store: store}
}

// Lookup matches the trimmed query case-insensitively against the "first
// last" concatenation or the last name alone, ordered by last name then
// first name. Lookup has no side effects.
func (s *LookupService) Lookup(ctx context.Context, name string) ([]models.Guest, error) {
	query := strings.TrimSpace(name)
	if utf8.RuneCountInString(query) < lookupMinQueryLength {
		return []models.Guest{}, nil
	}
	guests, err := s.store.Guests().Search(ctx, query, LookupResultLimit)
	if err != nil {
		return nil, err
	}
	if guests == nil {
		guests = []models.Guest{}
	}
	return guests, nil
}

var _ ILookupService = (*LookupService)(nil)
