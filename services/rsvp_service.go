package services

import (
	"context"
	"strings"
	"time"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"
	"nightsky.wedding/repositories"

	"go.uber.org/zap"
)

// RSVPServiceError is a typed service error.
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPInvalidInput RSVPServiceError = "acting guest and at least one response are required"
	ErrRSVPUnknownGuest RSVPServiceError = "unknown guest id(s)"
	ErrRSVPForbidden    RSVPServiceError = "not authorized for one or more guests"
)

// GuestResponse is one per-guest answer within a submission batch.
type GuestResponse struct {
	GuestID       string  `json:"guestId"`
	Attending     bool    `json:"attending"`
	GlutenFree    *bool   `json:"glutenFree"`
	NeedTransport *bool   `json:"needTransport"`
	DietaryNotes  *string `json:"dietaryNotes"`
}

// IRSVPService is the write and read path of the RSVP ledger.
type IRSVPService interface {
	// Submit validates and appends one batch of responses. The whole batch
	// is rejected if any target lies outside the actor's allowed set, and
	// the ledger is left untouched on any failure.
	Submit(ctx context.Context, actorID string, responses []GuestResponse) error
	// Latest returns the current status per guest, resolved by latest
	// timestamp. Guests without history are absent from the result.
	Latest(ctx context.Context, guestIDs []string) ([]models.RSVPEntry, error)
}

// RSVPService implements IRSVPService.
type RSVPService struct {
	store repositories.Store
}

func NewRSVPService(store repositories.Store) IRSVPService {
	return &RSVPService{store: store}
}

// Submit runs existence check, authorization and append inside one
// transaction, so a concurrent permission revocation cannot slip a row in
// between the check and the write.
func (s *RSVPService) Submit(ctx context.Context, actorID string, responses []GuestResponse) error {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" || len(responses) == 0 {
		return ErrRSVPInvalidInput
	}
	for _, response := range responses {
		if strings.TrimSpace(response.GuestID) == "" {
			return ErrRSVPInvalidInput
		}
	}

	return s.store.Atomic(ctx, func(tx repositories.Store) error {
		ids := uniqueGuestIDs(responses)
		found, err := tx.Guests().FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(found) != len(ids) {
			return ErrRSVPUnknownGuest
		}

		allowed, err := allowedIDs(ctx, tx, actorID)
		if err != nil {
			return err
		}
		for _, response := range responses {
			if _, ok := allowed[response.GuestID]; !ok {
				return ErrRSVPForbidden
			}
		}

		now := time.Now().UTC()
		entries := make([]*models.RSVPEntry, 0, len(responses))
		for _, response := range responses {
			entries = append(entries, normalizeResponse(response, actorID, now))
		}
		if err := tx.RSVPs().AppendBatch(ctx, entries); err != nil {
			return err
		}
		configslog.SLog.Infof("rsvp batch appended: actor=%s rows=%d", actorID, len(entries))
		return nil
	})
}

func (s *RSVPService) Latest(ctx context.Context, guestIDs []string) ([]models.RSVPEntry, error) {
	ids := []string{}
	seen := map[string]struct{}{}
	for _, id := range guestIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return []models.RSVPEntry{}, nil
	}
	entries, err := s.store.RSVPs().LatestByGuestIDs(ctx, ids)
	if err != nil {
		configslog.Log.Error("RSVPService.Latest failed", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// normalizeResponse applies the storage semantics: transport and dietary
// notes are meaningful only while attending, gluten-free defaults to false.
func normalizeResponse(response GuestResponse, actorID string, submittedAt time.Time) *models.RSVPEntry {
	entry := &models.RSVPEntry{
		GuestID:    response.GuestID,
		RSVPBy:     actorID,
		Attending:  response.Attending,
		GlutenFree: response.GlutenFree != nil && *response.GlutenFree,
		CreatedAt:  submittedAt,
	}
	if response.Attending {
		entry.NeedTransport = response.NeedTransport != nil && *response.NeedTransport
		if response.DietaryNotes != nil {
			if notes := strings.TrimSpace(*response.DietaryNotes); notes != "" {
				entry.DietaryNotes = &notes
			}
		}
	}
	return entry
}

func uniqueGuestIDs(responses []GuestResponse) []string {
	ids := make([]string, 0, len(responses))
	seen := map[string]struct{}{}
	for _, response := range responses {
		if _, dup := seen[response.GuestID]; dup {
			continue
		}
		seen[response.GuestID] = struct{}{}
		ids = append(ids, response.GuestID)
	}
	return ids
}

var _ IRSVPService = (*RSVPService)(nil)
