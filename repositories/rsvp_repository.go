package repositories

import (
	"context"
	"errors"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IRSVPRepository covers the append-only RSVP ledger. There is deliberately
// no update or delete: history rows are immutable.
type IRSVPRepository interface {
	// AppendBatch inserts all entries in one statement; all or nothing.
	AppendBatch(ctx context.Context, entries []*models.RSVPEntry) error
	// LatestByGuestIDs returns the most recent entry per guest, resolved by
	// comparing timestamps, never by insertion order.
	LatestByGuestIDs(ctx context.Context, guestIDs []string) ([]models.RSVPEntry, error)
}

// RSVPRepository implements IRSVPRepository on GORM.
type RSVPRepository struct {
	db *gorm.DB
}

func NewRSVPRepository(db *gorm.DB) IRSVPRepository {
	return &RSVPRepository{db: db}
}

func (r *RSVPRepository) AppendBatch(ctx context.Context, entries []*models.RSVPEntry) error {
	if len(entries) == 0 {
		return errors.New("no ledger entries to append")
	}
	err := r.db.WithContext(ctx).Create(entries).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.AppendBatch: DB error", zap.Int("count", len(entries)), zap.Error(err))
	}
	return err
}

func (r *RSVPRepository) LatestByGuestIDs(ctx context.Context, guestIDs []string) ([]models.RSVPEntry, error) {
	if len(guestIDs) == 0 {
		return []models.RSVPEntry{}, nil
	}
	var entries []models.RSVPEntry
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (guest_id) *
		     FROM rsvp_guest
		     WHERE guest_id IN ?
		     ORDER BY guest_id, created_at DESC`, guestIDs).
		Scan(&entries).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.LatestByGuestIDs: DB error", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

var _ IRSVPRepository = (*RSVPRepository)(nil)
