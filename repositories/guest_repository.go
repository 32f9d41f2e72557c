package repositories

import (
	"context"
	"errors"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"
	"nightsky.wedding/pkg/namesearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IGuestRepository covers guest directory reads and writes.
type IGuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	CreateBatch(ctx context.Context, guests []*models.Guest) error
	FindByID(ctx context.Context, id string) (*models.Guest, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Guest, error)
	Search(ctx context.Context, query string, limit int) ([]models.Guest, error)
	List(ctx context.Context, limit int) ([]models.Guest, error)
}

// GuestRepository implements IGuestRepository on GORM.
type GuestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a guest repository bound to the given handle,
// which may be the shared pool or a transaction.
func NewGuestRepository(db *gorm.DB) IGuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	if guest == nil {
		return errors.New("guest is nil")
	}
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *GuestRepository) CreateBatch(ctx context.Context, guests []*models.Guest) error {
	if len(guests) == 0 {
		return errors.New("no guests to create")
	}
	return r.db.WithContext(ctx).Create(guests).Error
}

func (r *GuestRepository) FindByID(ctx context.Context, id string) (*models.Guest, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var guest models.Guest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GuestRepository.FindByID: DB error", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Guest, error) {
	if len(ids) == 0 {
		return []models.Guest{}, nil
	}
	var guests []models.Guest
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindByIDs: DB error", zap.Error(err))
		return nil, err
	}
	return guests, nil
}

// Search matches the query case-insensitively against "first last" or the
// last name alone, ordered by last name then first name.
func (r *GuestRepository) Search(ctx context.Context, query string, limit int) ([]models.Guest, error) {
	fragment, args := namesearch.SQLFilter("first_name", "last_name", query)
	var guests []models.Guest
	err := r.db.WithContext(ctx).
		Where(fragment, args...).
		Order("last_name, first_name").
		Limit(limit).
		Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.Search: DB error", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	return guests, nil
}

func (r *GuestRepository) List(ctx context.Context, limit int) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.db.WithContext(ctx).
		Order("last_name, first_name").
		Limit(limit).
		Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.List: DB error", zap.Error(err))
		return nil, err
	}
	return guests, nil
}

var _ IGuestRepository = (*GuestRepository)(nil)
