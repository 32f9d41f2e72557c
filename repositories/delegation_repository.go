package repositories

import (
	"context"
	"errors"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IDelegationRepository covers the parent -> child delegation edges.
type IDelegationRepository interface {
	// ChildIDs returns the stored one-hop targets of the parent. The self
	// edge is not guaranteed to be present; callers union it themselves.
	ChildIDs(ctx context.Context, parentID string) ([]string, error)
	// Grant inserts one edge; re-granting an existing pair is a no-op.
	Grant(ctx context.Context, parentID, childID string) error
	// ReplaceChildren deletes every outgoing edge of the parent and inserts
	// the given set. Run inside Store.Atomic.
	ReplaceChildren(ctx context.Context, parentID string, childIDs []string) error
}

// DelegationRepository implements IDelegationRepository on GORM.
type DelegationRepository struct {
	db *gorm.DB
}

func NewDelegationRepository(db *gorm.DB) IDelegationRepository {
	return &DelegationRepository{db: db}
}

func (r *DelegationRepository) ChildIDs(ctx context.Context, parentID string) ([]string, error) {
	if parentID == "" {
		return []string{}, nil
	}
	var children []string
	err := r.db.WithContext(ctx).
		Model(&models.Delegation{}).
		Where("parent = ?", parentID).
		Order("child").
		Pluck("child", &children).Error
	if err != nil {
		configslog.Log.Error("DelegationRepository.ChildIDs: DB error", zap.String("parent", parentID), zap.Error(err))
		return nil, err
	}
	return children, nil
}

func (r *DelegationRepository) Grant(ctx context.Context, parentID, childID string) error {
	if parentID == "" || childID == "" {
		return errors.New("parent and child ids are required")
	}
	edge := models.Delegation{Parent: parentID, Child: childID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
}

func (r *DelegationRepository) ReplaceChildren(ctx context.Context, parentID string, childIDs []string) error {
	if parentID == "" {
		return errors.New("parent id is required")
	}
	db := r.db.WithContext(ctx)
	if err := db.Where("parent = ?", parentID).Delete(&models.Delegation{}).Error; err != nil {
		configslog.Log.Error("DelegationRepository.ReplaceChildren: delete failed", zap.String("parent", parentID), zap.Error(err))
		return err
	}
	if len(childIDs) == 0 {
		return nil
	}
	edges := make([]models.Delegation, 0, len(childIDs))
	for _, childID := range childIDs {
		edges = append(edges, models.Delegation{Parent: parentID, Child: childID})
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edges).Error
	if err != nil {
		configslog.Log.Error("DelegationRepository.ReplaceChildren: insert failed", zap.String("parent", parentID), zap.Error(err))
	}
	return err
}

var _ IDelegationRepository = (*DelegationRepository)(nil)
