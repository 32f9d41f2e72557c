package services

import (
	"context"
	"strings"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/repositories"
)

// WipeConfirmationPhrase must be typed exactly to run the full wipe.
const WipeConfirmationPhrase = "ERASE ALL DATA"

// MaintenanceServiceError is a typed service error.
type MaintenanceServiceError string

func (e MaintenanceServiceError) Error() string { return string(e) }

const (
	ErrDestructiveDisabled  MaintenanceServiceError = "destructive operations are disabled"
	ErrConfirmationMismatch MaintenanceServiceError = "confirmation phrase mismatch"
)

// IMaintenanceService holds the destructive admin operations.
type IMaintenanceService interface {
	// WipeAll truncates every table. Two independent gates: the environment
	// flag must be on AND the confirmation phrase must match exactly.
	WipeAll(ctx context.Context, confirm string) error
}

// MaintenanceService implements IMaintenanceService.
type MaintenanceService struct {
	store            repositories.Store
	allowDestructive bool
}

func NewMaintenanceService(store repositories.Store, allowDestructive bool) IMaintenanceService {
	return &MaintenanceService{store: store, allowDestructive: allowDestructive}
}

func (s *MaintenanceService) WipeAll(ctx context.Context, confirm string) error {
	if !s.allowDestructive {
		return ErrDestructiveDisabled
	}
	if strings.TrimSpace(confirm) != WipeConfirmationPhrase {
		return ErrConfirmationMismatch
	}
	if err := s.store.Wipe(ctx); err != nil {
		return err
	}
	configslog.SLog.Warn("all guest, delegation, rsvp and message data wiped")
	return nil
}

var _ IMaintenanceService = (*MaintenanceService)(nil)
