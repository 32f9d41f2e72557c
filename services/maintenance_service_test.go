package services

import (
	"context"
	"errors"
	"testing"
)

func TestWipeAllGates(t *testing.T) {
	tests := []struct {
		name             string
		allowDestructive bool
		confirm          string
		wantErr          error
	}{
		{"disabled with wrong phrase", false, "WRONG PHRASE", ErrDestructiveDisabled},
		{"disabled with correct phrase", false, WipeConfirmationPhrase, ErrDestructiveDisabled},
		{"enabled with wrong phrase", true, "WRONG PHRASE", ErrConfirmationMismatch},
		{"enabled with empty phrase", true, "", ErrConfirmationMismatch},
		{"enabled with correct phrase", true, WipeConfirmationPhrase, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := newTestStore(t)
			maintenanceService := NewMaintenanceService(store, test.allowDestructive)
			err := maintenanceService.WipeAll(context.Background(), test.confirm)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("WipeAll() = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestWipeAllClearsEverything(t *testing.T) {
	store := newTestStore(t)
	parentID, childID, _ := seedFamily(t, store)
	ctx := context.Background()

	rsvpService := NewRSVPService(store)
	if err := rsvpService.Submit(ctx, parentID, []GuestResponse{{GuestID: childID, Attending: true}}); err != nil {
		t.Fatalf("seed submit failed: %v", err)
	}

	maintenanceService := NewMaintenanceService(store, true)
	if err := maintenanceService.WipeAll(ctx, WipeConfirmationPhrase); err != nil {
		t.Fatalf("WipeAll() error: %v", err)
	}

	guests, err := NewGuestService(store).ListGuests(ctx, "", 0)
	if err != nil {
		t.Fatalf("ListGuests() error: %v", err)
	}
	if len(guests) != 0 {
		t.Errorf("%d guests remain after wipe", len(guests))
	}
	latest, err := rsvpService.Latest(ctx, []string{parentID, childID})
	if err != nil {
		t.Fatalf("Latest() error: %v", err)
	}
	if len(latest) != 0 {
		t.Errorf("%d ledger rows remain after wipe", len(latest))
	}
}
