package services

import (
	"context"
	"errors"
	"testing"
)

func TestCreateGuestRequiresNames(t *testing.T) {
	store := newTestStore(t)
	guestService := NewGuestService(store)
	ctx := context.Background()

	tests := []struct {
		name  string
		input NewGuestInput
	}{
		{"empty first", NewGuestInput{FirstName: "", LastName: "Moreno"}},
		{"empty last", NewGuestInput{FirstName: "Ada", LastName: ""}},
		{"whitespace only", NewGuestInput{FirstName: "  ", LastName: "\t"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := guestService.CreateGuest(ctx, test.input); !errors.Is(err, ErrGuestNameRequired) {
				t.Errorf("CreateGuest() = %v, want ErrGuestNameRequired", err)
			}
		})
	}
}

func TestCreateGuestGrantsSelfEdge(t *testing.T) {
	store := newTestStore(t)
	guestService := NewGuestService(store)
	ctx := context.Background()

	guest, err := guestService.CreateGuest(ctx, NewGuestInput{FirstName: " Ada ", LastName: " Moreno "})
	if err != nil {
		t.Fatalf("CreateGuest() error: %v", err)
	}
	if guest.FirstName != "Ada" || guest.LastName != "Moreno" {
		t.Errorf("names not trimmed: %q %q", guest.FirstName, guest.LastName)
	}

	children, err := guestService.GetPermissions(ctx, guest.ID)
	if err != nil {
		t.Fatalf("GetPermissions() error: %v", err)
	}
	if len(children) == 0 || children[0] != guest.ID {
		t.Errorf("GetPermissions() = %v, want self first", children)
	}
}

func TestCreateGuestsBatchParentGrants(t *testing.T) {
	store := newTestStore(t)
	guestService := NewGuestService(store)
	authService := NewAuthorizationService(store)
	ctx := context.Background()

	created, err := guestService.CreateGuestsBatch(ctx, []NewGuestInput{
		{FirstName: "Ada", LastName: "Moreno", IsParent: true},
		{FirstName: "Theo", LastName: "Moreno", IsParent: true},
		{FirstName: "Mira", LastName: "Moreno", IsChild: true},
		{FirstName: "", LastName: "Dropped"}, // invalid, silently skipped
	})
	if err != nil {
		t.Fatalf("CreateGuestsBatch() error: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("created %d guests, want 3", len(created))
	}

	// Each flagged parent may act for every member of the batch.
	for _, parentIdx := range []int{0, 1} {
		allowed, err := authService.AllowedIDs(ctx, created[parentIdx].ID)
		if err != nil {
			t.Fatalf("AllowedIDs() error: %v", err)
		}
		if len(allowed) != 3 {
			t.Errorf("parent %d allowed set has %d members, want 3", parentIdx, len(allowed))
		}
	}
	// The child may only act for itself.
	allowed, err := authService.AllowedIDs(ctx, created[2].ID)
	if err != nil {
		t.Fatalf("AllowedIDs() error: %v", err)
	}
	if len(allowed) != 1 {
		t.Errorf("child allowed set has %d members, want 1", len(allowed))
	}
}

func TestCreateGuestsBatchRejectsAllInvalid(t *testing.T) {
	store := newTestStore(t)
	guestService := NewGuestService(store)

	_, err := guestService.CreateGuestsBatch(context.Background(), []NewGuestInput{
		{FirstName: "", LastName: ""},
		{FirstName: "   ", LastName: "X"},
	})
	if !errors.Is(err, ErrNoValidGuests) {
		t.Fatalf("CreateGuestsBatch() = %v, want ErrNoValidGuests", err)
	}
}

func TestSetPermissionsFullReplace(t *testing.T) {
	store := newTestStore(t)
	guestService := NewGuestService(store)
	ctx := context.Background()

	created, err := guestService.CreateGuestsBatch(ctx, []NewGuestInput{
		{FirstName: "Ada", LastName: "Moreno"},
		{FirstName: "Theo", LastName: "Moreno"},
		{FirstName: "Mira", LastName: "Moreno"},
		{FirstName: "Noor", LastName: "Haddad"},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	p, a, b, c := created[0].ID, created[1].ID, created[2].ID, created[3].ID

	if _, err := guestService.SetPermissions(ctx, p, []string{a, b}); err != nil {
		t.Fatalf("SetPermissions(p, [a b]) error: %v", err)
	}
	if _, err := guestService.SetPermissions(ctx, p, []string{c}); err != nil {
		t.Fatalf("SetPermissions(p, [c]) error: %v", err)
	}

	children, err := guestService.GetPermissions(ctx, p)
	if err != nil {
		t.Fatalf("GetPermissions() error: %v", err)
	}
	want := map[string]bool{p: true, c: true}
	if len(children) != 2 {
		t.Fatalf("GetPermissions() = %v, want exactly [p c]", children)
	}
	for _, id := range children {
		if !want[id] {
			t.Errorf("unexpected child %s in %v", id, children)
		}
	}
}

func TestSetPermissionsEmptyKeepsSelf(t *testing.T) {
	store := newTestStore(t)
	guestService := NewGuestService(store)
	ctx := context.Background()

	guest, err := guestService.CreateGuest(ctx, NewGuestInput{FirstName: "Ada", LastName: "Moreno"})
	if err != nil {
		t.Fatalf("CreateGuest() error: %v", err)
	}

	returned, err := guestService.SetPermissions(ctx, guest.ID, []string{})
	if err != nil {
		t.Fatalf("SetPermissions() error: %v", err)
	}
	if len(returned) != 1 || returned[0] != guest.ID {
		t.Errorf("SetPermissions() = %v, want self only", returned)
	}

	// Self-authorization survives the replace even though no self edge is
	// stored anymore.
	children, err := guestService.GetPermissions(ctx, guest.ID)
	if err != nil {
		t.Fatalf("GetPermissions() error: %v", err)
	}
	if len(children) < 1 || children[0] != guest.ID {
		t.Errorf("GetPermissions() = %v, want at least [self]", children)
	}
}

func TestSetPermissionsUnknownParent(t *testing.T) {
	store := newTestStore(t)
	guestService := NewGuestService(store)

	_, err := guestService.SetPermissions(context.Background(), "missing-id", nil)
	if !errors.Is(err, ErrGuestNotFound) {
		t.Fatalf("SetPermissions() = %v, want ErrGuestNotFound", err)
	}
}

func TestListGuestsLimits(t *testing.T) {
	store := newTestStore(t)
	guestService := NewGuestService(store)
	ctx := context.Background()

	if _, err := guestService.CreateGuestsBatch(ctx, []NewGuestInput{
		{FirstName: "Ada", LastName: "Moreno"},
		{FirstName: "Noor", LastName: "Haddad"},
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	guests, err := guestService.ListGuests(ctx, "", 1)
	if err != nil {
		t.Fatalf("ListGuests() error: %v", err)
	}
	if len(guests) != 1 {
		t.Errorf("got %d guests with limit 1, want 1", len(guests))
	}

	guests, err = guestService.ListGuests(ctx, "haddad", 0)
	if err != nil {
		t.Fatalf("ListGuests(query) error: %v", err)
	}
	if len(guests) != 1 || guests[0].LastName != "Haddad" {
		t.Errorf("ListGuests(haddad) = %v, want the Haddad guest", guests)
	}
}
