package services

import (
	"context"
	"fmt"
	"testing"
)

func TestLookupShortQueryReturnsEmpty(t *testing.T) {
	store := newTestStore(t)
	seedFamily(t, store)
	lookupService := NewLookupService(store)
	ctx := context.Background()

	for _, query := range []string{"", " ", "a", " a ", "\tA\n"} {
		matches, err := lookupService.Lookup(ctx, query)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v, want nil", query, err)
		}
		if len(matches) != 0 {
			t.Errorf("Lookup(%q) = %d matches, want 0", query, len(matches))
		}
	}
}

func TestLookupMatchesFullAndLastName(t *testing.T) {
	store := newTestStore(t)
	seedFamily(t, store)
	lookupService := NewLookupService(store)
	ctx := context.Background()

	tests := []struct {
		query string
		want  int
	}{
		{"moreno", 2},     // last-name match
		{"ada mor", 1},    // across the "first last" concatenation
		{"ADA", 1},        // case-insensitive
		{"haddad", 1},
		{"zz", 0},
	}
	for _, test := range tests {
		t.Run(test.query, func(t *testing.T) {
			matches, err := lookupService.Lookup(ctx, test.query)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", test.query, err)
			}
			if len(matches) != test.want {
				t.Errorf("Lookup(%q) = %d matches, want %d", test.query, len(matches), test.want)
			}
		})
	}
}

func TestLookupOrderedAndCapped(t *testing.T) {
	store := newTestStore(t)
	guestService := NewGuestService(store)
	lookupService := NewLookupService(store)
	ctx := context.Background()

	inputs := []NewGuestInput{}
	for i := 0; i < LookupResultLimit+10; i++ {
		inputs = append(inputs, NewGuestInput{
			FirstName: fmt.Sprintf("Guest%03d", i),
			LastName:  "Rivera",
		})
	}
	if _, err := guestService.CreateGuestsBatch(ctx, inputs); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	matches, err := lookupService.Lookup(ctx, "rivera")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if len(matches) != LookupResultLimit {
		t.Fatalf("got %d matches, want the %d cap", len(matches), LookupResultLimit)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].FirstName > matches[i].FirstName {
			t.Fatalf("matches not ordered by first name within equal last names: %q before %q",
				matches[i-1].FirstName, matches[i].FirstName)
		}
	}
}
