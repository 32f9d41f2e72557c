// Package memory implements repositories.Store on plain maps and slices.
// It backs the service tests and exercises the same read/write contracts as
// the database store. It is not safe for concurrent use.
package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"nightsky.wedding/models"
	"nightsky.wedding/repositories"

	"github.com/google/uuid"
)

type data struct {
	guests      map[string]models.Guest
	delegations map[string]map[string]struct{} // parent -> set of children
	rsvps       []models.RSVPEntry
	messages    []models.Message
}

func newData() *data {
	return &data{
		guests:      map[string]models.Guest{},
		delegations: map[string]map[string]struct{}{},
	}
}

func (d *data) clone() *data {
	c := newData()
	for id, g := range d.guests {
		c.guests[id] = g
	}
	for parent, children := range d.delegations {
		set := map[string]struct{}{}
		for child := range children {
			set[child] = struct{}{}
		}
		c.delegations[parent] = set
	}
	c.rsvps = append([]models.RSVPEntry(nil), d.rsvps...)
	c.messages = append([]models.Message(nil), d.messages...)
	return c
}

// Store is the in-memory repositories.Store.
type Store struct {
	data *data
}

func NewStore() *Store {
	return &Store{data: newData()}
}

func (s *Store) Guests() repositories.IGuestRepository           { return guestRepo{s} }
func (s *Store) Delegations() repositories.IDelegationRepository { return delegationRepo{s} }
func (s *Store) RSVPs() repositories.IRSVPRepository             { return rsvpRepo{s} }
func (s *Store) Messages() repositories.IMessageRepository       { return messageRepo{s} }

// Atomic snapshots the state and restores it when fn fails, which gives the
// same all-or-nothing behavior as a database transaction.
func (s *Store) Atomic(ctx context.Context, fn func(tx repositories.Store) error) error {
	snapshot := s.data.clone()
	if err := fn(s); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) Wipe(ctx context.Context) error {
	s.data = newData()
	return nil
}

var _ repositories.Store = (*Store)(nil)

func sortGuestsByName(guests []models.Guest) {
	sort.SliceStable(guests, func(i, j int) bool {
		li, lj := strings.ToLower(guests[i].LastName), strings.ToLower(guests[j].LastName)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(guests[i].FirstName) < strings.ToLower(guests[j].FirstName)
	})
}

type guestRepo struct{ s *Store }

func (r guestRepo) Create(ctx context.Context, guest *models.Guest) error {
	if guest == nil {
		return errors.New("guest is nil")
	}
	if guest.ID == "" {
		guest.ID = uuid.NewString()
	}
	if guest.CreatedAt.IsZero() {
		guest.CreatedAt = time.Now().UTC()
	}
	r.s.data.guests[guest.ID] = *guest
	return nil
}

func (r guestRepo) CreateBatch(ctx context.Context, guests []*models.Guest) error {
	if len(guests) == 0 {
		return errors.New("no guests to create")
	}
	for _, guest := range guests {
		if err := r.Create(ctx, guest); err != nil {
			return err
		}
	}
	return nil
}

func (r guestRepo) FindByID(ctx context.Context, id string) (*models.Guest, error) {
	guest, ok := r.s.data.guests[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &guest, nil
}

func (r guestRepo) FindByIDs(ctx context.Context, ids []string) ([]models.Guest, error) {
	found := []models.Guest{}
	seen := map[string]struct{}{}
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if guest, ok := r.s.data.guests[id]; ok {
			found = append(found, guest)
		}
	}
	return found, nil
}

func (r guestRepo) Search(ctx context.Context, query string, limit int) ([]models.Guest, error) {
	q := strings.ToLower(query)
	matches := []models.Guest{}
	for _, guest := range r.s.data.guests {
		full := strings.ToLower(guest.FirstName + " " + guest.LastName)
		last := strings.ToLower(guest.LastName)
		if strings.Contains(full, q) || strings.Contains(last, q) {
			matches = append(matches, guest)
		}
	}
	sortGuestsByName(matches)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r guestRepo) List(ctx context.Context, limit int) ([]models.Guest, error) {
	all := make([]models.Guest, 0, len(r.s.data.guests))
	for _, guest := range r.s.data.guests {
		all = append(all, guest)
	}
	sortGuestsByName(all)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

type delegationRepo struct{ s *Store }

func (r delegationRepo) ChildIDs(ctx context.Context, parentID string) ([]string, error) {
	children := []string{}
	for child := range r.s.data.delegations[parentID] {
		children = append(children, child)
	}
	sort.Strings(children)
	return children, nil
}

func (r delegationRepo) Grant(ctx context.Context, parentID, childID string) error {
	if parentID == "" || childID == "" {
		return errors.New("parent and child ids are required")
	}
	set, ok := r.s.data.delegations[parentID]
	if !ok {
		set = map[string]struct{}{}
		r.s.data.delegations[parentID] = set
	}
	set[childID] = struct{}{}
	return nil
}

func (r delegationRepo) ReplaceChildren(ctx context.Context, parentID string, childIDs []string) error {
	if parentID == "" {
		return errors.New("parent id is required")
	}
	set := map[string]struct{}{}
	for _, childID := range childIDs {
		set[childID] = struct{}{}
	}
	r.s.data.delegations[parentID] = set
	return nil
}

type rsvpRepo struct{ s *Store }

func (r rsvpRepo) AppendBatch(ctx context.Context, entries []*models.RSVPEntry) error {
	if len(entries) == 0 {
		return errors.New("no ledger entries to append")
	}
	for _, entry := range entries {
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		r.s.data.rsvps = append(r.s.data.rsvps, *entry)
	}
	return nil
}

func (r rsvpRepo) LatestByGuestIDs(ctx context.Context, guestIDs []string) ([]models.RSVPEntry, error) {
	wanted := map[string]struct{}{}
	for _, id := range guestIDs {
		wanted[id] = struct{}{}
	}
	latest := map[string]models.RSVPEntry{}
	for _, entry := range r.s.data.rsvps {
		if _, ok := wanted[entry.GuestID]; !ok {
			continue
		}
		current, ok := latest[entry.GuestID]
		if !ok || !entry.CreatedAt.Before(current.CreatedAt) {
			latest[entry.GuestID] = entry
		}
	}
	ids := make([]string, 0, len(latest))
	for id := range latest {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	result := make([]models.RSVPEntry, 0, len(ids))
	for _, id := range ids {
		result = append(result, latest[id])
	}
	return result, nil
}

type messageRepo struct{ s *Store }

func (r messageRepo) Create(ctx context.Context, message *models.Message) error {
	if message == nil {
		return errors.New("message is nil")
	}
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	r.s.data.messages = append(r.s.data.messages, *message)
	return nil
}

func (r messageRepo) FindAll(ctx context.Context) ([]models.Message, error) {
	all := append([]models.Message(nil), r.s.data.messages...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].SubmittedAt.After(all[j].SubmittedAt)
	})
	return all, nil
}

func (r messageRepo) UpdateFlags(ctx context.Context, id string, publish, anonymous *bool) error {
	for i := range r.s.data.messages {
		if r.s.data.messages[i].ID != id {
			continue
		}
		if publish != nil {
			r.s.data.messages[i].Publish = *publish
		}
		if anonymous != nil {
			r.s.data.messages[i].Anonymous = *anonymous
		}
		return nil
	}
	return repositories.ErrNotFound
}
