package models

// Delegation is one directed parent -> child edge: the parent guest may
// submit an RSVP on the child's behalf. Edges are one hop only and are never
// transitively closed. A self edge may be stored but never has to be; the
// authorization resolver always unions the actor itself into the allowed set.
type Delegation struct {
	Parent string `gorm:"type:uuid;not null;uniqueIndex:idx_can_rsvp_for_pair;index"`
	Child  string `gorm:"type:uuid;not null;uniqueIndex:idx_can_rsvp_for_pair"`
}

func (Delegation) TableName() string { return "can_rsvp_for" }
