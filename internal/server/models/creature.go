package models

import "time"

// Creature is the canonical catalog row for a named species. It is created
// lazily the first time any user catches that name and is shared read-only
// by everyone afterwards. Name is unique and case-sensitive.
type Creature struct {
	ID             string
	Name           string
	BaseExperience int
	Height         int
	Weight         int
	CreatedAt      time.Time
}
