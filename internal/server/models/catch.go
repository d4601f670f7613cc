package models

import "time"

// CatchRecord links one user to one creature for a single catch event.
// A user may hold any number of records for the same creature.
type CatchRecord struct {
	ID         string
	UserID     string
	CreatureID string
	CaughtAt   time.Time
}

// OwnedCreature is a catch record joined with its creature's catalog name,
// the shape returned by list and catch operations.
type OwnedCreature struct {
	RecordID string
	Name     string
	CaughtAt time.Time
}
