package entity

import (
	"time"

	"github.com/google/uuid"
)

type CustomList struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	IsPublic    bool      `db:"is_public"`
}

// CustomListMovie is a list membership entry, unique per (list_id, movie_id).
// Deleting the list cascades here.
type CustomListMovie struct {
	ID      uuid.UUID `db:"id"`
	ListID  uuid.UUID `db:"list_id"`
	MovieID uuid.UUID `db:"movie_id"`
	AddedAt time.Time `db:"added_at"`
}

type CustomListWithCount struct {
	CustomList
	MovieCount int64
}

// CustomListEntry pairs a member movie with the instant it was added
type CustomListEntry struct {
	ID      uuid.UUID
	AddedAt time.Time
	Movie   Movie
}

type CustomListDetail struct {
	CustomList
	Entries []CustomListEntry
}

type CustomListWithUserAndCount struct {
	CustomList
	User       ProfileBrief
	MovieCount int64
}
