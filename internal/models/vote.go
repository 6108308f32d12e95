package models

import (
	"time"
)

// Vote is set membership, not a counter: at most one row per (book, voter).
// Counts are always derived from this table.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookID    uint      `gorm:"not null;index;uniqueIndex:idx_book_voter" json:"book_id"`
	VoterID   uint      `gorm:"not null;index;uniqueIndex:idx_book_voter" json:"voter_id"`
	CreatedAt time.Time `json:"created_at"`
}
