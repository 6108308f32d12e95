package models

import (
	"time"
)

type StatusKind string

const (
	StatusAlreadyRead StatusKind = "already_read"
	StatusSkimmed     StatusKind = "skimmed"
	StatusWantToRead  StatusKind = "want_to_read"
	StatusReadingNow  StatusKind = "reading_now"
	// StatusRecommend fits the column but no endpoint produces it; reserved.
	StatusRecommend StatusKind = "recommend"
)

// Valid reports whether k is one of the kinds the API accepts.
func (k StatusKind) Valid() bool {
	switch k {
	case StatusAlreadyRead, StatusSkimmed, StatusWantToRead, StatusReadingNow:
		return true
	}
	return false
}

// BookStatus records that a user currently asserts a reading status for a
// book. Kinds are independent of each other; the same kind toggles.
type BookStatus struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	BookID    uint       `gorm:"not null;index;uniqueIndex:idx_book_user_status" json:"book_id"`
	UserID    uint       `gorm:"not null;index;uniqueIndex:idx_book_user_status" json:"user_id"`
	Status    StatusKind `gorm:"type:varchar(20);not null;uniqueIndex:idx_book_user_status" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
