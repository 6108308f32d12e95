package models

import (
	"time"
)

type Book struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	User          User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title         string    `gorm:"not null" json:"title"`
	Author        string    `gorm:"not null" json:"author"`
	Description   string    `gorm:"type:text" json:"description"`
	Link          string    `json:"link"`           // Optional
	Cover         string    `json:"cover"`          // Optional cover image URL
	RecommendedBy string    `json:"recommended_by"` // Free-text display name, kept for older rows
	CreatedAt     time.Time `json:"created_at"`
}

// BookTopic links a book to a topic. A book keeps at least one link from
// submission onward; links are removed only when the book is deleted.
type BookTopic struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	BookID  uint `gorm:"not null;index;uniqueIndex:idx_book_topic" json:"book_id"`
	TopicID uint `gorm:"not null;index;uniqueIndex:idx_book_topic" json:"topic_id"`
}
