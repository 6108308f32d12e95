package services

import (
	"errors"

	"bookclub/internal/db"
	"bookclub/internal/models"
	"bookclub/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidStatus = errors.New("invalid status kind")
	ErrNoTopics      = errors.New("at least one topic is required")
)

const bookListCacheKey = "books:list"

// invalidateListing drops the cached book list so the next read recomputes
// aggregates. Called after every engagement mutation.
func invalidateListing() {
	utils.GetCache().Delete(bookListCacheKey)
}

func ensureBook(bookID uint) error {
	if err := db.DB.First(&models.Book{}, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// CastVote records a vote for a book. Inserting an existing (book, voter)
// pair is a no-op: the unique index deduplicates, so two racing identical
// requests both converge on a single row. Returns whether a row was created.
func CastVote(bookID, voterID uint) (bool, error) {
	if err := ensureBook(bookID); err != nil {
		return false, err
	}

	vote := models.Vote{BookID: bookID, VoterID: voterID}
	result := db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&vote)
	if result.Error != nil {
		return false, result.Error
	}

	invalidateListing()
	return result.RowsAffected > 0, nil
}

// RetractVote removes a vote. Deleting an absent row is a no-op success.
func RetractVote(bookID, voterID uint) error {
	if err := ensureBook(bookID); err != nil {
		return err
	}

	if err := db.DB.Where("book_id = ? AND voter_id = ?", bookID, voterID).
		Delete(&models.Vote{}).Error; err != nil {
		return err
	}

	invalidateListing()
	return nil
}

// AddStatus asserts a reading status for a (book, user) pair. Each kind is
// independent; re-asserting an existing kind is a no-op.
func AddStatus(bookID, userID uint, kind models.StatusKind) error {
	if !kind.Valid() {
		return ErrInvalidStatus
	}
	if err := ensureBook(bookID); err != nil {
		return err
	}

	status := models.BookStatus{BookID: bookID, UserID: userID, Status: kind}
	if err := db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&status).Error; err != nil {
		return err
	}

	invalidateListing()
	return nil
}

// RemoveStatus withdraws a reading status. Absent rows are a no-op success.
func RemoveStatus(bookID, userID uint, kind models.StatusKind) error {
	if !kind.Valid() {
		return ErrInvalidStatus
	}
	if err := ensureBook(bookID); err != nil {
		return err
	}

	if err := db.DB.Where("book_id = ? AND user_id = ? AND status = ?", bookID, userID, kind).
		Delete(&models.BookStatus{}).Error; err != nil {
		return err
	}

	invalidateListing()
	return nil
}

// CreateBook stores a submission together with its topic links. A book
// must carry at least one topic from the start.
func CreateBook(book *models.Book, topicIDs []uint) error {
	if len(topicIDs) == 0 {
		return ErrNoTopics
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(book).Error; err != nil {
			return err
		}
		for _, topicID := range topicIDs {
			link := models.BookTopic{BookID: book.ID, TopicID: topicID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	invalidateListing()
	return nil
}

// DeleteBook removes a book and everything hanging off it. Only the
// submitting user may delete; topic links, votes, statuses and comments go
// with it so no orphaned rows remain.
func DeleteBook(bookID, actorID uint) error {
	var book models.Book
	if err := db.DB.First(&book, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if book.UserID != actorID {
		return ErrForbidden
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", bookID).Delete(&models.BookTopic{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", bookID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", bookID).Delete(&models.BookStatus{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", bookID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&book).Error
	})
	if err != nil {
		return err
	}

	invalidateListing()
	return nil
}

// CreateComment stores a comment under an existing book.
func CreateComment(bookID, userID uint, content string) (*models.Comment, error) {
	if err := ensureBook(bookID); err != nil {
		return nil, err
	}

	comment := models.Comment{BookID: bookID, UserID: userID, Content: content}
	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment; only its author may do so.
func DeleteComment(bookID, commentID, actorID uint) error {
	var comment models.Comment
	if err := db.DB.Where("id = ? AND book_id = ?", commentID, bookID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if comment.UserID != actorID {
		return ErrForbidden
	}

	return db.DB.Delete(&comment).Error
}
