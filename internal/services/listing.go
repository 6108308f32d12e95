package services

import (
	"errors"
	"time"

	"bookclub/internal/db"
	"bookclub/internal/models"
	"bookclub/internal/utils"

	"gorm.io/gorm"
)

// BookSummary is a book joined with its topic names and derived engagement
// counts. Counts are recomputed from the set tables on every build, never
// stored.
type BookSummary struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description"`
	Link          string    `json:"link"`
	Cover         string    `json:"cover"`
	RecommendedBy string    `json:"recommended_by"`
	CreatedAt     time.Time `json:"created_at"`
	Topics        []string  `json:"topics"`
	Votes         int       `json:"votes"`
	AlreadyRead   int       `json:"already_read"`
	Skimmed       int       `json:"skimmed"`
	WantToRead    int       `json:"want_to_read"`
	ReadingNow    int       `json:"reading_now"`
}

// StatusEntry is one raw (book, status) pair for a user, consumed by the
// client to highlight its own toggles.
type StatusEntry struct {
	BookID uint              `json:"book_id"`
	Status models.StatusKind `json:"status"`
}

// ListBooks returns every book with aggregates attached. The full scan is
// deliberate: a small community dataset, no pagination. The result is
// cached briefly and invalidated on every engagement mutation.
func ListBooks() ([]BookSummary, error) {
	if cached := utils.GetCache().Get(bookListCacheKey); cached != nil {
		if books, ok := cached.([]BookSummary); ok {
			return books, nil
		}
	}

	var books []models.Book
	if err := db.DB.Order("id ASC").Find(&books).Error; err != nil {
		return nil, err
	}

	summaries, err := summarize(books)
	if err != nil {
		return nil, err
	}

	utils.GetCache().Set(bookListCacheKey, summaries, 1*time.Minute)
	return summaries, nil
}

// ListBooksByOwner returns the books a user submitted, newest first.
// An unknown user id simply yields an empty list.
func ListBooksByOwner(userID uint) ([]BookSummary, error) {
	var books []models.Book
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return summarize(books)
}

// ListBooksVotedBy returns the books a user voted for, newest first.
func ListBooksVotedBy(userID uint) ([]BookSummary, error) {
	var books []models.Book
	if err := db.DB.Joins("JOIN votes ON votes.book_id = books.id").
		Where("votes.voter_id = ?", userID).
		Order("books.created_at DESC").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return summarize(books)
}

// GetBook returns a single book with its topics and vote count.
func GetBook(bookID uint) (*BookSummary, error) {
	var book models.Book
	if err := db.DB.First(&book, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	summaries, err := summarize([]models.Book{book})
	if err != nil {
		return nil, err
	}
	return &summaries[0], nil
}

// ListStatusesForUser returns the raw status pairs for a user.
func ListStatusesForUser(userID uint) ([]StatusEntry, error) {
	entries := make([]StatusEntry, 0)
	if err := db.DB.Model(&models.BookStatus{}).
		Select("book_id, status").
		Where("user_id = ?", userID).
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// summarize joins books with topic names and batched engagement counts.
func summarize(books []models.Book) ([]BookSummary, error) {
	summaries := make([]BookSummary, len(books))
	if len(books) == 0 {
		return summaries, nil
	}

	bookIDs := make([]uint, len(books))
	for i, b := range books {
		bookIDs[i] = b.ID
		summaries[i] = BookSummary{
			ID:            b.ID,
			UserID:        b.UserID,
			Title:         b.Title,
			Author:        b.Author,
			Description:   b.Description,
			Link:          b.Link,
			Cover:         b.Cover,
			RecommendedBy: b.RecommendedBy,
			CreatedAt:     b.CreatedAt,
			Topics:        []string{},
		}
	}

	// Topic names, in link insertion order
	type topicRow struct {
		BookID uint
		Name   string
	}
	var topicRows []topicRow
	if err := db.DB.Model(&models.BookTopic{}).
		Select("book_topics.book_id, topics.name").
		Joins("JOIN topics ON topics.id = book_topics.topic_id").
		Where("book_topics.book_id IN ?", bookIDs).
		Order("book_topics.id ASC").
		Scan(&topicRows).Error; err != nil {
		return nil, err
	}

	// Vote counts, one grouped query for the whole page
	type countRow struct {
		BookID uint
		Count  int
	}
	var voteRows []countRow
	if err := db.DB.Model(&models.Vote{}).
		Select("book_id, COUNT(*) as count").
		Where("book_id IN ?", bookIDs).
		Group("book_id").
		Scan(&voteRows).Error; err != nil {
		return nil, err
	}

	// Status counts, grouped by book and kind
	type statusRow struct {
		BookID uint
		Status models.StatusKind
		Count  int
	}
	var statusRows []statusRow
	if err := db.DB.Model(&models.BookStatus{}).
		Select("book_id, status, COUNT(*) as count").
		Where("book_id IN ?", bookIDs).
		Group("book_id, status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}

	index := make(map[uint]*BookSummary, len(summaries))
	for i := range summaries {
		index[summaries[i].ID] = &summaries[i]
	}

	for _, row := range topicRows {
		if s := index[row.BookID]; s != nil {
			s.Topics = append(s.Topics, row.Name)
		}
	}
	for _, row := range voteRows {
		if s := index[row.BookID]; s != nil {
			s.Votes = row.Count
		}
	}
	for _, row := range statusRows {
		s := index[row.BookID]
		if s == nil {
			continue
		}
		switch row.Status {
		case models.StatusAlreadyRead:
			s.AlreadyRead = row.Count
		case models.StatusSkimmed:
			s.Skimmed = row.Count
		case models.StatusWantToRead:
			s.WantToRead = row.Count
		case models.StatusReadingNow:
			s.ReadingNow = row.Count
		}
	}

	return summaries, nil
}

// CommentView is a comment with its author name and render-ready HTML.
type CommentView struct {
	ID          uint      `json:"id"`
	BookID      uint      `json:"book_id"`
	UserID      uint      `json:"user_id"`
	UserName    string    `json:"user_name"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListComments returns a book's comments, newest first.
func ListComments(bookID uint) ([]CommentView, error) {
	var comments []models.Comment
	if err := db.DB.Preload("User").
		Where("book_id = ?", bookID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	views := make([]CommentView, len(comments))
	for i, c := range comments {
		views[i] = commentView(c)
	}
	return views, nil
}

// CountComments returns the number of comments under a book.
func CountComments(bookID uint) (int64, error) {
	var count int64
	if err := db.DB.Model(&models.Comment{}).
		Where("book_id = ?", bookID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetCommentView loads one comment with its author attached.
func GetCommentView(commentID uint) (*CommentView, error) {
	var comment models.Comment
	if err := db.DB.Preload("User").First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := commentView(comment)
	return &view, nil
}

func commentView(c models.Comment) CommentView {
	return CommentView{
		ID:          c.ID,
		BookID:      c.BookID,
		UserID:      c.UserID,
		UserName:    c.User.Name,
		Content:     c.Content,
		ContentHTML: utils.LinkifyContent(c.Content),
		CreatedAt:   c.CreatedAt,
	}
}
