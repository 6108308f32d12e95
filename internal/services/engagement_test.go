package services

import (
	"testing"

	"bookclub/internal/db"
	"bookclub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastVoteIsIdempotent(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")
	voter := createUser(t, "bob")
	topic := createTopic(t, "Fiction")
	book := createBook(t, owner, "Dune", topic.ID)

	created, err := CastVote(book.ID, voter.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = CastVote(book.ID, voter.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	db.DB.Model(&models.Vote{}).Where("book_id = ?", book.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCastVoteUnknownBook(t *testing.T) {
	setupTestDB(t)
	voter := createUser(t, "bob")

	_, err := CastVote(9999, voter.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRetractVote(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")
	voter := createUser(t, "bob")
	topic := createTopic(t, "Fiction")
	book := createBook(t, owner, "Dune", topic.ID)

	_, err := CastVote(book.ID, voter.ID)
	require.NoError(t, err)
	require.NoError(t, RetractVote(book.ID, voter.ID))

	var count int64
	db.DB.Model(&models.Vote{}).Where("book_id = ?", book.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// Retracting again is still a success
	require.NoError(t, RetractVote(book.ID, voter.ID))
}

func TestVoteCountMatchesDistinctVoters(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")
	topic := createTopic(t, "Fiction")
	book := createBook(t, owner, "Dune", topic.ID)

	voters := []models.User{
		createUser(t, "bob"),
		createUser(t, "carol"),
		createUser(t, "dave"),
	}
	for _, v := range voters {
		_, err := CastVote(book.ID, v.ID)
		require.NoError(t, err)
	}
	// Duplicate attempt from one of them
	_, err := CastVote(book.ID, voters[0].ID)
	require.NoError(t, err)

	summary, err := GetBook(book.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Votes)
}

func TestStatusKindsAreIndependent(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")
	reader := createUser(t, "bob")
	topic := createTopic(t, "Fiction")
	book := createBook(t, owner, "Dune", topic.ID)

	require.NoError(t, AddStatus(book.ID, reader.ID, models.StatusAlreadyRead))
	require.NoError(t, AddStatus(book.ID, reader.ID, models.StatusWantToRead))
	// Re-asserting a held kind changes nothing
	require.NoError(t, AddStatus(book.ID, reader.ID, models.StatusAlreadyRead))

	var count int64
	db.DB.Model(&models.BookStatus{}).
		Where("book_id = ? AND user_id = ?", book.ID, reader.ID).
		Count(&count)
	assert.Equal(t, int64(2), count)

	// Removing one kind leaves the other in place
	require.NoError(t, RemoveStatus(book.ID, reader.ID, models.StatusAlreadyRead))

	entries, err := ListStatusesForUser(reader.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.StatusWantToRead, entries[0].Status)
}

func TestAddStatusRejectsUnknownKind(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")
	topic := createTopic(t, "Fiction")
	book := createBook(t, owner, "Dune", topic.ID)

	assert.ErrorIs(t, AddStatus(book.ID, owner.ID, "finished"), ErrInvalidStatus)
	assert.ErrorIs(t, AddStatus(book.ID, owner.ID, models.StatusRecommend), ErrInvalidStatus)
	assert.ErrorIs(t, RemoveStatus(book.ID, owner.ID, "finished"), ErrInvalidStatus)
}

func TestCreateBookRequiresTopics(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")

	book := models.Book{UserID: owner.ID, Title: "Dune", Author: "Herbert"}
	assert.ErrorIs(t, CreateBook(&book, nil), ErrNoTopics)
}

func TestDeleteBookCascades(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")
	voter := createUser(t, "bob")
	topic := createTopic(t, "Fiction")
	book := createBook(t, owner, "Dune", topic.ID)

	_, err := CastVote(book.ID, voter.ID)
	require.NoError(t, err)
	require.NoError(t, AddStatus(book.ID, voter.ID, models.StatusWantToRead))
	_, err = CreateComment(book.ID, voter.ID, "loved it")
	require.NoError(t, err)

	require.NoError(t, DeleteBook(book.ID, owner.ID))

	for _, model := range []interface{}{
		&models.BookTopic{}, &models.Vote{}, &models.BookStatus{}, &models.Comment{},
	} {
		var count int64
		db.DB.Model(model).Where("book_id = ?", book.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	}

	_, err = GetBook(book.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBookOwnership(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")
	stranger := createUser(t, "bob")
	topic := createTopic(t, "Fiction")
	book := createBook(t, owner, "Dune", topic.ID)

	assert.ErrorIs(t, DeleteBook(book.ID, stranger.ID), ErrForbidden)
	assert.ErrorIs(t, DeleteBook(9999, owner.ID), ErrNotFound)
}

func TestDeleteCommentOwnership(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")
	author := createUser(t, "bob")
	topic := createTopic(t, "Fiction")
	book := createBook(t, owner, "Dune", topic.ID)

	comment, err := CreateComment(book.ID, author.ID, "great read")
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteComment(book.ID, comment.ID, owner.ID), ErrForbidden)
	require.NoError(t, DeleteComment(book.ID, comment.ID, author.ID))
	assert.ErrorIs(t, DeleteComment(book.ID, comment.ID, author.ID), ErrNotFound)
}

func TestCreateCommentUnknownBook(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, "bob")

	_, err := CreateComment(9999, author.ID, "ghost comment")
	assert.ErrorIs(t, err, ErrNotFound)
}
