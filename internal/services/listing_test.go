package services

import (
	"testing"

	"bookclub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBooksAggregates(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")
	voter := createUser(t, "bob")
	fiction := createTopic(t, "Fiction")
	science := createTopic(t, "Science")

	book := createBook(t, owner, "Dune", fiction.ID, science.ID)
	_, err := CastVote(book.ID, voter.ID)
	require.NoError(t, err)
	require.NoError(t, AddStatus(book.ID, voter.ID, models.StatusAlreadyRead))
	require.NoError(t, AddStatus(book.ID, owner.ID, models.StatusReadingNow))

	books, err := ListBooks()
	require.NoError(t, err)
	require.Len(t, books, 1)

	got := books[0]
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, []string{"Fiction", "Science"}, got.Topics)
	assert.Equal(t, 1, got.Votes)
	assert.Equal(t, 1, got.AlreadyRead)
	assert.Equal(t, 1, got.ReadingNow)
	assert.Equal(t, 0, got.Skimmed)
	assert.Equal(t, 0, got.WantToRead)
}

func TestListBooksUsesCacheUntilInvalidated(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")
	voter := createUser(t, "bob")
	fiction := createTopic(t, "Fiction")
	book := createBook(t, owner, "Dune", fiction.ID)

	books, err := ListBooks()
	require.NoError(t, err)
	assert.Equal(t, 0, books[0].Votes)

	// The vote invalidates, so the next read sees the new count
	_, err = CastVote(book.ID, voter.ID)
	require.NoError(t, err)

	books, err = ListBooks()
	require.NoError(t, err)
	assert.Equal(t, 1, books[0].Votes)
}

func TestListBooksByOwner(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	fiction := createTopic(t, "Fiction")

	createBook(t, alice, "Dune", fiction.ID)
	createBook(t, bob, "Hyperion", fiction.ID)

	books, err := ListBooksByOwner(alice.ID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)

	// Unknown user just gets an empty list
	books, err = ListBooksByOwner(9999)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestListBooksVotedBy(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	fiction := createTopic(t, "Fiction")

	dune := createBook(t, alice, "Dune", fiction.ID)
	createBook(t, alice, "Hyperion", fiction.ID)

	_, err := CastVote(dune.ID, bob.ID)
	require.NoError(t, err)

	books, err := ListBooksVotedBy(bob.ID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestGetBookNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetBook(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCommentsNewestFirstWithAuthor(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "alice")
	fiction := createTopic(t, "Fiction")
	book := createBook(t, owner, "Dune", fiction.ID)

	_, err := CreateComment(book.ID, owner.ID, "first")
	require.NoError(t, err)
	second, err := CreateComment(book.ID, owner.ID, "second with https://example.com link")
	require.NoError(t, err)
	require.False(t, second.CreatedAt.IsZero())

	views, err := ListComments(book.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "alice", views[0].UserName)
	for _, v := range views {
		if v.ID == second.ID {
			assert.Contains(t, v.ContentHTML, "<a ")
			assert.Contains(t, v.ContentHTML, "https://example.com")
		}
	}

	count, err := CountComments(book.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
