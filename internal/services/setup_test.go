package services

import (
	"os"
	"strings"
	"testing"

	"bookclub/internal/db"
	"bookclub/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	db.DB = gdb
	invalidateListing()

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
		os.Remove(path)
	})
	return gdb
}

func createUser(t *testing.T, name string) models.User {
	t.Helper()
	user := models.User{Name: name}
	require.NoError(t, db.DB.Create(&user).Error)
	return user
}

func createTopic(t *testing.T, name string) models.Topic {
	t.Helper()
	topic := models.Topic{Name: name}
	require.NoError(t, db.DB.Create(&topic).Error)
	return topic
}

func createBook(t *testing.T, owner models.User, title string, topicIDs ...uint) models.Book {
	t.Helper()
	book := models.Book{
		UserID: owner.ID,
		Title:  title,
		Author: "Test Author",
	}
	require.NoError(t, CreateBook(&book, topicIDs))
	return book
}
