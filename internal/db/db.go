package db

import (
	"log"
	"os"

	"bookclub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=bookclub port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedTopics()
}

// Migrate runs AutoMigrate for every table. Split out so tests can run it
// against their own database.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Book{},
		&models.BookTopic{},
		&models.Vote{},
		&models.BookStatus{},
		&models.Comment{},
	)
}

func seedTopics() {
	var count int64
	DB.Model(&models.Topic{}).Count(&count)
	if count > 0 {
		log.Println("Topics already seeded, skipping")
		return
	}

	topics := []models.Topic{
		{Name: "Fiction"},
		{Name: "Non-fiction"},
		{Name: "Science"},
		{Name: "History"},
	}

	for _, topic := range topics {
		if err := DB.Create(&topic).Error; err != nil {
			log.Printf("Failed to create topic %s: %v", topic.Name, err)
		}
	}
	log.Println("Initial topics created successfully")
}
