package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"optiqa/internal/models/db_models"
)

// InitDatabase opens the session store. With POSTGRES_URL set it behaves like
// any other deployment; without it, sessions live in an in-memory sqlite
// database and vanish with the process, which is the intended default for
// this wizard.
func InitDatabase() *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("POSTGRES_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		log.Println("POSTGRES_URL not set, using in-memory session store")
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	}
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(&db_models.WizardSession{}, &db_models.ExamBooking{}); err != nil {
		log.Fatalf("Error migrating session schema: %v", err)
	}

	return db
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
