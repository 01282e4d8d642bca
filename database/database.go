package database

import (
	"fmt"
	"log"

	"union-admin/config"
	"union-admin/internal/domain/staff"
	"union-admin/internal/infra/docstore"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and migrates the two tables this
// service owns: staff accounts and the schema-less document store. The handle
// is returned to main and wired into the handlers from there.
func InitDB() *gorm.DB {
	db, err := gorm.Open(postgres.Open(config.DB_URL), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&staff.Staff{},
		&docstore.Document{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
	return db
}
