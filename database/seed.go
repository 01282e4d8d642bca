package database

import (
	"context"
	"fmt"
	"log"

	"union-admin/config"
	"union-admin/internal/domain/content"
	"union-admin/internal/domain/staff"
	"union-admin/internal/infra/docstore"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed makes a fresh database usable: it creates the first admin account from
// the environment and the two singleton documents the editor pages expect to
// already exist. Existing rows are never overwritten.
func Seed(db *gorm.DB, docs *docstore.Store) {
	seedAdmin(db)
	seedSingletons(docs)
}

func seedAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&staff.Staff{}).Count(&count).Error; err != nil {
		log.Println("Seed: could not count staff:", err)
		return
	}
	if count > 0 {
		return
	}
	if config.ADMIN_EMAIL == "" || config.ADMIN_PASSWORD == "" {
		log.Println("Seed: no staff accounts and ADMIN_EMAIL/ADMIN_PASSWORD not set; nobody can log in")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.ADMIN_PASSWORD), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Seed: failed to hash admin password:", err)
		return
	}
	pw := string(hashed)

	admin := staff.Staff{
		Name:         "Administrator",
		Email:        config.ADMIN_EMAIL,
		Password:     &pw,
		AuthProvider: "local",
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("Seed: failed to create admin account:", err)
		return
	}
	fmt.Println("✅ Seeded admin account:", admin.Email)
}

func seedSingletons(docs *docstore.Store) {
	ctx := context.Background()

	if _, _, err := docs.GetFirst(ctx, content.AboutCollection); err == docstore.ErrNotFound {
		if err := docs.Set(ctx, content.AboutCollection, "main", content.AboutUs{}); err != nil {
			log.Println("Seed: failed to create aboutUs document:", err)
		}
	}
	if _, _, err := docs.GetFirst(ctx, content.ContactCollection); err == docstore.ErrNotFound {
		if err := docs.Set(ctx, content.ContactCollection, "main", content.ContactInfo{}); err != nil {
			log.Println("Seed: failed to create Headquarter document:", err)
		}
	}
}
