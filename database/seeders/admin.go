package seeders

import (
	"log"
	"os"

	"hotel-reservation/constants"
	"hotel-reservation/models/user"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultAdmin creates the bootstrap admin account when no admin exists.
// The password comes from ADMIN_PASSWORD; a default is used for local setups.
func SeedDefaultAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&user.UserRole{}).Where("role = ?", constants.RoleAdmin).Count(&count).Error; err != nil {
		log.Printf("Failed to check for existing admin: %v", err)
		return
	}
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash default admin password: %v", err)
		return
	}

	admin := user.User{
		Username:     "admin",
		Email:        "admin@hotel-reservation.local",
		PasswordHash: string(hash),
		Roles:        []user.UserRole{{Role: constants.RoleAdmin}},
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed default admin: %v", err)
		return
	}
	log.Printf("Seeded default admin account: admin")
}
