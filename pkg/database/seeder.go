package database

import (
	"log"

	"github.com/VisKlo/furniture-inventory/config"
	"github.com/VisKlo/furniture-inventory/internal/models"
	"github.com/VisKlo/furniture-inventory/internal/utils"

	"gorm.io/gorm"
)

// SeedAdminUser creates an initial user from ADMIN_NAME/ADMIN_EMAIL/ADMIN_PASSWORD
// so a fresh deployment has a working login before anyone registers.
func SeedAdminUser() {
	defaults := config.AppConfig.Defaults
	if defaults.AdminEmail == "" || defaults.AdminPassword == "" {
		return
	}

	var admin models.User
	if err := DB.Where("email = ?", defaults.AdminEmail).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashedPassword, err := utils.HashPassword(defaults.AdminPassword)
			if err != nil {
				log.Printf("Failed to hash admin password: %v", err)
				return
			}
			name := defaults.AdminName
			if name == "" {
				name = "admin"
			}
			user := models.User{
				Name:     name,
				Email:    defaults.AdminEmail,
				Password: hashedPassword,
			}
			if err := DB.Create(&user).Error; err != nil {
				log.Printf("Failed to seed admin user: %v", err)
			} else {
				log.Println("Admin user seeded successfully.")
			}
		}
	}
}
