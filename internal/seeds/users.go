package seeds

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
)

// SeedUsers ensures an admin account exists and returns it for use as the
// creator of seeded catalog entries.
func SeedUsers() models.User {
	log.Println("👤 Seeding Users...")

	var admin models.User
	if err := database.DB.Where("role = ?", models.RoleAdmin).First(&admin).Error; err == nil {
		return admin
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	admin = models.User{
		ID:       uuid.New().String(),
		Name:     "Admin",
		Username: "admin",
		Email:    "admin@greenhood.local",
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Failed to seed admin user: %v", err)
	}

	demo := []models.User{
		{Name: "Demo Resident", Username: "resident", Email: "resident@greenhood.local", Points: 10000},
		{Name: "Demo Staff", Username: "staff", Email: "staff@greenhood.local", Role: models.RoleStaff},
	}
	for _, u := range demo {
		u.ID = uuid.New().String()
		u.Password = string(hash)
		if u.Role == "" {
			u.Role = models.RoleUser
		}

		var count int64
		database.DB.Model(&models.User{}).Where("email = ?", u.Email).Count(&count)
		if count > 0 {
			continue
		}
		if err := database.DB.Create(&u).Error; err != nil {
			log.Printf("⚠️ Failed to seed user %s: %v", u.Email, err)
		}
	}

	return admin
}
