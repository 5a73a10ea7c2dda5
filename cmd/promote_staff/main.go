package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/1RJB/green-neighbourhood-backend/internal/models"
)

// Promotes an account to STAFF (or ADMIN with -admin) by email.
// Usage: promote_staff [-admin] user@example.com
func main() {
	args := os.Args[1:]
	role := models.RoleStaff
	if len(args) > 0 && args[0] == "-admin" {
		role = models.RoleAdmin
		args = args[1:]
	}
	if len(args) != 1 {
		log.Fatal("Usage: promote_staff [-admin] <email>")
	}
	email := args[0]

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=greenhood port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		log.Fatalf("User with email %s not found: %v", email, err)
	}

	user.Role = role
	if err := db.Save(&user).Error; err != nil {
		log.Fatalf("Failed to update user role: %v", err)
	}

	fmt.Printf("Successfully promoted %s (%s) to %s.\n", user.Username, user.Email, role)
}
