package configs

import (
	"log"

	"github.com/arminsheibak/Online-Food-API/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(email, password string) error {
	db := DB()
	if email == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	admin := entity.User{Email: email, Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	profile := entity.Profile{
		UserID:    admin.ID,
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
	}
	return db.Create(&profile).Error
}

// SeedCategories puts a few starter categories in an empty catalog.
func SeedCategories() error {
	db := DB()
	for _, title := range []string{"Appetizers", "Main Dishes", "Desserts", "Drinks"} {
		if err := db.FirstOrCreate(&entity.Category{}, entity.Category{Title: title}).Error; err != nil {
			return err
		}
	}
	log.Println("catalog categories seeded")
	return nil
}
