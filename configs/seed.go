package configs

import (
	"log"

	"pulsebite/entity"
	"pulsebite/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedStaff creates the operations and kitchen accounts on first boot.
// There is no self-registration; these two accounts are the whole staff
// roster until more are added by hand.
func SeedStaff(db *gorm.DB, cfg *Config) error {
	if err := seedUser(db, cfg.AdminEmail, cfg.AdminPassword, "Operations", "admin"); err != nil {
		return err
	}
	return seedUser(db, cfg.KitchenEmail, cfg.KitchenPassword, "Kitchen", "kitchen")
}

func seedUser(db *gorm.DB, email, pass, name, role string) error {
	if email == "" || pass == "" {
		log.Printf("skip seeding %s user: missing credentials in env", role)
		return nil
	}

	users := repository.NewUserRepository(db)
	count, err := users.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     name,
		Role:     role,
	}
	return users.Create(&user)
}
