package configs

import (
	"pulsebite/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the shared store handle. It is created once at process
// start and passed by reference to every component; nothing holds it as
// package-level state.
func ConnectDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	// Migrate the schema
	return db.AutoMigrate(
		&entity.User{},
		&entity.Table{}, &entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.Cart{}, &entity.CartItem{},
	)
}
