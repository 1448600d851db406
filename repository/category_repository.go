package repository

import (
	"pulsebite/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("created_at DESC").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.DB.Create(c).Error
}

// Rename does not cascade to menu items; they keep the old name and the
// derived views bucket them as orphans.
func (r *CategoryRepository) Rename(id uint, name string) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Update("name", name).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Category{}, id).Error
}
