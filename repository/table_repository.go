package repository

import (
	"pulsebite/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("created_at DESC").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Get(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

// SetQR fills in the deterministic target path and the generated image
// after the row exists (the path needs the id).
func (r *TableRepository) SetQR(id uint, target string, image []byte, imageType string) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Updates(map[string]any{
		"qr_target":  target,
		"qr_image":   image,
		"image_type": imageType,
	}).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Table{}, id).Error
}

func (r *TableRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Table{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
