package services

import (
	"strings"

	"pulsebite/entity"
	"pulsebite/feed"
	"pulsebite/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
	Feed *feed.Feed
}

func NewMenuService(repo *repository.MenuRepository, f *feed.Feed) *MenuService {
	return &MenuService{Repo: repo, Feed: f}
}

type MenuItemIn struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if in.Price < 0 {
		return nil, ErrNegativePrice
	}
	item := &entity.MenuItem{
		Name:     name,
		Price:    in.Price,
		Image:    in.Image,
		Category: strings.TrimSpace(in.Category),
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	s.Feed.Notify(entity.CollectionMenuItems)
	return item, nil
}

func (s *MenuService) Update(id uint, in *MenuItemIn) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ErrNameRequired
	}
	if in.Price < 0 {
		return ErrNegativePrice
	}
	err := s.Repo.UpdateFields(id, map[string]any{
		"name":     name,
		"price":    in.Price,
		"image":    in.Image,
		"category": strings.TrimSpace(in.Category),
	})
	if err != nil {
		return err
	}
	s.Feed.Notify(entity.CollectionMenuItems)
	return nil
}

// Delete leaves existing order lines pointing at the removed item; readers
// drop those lines from totals and priority instead of failing.
func (s *MenuService) Delete(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Feed.Notify(entity.CollectionMenuItems)
	return nil
}
