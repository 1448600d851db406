package services

import (
	"strings"

	"pulsebite/entity"
	"pulsebite/feed"
	"pulsebite/repository"
)

// ResolveDefaultCategory picks the category a menu form should show when
// the available list changes. touched means the operator chose something
// on purpose (possibly blank) and we keep that choice while it is still
// valid; otherwise fall back to the first available category.
func ResolveDefaultCategory(current string, touched bool, available []entity.Category) string {
	if len(available) == 0 {
		return ""
	}
	valid := false
	for _, c := range available {
		if c.Name == current {
			valid = true
			break
		}
	}
	if touched && (current == "" || valid) {
		return current
	}
	if current != "" && valid {
		return current
	}
	return available[0].Name
}

type CategoryService struct {
	Repo *repository.CategoryRepository
	Feed *feed.Feed
}

func NewCategoryService(repo *repository.CategoryRepository, f *feed.Feed) *CategoryService {
	return &CategoryService{Repo: repo, Feed: f}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.List()
}

func (s *CategoryService) Create(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	c := &entity.Category{Name: name}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	s.Feed.Notify(entity.CollectionCategories)
	return c, nil
}

func (s *CategoryService) Rename(id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if err := s.Repo.Rename(id, name); err != nil {
		return err
	}
	s.Feed.Notify(entity.CollectionCategories)
	return nil
}

// Delete removes only the category row. Menu items keep the orphaned name;
// grouping buckets them accordingly.
func (s *CategoryService) Delete(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Feed.Notify(entity.CollectionCategories)
	return nil
}
