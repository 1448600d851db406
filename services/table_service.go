package services

import (
	"fmt"
	"log"
	"strings"

	"pulsebite/entity"
	"pulsebite/feed"
	"pulsebite/repository"
	"pulsebite/utils"
)

// TableService creates and removes dining tables. Each table gets a
// deterministic QR target path and a QR image encoded once at creation.
type TableService struct {
	Repo   *repository.TableRepository
	Feed   *feed.Feed
	Origin string // public base URL encoded into the QR
}

func NewTableService(repo *repository.TableRepository, f *feed.Feed, origin string) *TableService {
	return &TableService{Repo: repo, Feed: f, Origin: origin}
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.List()
}

func (s *TableService) Get(id uint) (*entity.Table, error) {
	return s.Repo.Get(id)
}

// Create inserts the table, then fills in the QR target and image in a
// second write — the target path needs the generated id. A failed QR
// encode leaves the table without an image; it is not an error.
func (s *TableService) Create(name string) (*entity.Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	t := &entity.Table{Name: name}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}

	target := fmt.Sprintf("/table/%d", t.ID)
	png, err := utils.EncodeQR(s.Origin + target)
	if err != nil {
		log.Printf("table %d: qr encode failed: %v", t.ID, err)
		png = nil
	}
	if err := s.Repo.SetQR(t.ID, target, png, "image/png"); err != nil {
		return nil, err
	}
	t.QRTarget = target
	t.QRImage = png
	t.ImageType = "image/png"

	s.Feed.Notify(entity.CollectionTables)
	return t, nil
}

func (s *TableService) Delete(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Feed.Notify(entity.CollectionTables)
	return nil
}
