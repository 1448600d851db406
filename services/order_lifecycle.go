package services

import (
	"pulsebite/entity"
	"pulsebite/feed"
	"pulsebite/repository"

	"gorm.io/gorm"
)

// OrderLifecycle owns status transitions. Advance is the strict forward
// path; SetStatus is the unvalidated operator override. Each operation
// writes a single field on a single order.
type OrderLifecycle struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
	Feed *feed.Feed
}

func NewOrderLifecycle(db *gorm.DB, repo *repository.OrderRepository, f *feed.Feed) *OrderLifecycle {
	return &OrderLifecycle{DB: db, Repo: repo, Feed: f}
}

// Advance moves the order one step forward. Delivered is a no-op, not an
// error. The write is guarded (status must still equal the one just read)
// so two racing advances cannot skip a step; on conflict the current
// status is re-read and the step retried.
func (s *OrderLifecycle) Advance(orderID uint) (entity.OrderStatus, error) {
	for attempt := 0; attempt < 3; attempt++ {
		o, err := s.Repo.Get(orderID)
		if err != nil {
			return "", err
		}
		if o.Status == entity.StatusDelivered {
			return entity.StatusDelivered, nil
		}
		next := o.Status.Next()
		ok, err := s.Repo.UpdateStatusGuard(s.DB, orderID, o.Status, next)
		if err != nil {
			return "", err
		}
		if ok {
			s.Feed.Notify(entity.CollectionOrders)
			return next, nil
		}
	}
	return "", ErrStatusConflict
}

// SetStatus overrides the status without enforcing monotonicity. Meant for
// operator corrections; callers that need forward-only transitions must
// use Advance instead.
func (s *OrderLifecycle) SetStatus(orderID uint, status entity.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	ok, err := s.Repo.UpdateStatus(orderID, status)
	if err != nil {
		return err
	}
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Feed.Notify(entity.CollectionOrders)
	return nil
}
