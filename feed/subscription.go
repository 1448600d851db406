package feed

import (
	"log"
	"sync"

	"gorm.io/gorm"
)

// Query narrows and orders a subscription's result set, e.g.
//
//	func(tx *gorm.DB) *gorm.DB { return tx.Where("table_id = ?", id).Order("created_at DESC") }
//
// A nil Query means the whole collection.
type Query func(tx *gorm.DB) *gorm.DB

// Subscription is one observer's live view of a query. Snapshots arrive on
// C in store-write order; there is no ordering guarantee across different
// subscriptions. C is closed after Close.
type Subscription[T any] struct {
	C <-chan []T

	feed       *Feed
	collection string
	id         uint64

	mu      sync.Mutex
	cond    *sync.Cond
	pending int
	closed  bool

	done      chan struct{}
	closeOnce sync.Once
}

// Subscribe opens an independent subscription on a collection. The first
// snapshot is emitted immediately; every later Notify on the collection
// emits another. Cancelling is only possible via Close; a dropped feed is
// recovered by calling Subscribe again while the consumer keeps its last
// snapshot.
func Subscribe[T any](f *Feed, db *gorm.DB, collection string, q Query) *Subscription[T] {
	ch := make(chan []T, 1)
	s := &Subscription[T]{
		C:          ch,
		feed:       f,
		collection: collection,
		pending:    1, // initial snapshot
		done:       make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	s.id = f.attach(collection, s.wake)
	go s.run(db, q, ch)
	return s
}

// Close stops delivery and detaches from the feed. Idempotent; other
// subscriptions on the same collection are unaffected. Writes already in
// flight are not cancelled.
func (s *Subscription[T]) Close() {
	s.closeOnce.Do(func() {
		s.feed.detach(s.collection, s.id)
		close(s.done)
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		s.cond.Broadcast()
	})
}

func (s *Subscription[T]) wake() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
	s.cond.Signal()
}

func (s *Subscription[T]) run(db *gorm.DB, q Query, ch chan<- []T) {
	defer close(ch)
	for {
		s.mu.Lock()
		for s.pending == 0 && !s.closed {
			s.cond.Wait()
		}
		if s.closed {
			s.mu.Unlock()
			return
		}
		s.pending--
		s.mu.Unlock()

		tx := db
		if q != nil {
			tx = q(db)
		}
		out := []T{}
		if err := tx.Find(&out).Error; err != nil {
			// keep the subscription alive; the consumer holds its last
			// snapshot until the next successful read
			log.Printf("feed: %s snapshot failed: %v", s.collection, err)
			continue
		}

		select {
		case ch <- out:
		case <-s.done:
			return
		}
	}
}
