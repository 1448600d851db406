// Package feed is the change-propagation layer. It multiplexes any number
// of independent live subscriptions over the shared gorm store: each
// subscription delivers the full current result set of its query — once at
// subscribe time and once per subsequent write to its collection — the way
// a document store's snapshot listener would.
package feed

import (
	"sync"
)

// Feed fans write notifications out to subscribers, keyed by collection.
// Writers stay fire-and-forget: services call Notify after a write commits
// and never wait for consumers.
type Feed struct {
	mu     sync.Mutex
	subs   map[string]map[uint64]func()
	nextID uint64
}

func New() *Feed {
	return &Feed{subs: make(map[string]map[uint64]func())}
}

// Notify wakes every subscriber of the given collections. One call yields
// exactly one fresh snapshot per subscriber, in call order.
func (f *Feed) Notify(collections ...string) {
	f.mu.Lock()
	var wakes []func()
	for _, col := range collections {
		for _, wake := range f.subs[col] {
			wakes = append(wakes, wake)
		}
	}
	f.mu.Unlock()

	for _, wake := range wakes {
		wake()
	}
}

func (f *Feed) attach(collection string, wake func()) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := f.nextID
	if f.subs[collection] == nil {
		f.subs[collection] = make(map[uint64]func())
	}
	f.subs[collection][id] = wake
	return id
}

func (f *Feed) detach(collection string, id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subs[collection], id)
	if len(f.subs[collection]) == 0 {
		delete(f.subs, collection)
	}
}
