package server

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Deduper tracks recently seen event identifiers so redelivered webhook
// events are acknowledged without reprocessing. The set is bounded by size and
// TTL; entries older than the platform's redelivery window can be forgotten
// safely.
type Deduper struct {
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

func NewDeduper(size int, ttl time.Duration) *Deduper {
	return &Deduper{seen: expirable.NewLRU[string, struct{}](size, nil, ttl)}
}

// FirstDelivery marks id as seen and reports whether this was the first
// sighting. The check and the mark happen under one lock so that a duplicate
// arriving while the first delivery is still in flight can never slip through.
// An empty id cannot be tracked and is treated as a first delivery.
func (d *Deduper) FirstDelivery(id string) bool {
	if id == "" {
		return true
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen.Get(id); ok {
		return false
	}
	d.seen.Add(id, struct{}{})
	return true
}
