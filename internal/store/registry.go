package store

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity bounds the number of session stores kept in memory.
const DefaultCapacity = 1024

// Registry keeps one Store per session key. When full, the least recently
// used store is evicted; its session simply starts empty on the next request.
type Registry struct {
	mu     sync.Mutex
	stores *lru.Cache[string, *Store]
}

func NewRegistry() *Registry {
	return NewBoundedRegistry(DefaultCapacity)
}

// NewBoundedRegistry keeps at most capacity stores. capacity < 1 means DefaultCapacity.
func NewBoundedRegistry(capacity int) *Registry {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, *Store](capacity)
	if err != nil {
		panic(err)
	}
	return &Registry{stores: cache}
}

// For returns the store of key, creating an empty one on first use.
func (r *Registry) For(key string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores.Get(key); ok {
		return s
	}
	s := New()
	r.stores.Add(key, s)
	return s
}

// Drop forgets the store of key. A later For starts empty.
func (r *Registry) Drop(key string) {
	r.stores.Remove(key)
}

func (r *Registry) Len() int {
	return r.stores.Len()
}
