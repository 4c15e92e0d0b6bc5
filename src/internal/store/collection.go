package store

import (
	"maps"
	"slices"
	"sync"

	"github.com/shourov-bot/bot-panel/src/internal/models"
)

// entityPtr constrains P to be a pointer to T that implements models.Entity.
type entityPtr[T any] interface {
	*T
	models.Entity
}

// Collection is an in-memory keyed set of one entity kind.
//
// Identifiers come from a per-collection counter that starts at 1, only
// grows, and is never reset by Delete or Clear. Values are stored and
// returned by copy, so callers never share memory with the collection.
type Collection[T any, P entityPtr[T]] struct {
	mu     sync.RWMutex
	items  map[int]T
	nextID int
}

// NewCollection creates an empty collection.
func NewCollection[T any, P entityPtr[T]]() *Collection[T, P] {
	return &Collection[T, P]{
		items:  make(map[int]T),
		nextID: 1,
	}
}

// List returns every entity in insertion (ascending id) order.
func (c *Collection[T, P]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]T, 0, len(c.items))
	for _, id := range slices.Sorted(maps.Keys(c.items)) {
		result = append(result, c.items[id])
	}
	return result
}

// Get returns the entity with the given id.
func (c *Collection[T, P]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	return v, ok
}

// Find returns the first entity, in id order, for which match returns true.
func (c *Collection[T, P]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.findLocked(match)
}

func (c *Collection[T, P]) findLocked(match func(T) bool) (T, bool) {
	for _, id := range slices.Sorted(maps.Keys(c.items)) {
		if v := c.items[id]; match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Create assigns the next id to v, stores it and returns the stored value.
func (c *Collection[T, P]) Create(v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.createLocked(v)
}

func (c *Collection[T, P]) createLocked(v T) T {
	P(&v).SetID(c.nextID)
	c.nextID++
	c.items[P(&v).GetID()] = v
	return v
}

// InsertIfAbsent stores v unless an entity matching exists already.
// The check and the insert happen under one lock. It returns the stored or
// existing entity and whether v was inserted.
func (c *Collection[T, P]) InsertIfAbsent(exists func(T) bool, v T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.findLocked(exists); ok {
		return existing, false
	}
	return c.createLocked(v), true
}

// Update applies mutate to a copy of the entity and stores the result.
// The id cannot be changed by mutate.
func (c *Collection[T, P]) Update(id int, mutate func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}

	mutate(&v)
	P(&v).SetID(id)
	c.items[id] = v
	return v, true
}

// Delete removes the entity with the given id and reports whether it existed.
func (c *Collection[T, P]) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// Clear removes every entity. The id counter keeps its value.
func (c *Collection[T, P]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[int]T)
}

// Len returns the number of stored entities.
func (c *Collection[T, P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
