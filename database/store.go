package database

import (
	"log"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
)

// Store is the single source of truth for the demo session. Every collection
// lives in memory, seeded from the fixtures in seed.go, and survives exactly
// as long as the process. Handlers receive a *Store instead of reaching for a
// package global so tests can run against isolated instances.
type Store struct {
	mu      sync.RWMutex
	events  []model.Event
	guests  []model.Guest
	layouts []model.RoomLayout
	users   []model.User
	orgs    []model.Organization

	idMu   sync.Mutex
	nextID uint

	subMu  sync.Mutex
	subs   map[int]func()
	subSeq int
}

// Open creates a store seeded with the demo fixtures.
func Open() *Store {
	s := &Store{subs: make(map[int]func())}
	s.reset()
	return s
}

// Reset restores every collection to its seeded state and notifies
// subscribers. reset();mutate();reset() yields the same snapshot as the
// first reset().
func (s *Store) Reset() {
	s.reset()
	s.notify()
}

func (s *Store) reset() {
	s.mu.Lock()
	s.events = deepCopy(seedEvents)
	s.guests = deepCopy(seedGuests)
	s.layouts = deepCopy(seedRoomLayouts)
	s.users = deepCopy(seedUsers)
	s.orgs = deepCopy(seedOrganizations)
	s.mu.Unlock()

	s.idMu.Lock()
	s.nextID = seedNextID
	s.idMu.Unlock()
}

// NextID hands out session-unique identifiers for records created at
// runtime. Safe to call from inside a replace transform.
func (s *Store) NextID() uint {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// Snapshot getters. Each returns a deep copy, mutating the result never
// touches store state.

func (s *Store) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.events)
}

func (s *Store) Guests() []model.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.guests)
}

func (s *Store) RoomLayouts() []model.RoomLayout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.layouts)
}

func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.users)
}

func (s *Store) Organizations() []model.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.orgs)
}

// Replace mutators. The transform receives a snapshot, returns the next
// collection state, and must not keep references to its argument. Validation
// of domain invariants belongs to the caller; a replace itself cannot fail.

func (s *Store) ReplaceEvents(fn func([]model.Event) []model.Event) {
	s.mu.Lock()
	s.events = deepCopy(fn(deepCopy(s.events)))
	s.mu.Unlock()
	s.notify()
}

func (s *Store) ReplaceGuests(fn func([]model.Guest) []model.Guest) {
	s.mu.Lock()
	s.guests = deepCopy(fn(deepCopy(s.guests)))
	s.mu.Unlock()
	s.notify()
}

func (s *Store) ReplaceRoomLayouts(fn func([]model.RoomLayout) []model.RoomLayout) {
	s.mu.Lock()
	s.layouts = deepCopy(fn(deepCopy(s.layouts)))
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers a change listener and returns its unsubscribe func.
// Listeners fire after every replace and after Reset.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.subSeq
	s.subSeq++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func deepCopy[T any](src []T) []T {
	dst := make([]T, 0, len(src))
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		log.Printf("store: deep copy failed: %v", err)
	}
	return dst
}
