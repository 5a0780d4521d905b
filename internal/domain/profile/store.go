package profile

import "sync"

// Store owns every UserProfile. Profiles are created lazily on first
// reference. The outer lock guards the map only; each profile carries its own
// mutex so appends for one user are serialized without blocking other users.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	profile *UserProfile
}

func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

func (s *Store) get(userID string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[userID]
	return e, ok
}

func (s *Store) getOrCreate(userID string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		e = &entry{profile: newProfile(userID)}
		s.entries[userID] = e
	}
	return e
}

// Ensure returns a copy of the user's profile, creating an empty one if
// absent. It never fails.
func (s *Store) Ensure(userID string) UserProfile {
	e := s.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile.clone()
}

// Register creates the profile if needed and fills in the user's identity.
// Existing histories are kept.
func (s *Store) Register(userID, name, email string) UserProfile {
	e := s.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profile.Name = name
	e.profile.Email = email
	return e.profile.clone()
}

// RecordSearch appends query to the user's search history. Repeated identical
// queries each produce a new entry; temporal order is preserved.
func (s *Store) RecordSearch(userID, query string) {
	e := s.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profile.SearchHistory = append(e.profile.SearchHistory, query)
}

// RecordView appends productID to the user's browsing history.
func (s *Store) RecordView(userID, productID string) {
	e := s.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profile.BrowsingHistory = append(e.profile.BrowsingHistory, productID)
}

// RecordPurchase appends productID to the user's purchase history.
func (s *Store) RecordPurchase(userID, productID string) {
	e := s.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profile.PurchaseHistory = append(e.profile.PurchaseHistory, productID)
}

// AddFavoriteCategory adds category to the user's favorite set. Adding a
// category twice is a no-op.
func (s *Store) AddFavoriteCategory(userID, category string) {
	e := s.getOrCreate(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range e.profile.FavoriteCategories {
		if c == category {
			return
		}
	}
	e.profile.FavoriteCategories = append(e.profile.FavoriteCategories, category)
}

// SearchHistory returns a copy of the user's search history in call order.
// Unknown users get an empty history, not an error, and no profile is created.
func (s *Store) SearchHistory(userID string) []string {
	e, ok := s.get(userID)
	if !ok {
		return []string{}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string{}, e.profile.SearchHistory...)
}

// ClearSearchHistory resets the user's search history and reports whether a
// profile existed. Browsing and purchase history and favorites are untouched;
// clearing search intent must not discard purchase or browse signal.
func (s *Store) ClearSearchHistory(userID string) bool {
	e, ok := s.get(userID)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profile.SearchHistory = []string{}
	return true
}

// Count reports the number of known profiles.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
