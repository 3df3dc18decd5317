package db

import "log"

// Starred is the in-session view of the starred set. Every change is
// written through to the store. Store failures never reach the caller:
// a failed load starts from an empty set and a failed save is dropped,
// LastErr keeps the most recent one for diagnostics.
type Starred struct {
	store   StarStore
	set     StarredSet
	Logger  *log.Logger
	LastErr error
}

func LoadStarred(store StarStore) *Starred {
	s := &Starred{store: store, set: StarredSet{}}
	if store == nil {
		return s
	}
	set, err := store.Load()
	if err != nil {
		s.LastErr = err
		return s
	}
	if set != nil {
		s.set = set
	}
	return s
}

func (s *Starred) Has(key string) bool {
	return s.set.Has(key)
}

func (s *Starred) Len() int {
	return len(s.set)
}

func (s *Starred) Keys() []string {
	return s.set.Keys()
}

// Set marks or unmarks key.
func (s *Starred) Set(key string, on bool) {
	if key == "" {
		return
	}
	if on {
		s.set[key] = struct{}{}
	} else {
		delete(s.set, key)
	}
	s.save()
}

// Toggle flips key and reports whether it is now starred.
func (s *Starred) Toggle(key string) bool {
	if key == "" {
		return false
	}
	on := !s.Has(key)
	s.Set(key, on)
	return on
}

func (s *Starred) Clear() {
	s.set = StarredSet{}
	s.save()
}

func (s *Starred) save() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.set); err != nil {
		s.LastErr = err
		if s.Logger != nil {
			s.Logger.Printf("starred: save failed: %v", err)
		}
	}
}
