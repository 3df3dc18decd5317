package db

import (
	"sort"
	"time"

	"github.com/boltdb/bolt"
)

const (
	STAR_BUCKET = "starred"
)

// StarredSet holds the star keys of entries flagged for review.
type StarredSet map[string]struct{}

func (s StarredSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s StarredSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type StarStore interface {
	Load() (StarredSet, error)
	Save(StarredSet) error
}

type BoltStarStore struct {
	*bolt.DB
}

func NewBoltStarStore(path string) (*BoltStarStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(STAR_BUCKET))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStarStore{DB: db}, nil
}

func (db *BoltStarStore) Load() (StarredSet, error) {
	set := StarredSet{}
	err := db.DB.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(STAR_BUCKET)).ForEach(func(k, _ []byte) error {
			if len(k) > 0 {
				set[string(k)] = struct{}{}
			}
			return nil
		})
	})
	if err != nil {
		return StarredSet{}, err
	}
	return set, nil
}

// Save replaces the stored set with s.
func (db *BoltStarStore) Save(s StarredSet) error {
	return db.DB.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(STAR_BUCKET))
		if err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		b, err := tx.CreateBucket([]byte(STAR_BUCKET))
		if err != nil {
			return err
		}
		for k := range s {
			if k == "" {
				continue
			}
			if err := b.Put([]byte(k), []byte{}); err != nil {
				return err
			}
		}
		return nil
	})
}

// MemStarStore keeps the set in memory, used when no database is available.
type MemStarStore struct {
	set StarredSet
}

func (m *MemStarStore) Load() (StarredSet, error) {
	out := StarredSet{}
	for k := range m.set {
		out[k] = struct{}{}
	}
	return out, nil
}

func (m *MemStarStore) Save(s StarredSet) error {
	m.set = StarredSet{}
	for k := range s {
		m.set[k] = struct{}{}
	}
	return nil
}
