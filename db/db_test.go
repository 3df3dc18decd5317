package db

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) (*BoltStarStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocabgarden.db")
	store, err := NewBoltStarStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store, path
}

func TestBoltStarStoreRoundTrip(t *testing.T) {
	store, path := openTestStore(t)

	set, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %v", set)
	}

	if err := store.Save(StarredSet{"a": {}, "b": {}, "": {}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(StarredSet{"b": {}, "c": {}}); err != nil {
		t.Fatalf("save 2: %v", err)
	}
	store.Close()

	reopened, err := NewBoltStarStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	set, err = reopened.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := strings.Join(set.Keys(), ","); got != "b,c" {
		t.Fatalf("expected b,c after replace, got %s", got)
	}
}

type failingStore struct {
	loadErr, saveErr error
	saves            int
}

func (f *failingStore) Load() (StarredSet, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return StarredSet{"kept": {}}, nil
}

func (f *failingStore) Save(StarredSet) error {
	f.saves++
	return f.saveErr
}

func TestStarredWriteThrough(t *testing.T) {
	store, _ := openTestStore(t)
	defer store.Close()

	s := LoadStarred(store)
	if s.LastErr != nil {
		t.Fatalf("unexpected load error: %v", s.LastErr)
	}
	if !s.Toggle("k1") {
		t.Fatal("expected k1 starred after toggle")
	}
	s.Set("k2", true)
	s.Set("", true)

	set, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := strings.Join(set.Keys(), ","); got != "k1,k2" {
		t.Fatalf("store not written through, got %s", got)
	}

	if s.Toggle("k1") {
		t.Fatal("expected k1 unstarred after second toggle")
	}
	set, _ = store.Load()
	if set.Has("k1") || !set.Has("k2") {
		t.Fatalf("unexpected stored set %v", set.Keys())
	}
}

func TestStarredLoadFailureIsEmpty(t *testing.T) {
	s := LoadStarred(&failingStore{loadErr: errors.New("corrupt")})
	if s.Len() != 0 {
		t.Fatalf("expected empty set, got %d", s.Len())
	}
	if s.LastErr == nil {
		t.Fatal("expected load error to be recorded")
	}
	s.Set("x", true)
	if !s.Has("x") {
		t.Fatal("expected set to keep working after load failure")
	}
}

func TestStarredSaveFailureIsDropped(t *testing.T) {
	fs := &failingStore{saveErr: errors.New("disk full")}
	s := LoadStarred(fs)
	if !s.Has("kept") {
		t.Fatal("expected loaded key")
	}
	s.Set("new", true)
	if !s.Has("new") {
		t.Fatal("expected in-memory change despite save failure")
	}
	if fs.saves != 1 || s.LastErr == nil {
		t.Fatalf("expected one failed save recorded, saves=%d err=%v", fs.saves, s.LastErr)
	}
}

func TestStarredNilStore(t *testing.T) {
	s := LoadStarred(nil)
	s.Set("a", true)
	if !s.Has("a") || s.LastErr != nil {
		t.Fatal("expected nil store to behave as in-memory set")
	}
}

func TestMemStarStore(t *testing.T) {
	m := &MemStarStore{}
	s := LoadStarred(m)
	s.Set("a", true)
	again := LoadStarred(m)
	if !again.Has("a") {
		t.Fatal("expected mem store to persist across loads")
	}
}

func TestStarListAndClear(t *testing.T) {
	s := LoadStarred(&MemStarStore{})
	var buf bytes.Buffer
	if err := StarList(&buf, s); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(buf.String(), "no starred words") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	s.Set("N5.json::1::ねこ::猫::cat|kitty", true)
	buf.Reset()
	if err := StarList(&buf, s); err != nil {
		t.Fatalf("list: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "ねこ 猫") || !strings.Contains(out, "cat, kitty") {
		t.Fatalf("unexpected output %q", out)
	}

	buf.Reset()
	if err := StarClear(&buf, s); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.Len() != 0 || !strings.Contains(buf.String(), "cleared 1") {
		t.Fatalf("unexpected clear result %q", buf.String())
	}
}
