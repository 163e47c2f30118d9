package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEventRepository_CreateAndGet(t *testing.T) {
	s := testStore(t)

	e := &Event{
		ID:   uuid.New().String(),
		Kind: "left-click",
	}
	if err := s.Events().Create(e); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if e.CreatedAt.IsZero() {
		t.Error("Create() did not set CreatedAt")
	}

	got, err := s.Events().GetByID(e.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Kind != "left-click" {
		t.Errorf("Kind = %q, want %q", got.Kind, "left-click")
	}
}

func TestEventRepository_GetByIDNotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.Events().GetByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestEventRepository_ListRecent(t *testing.T) {
	s := testStore(t)
	base := time.Now().Add(-time.Hour)

	kindsInOrder := []string{"move", "left-click", "scroll-up", "swipe-left"}
	for i, kind := range kindsInOrder {
		err := s.Events().Create(&Event{
			ID:        uuid.New().String(),
			Kind:      kind,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Create(%s) error = %v", kind, err)
		}
	}

	events, err := s.Events().ListRecent(2)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Kind != "swipe-left" || events[1].Kind != "scroll-up" {
		t.Errorf("order = [%s %s], want newest first [swipe-left scroll-up]", events[0].Kind, events[1].Kind)
	}
}

func TestEventRepository_CountByKind(t *testing.T) {
	s := testStore(t)

	for _, kind := range []string{"move", "move", "left-click"} {
		s.Events().Create(&Event{ID: uuid.New().String(), Kind: kind})
	}

	counts, err := s.Events().CountByKind()
	if err != nil {
		t.Fatalf("CountByKind() error = %v", err)
	}
	if counts["move"] != 2 || counts["left-click"] != 1 {
		t.Errorf("counts = %v, want move:2 left-click:1", counts)
	}
}

func TestEventRepository_Prune(t *testing.T) {
	s := testStore(t)
	now := time.Now()

	s.Events().Create(&Event{ID: "old", Kind: "move", CreatedAt: now.Add(-48 * time.Hour)})
	s.Events().Create(&Event{ID: "new", Kind: "move", CreatedAt: now})

	deleted, err := s.Events().Prune(now.Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("Prune() deleted %d rows, want 1", deleted)
	}

	if _, err := s.Events().GetByID("new"); err != nil {
		t.Errorf("recent event was pruned: %v", err)
	}
}

func TestSettingRepository_RoundTrip(t *testing.T) {
	s := testStore(t)

	if _, err := s.Settings().Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := s.Settings().Set("source", "0"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Settings().Set("source", "video.avi"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	value, err := s.Settings().Get("source")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "video.avi" {
		t.Errorf("Get() = %q, want %q", value, "video.avi")
	}
}

func TestSettingRepository_Bool(t *testing.T) {
	s := testStore(t)

	if got := s.Settings().GetBool(SettingEnabled, true); !got {
		t.Error("GetBool() fallback = false, want true")
	}

	s.Settings().SetBool(SettingEnabled, false)
	if got := s.Settings().GetBool(SettingEnabled, true); got {
		t.Error("GetBool() = true after SetBool(false)")
	}
}
