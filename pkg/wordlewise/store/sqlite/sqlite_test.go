package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/cognicore/wordlewise/pkg/wordlewise/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	list := store.List{
		Source:    "https://example.com/answers.txt",
		Words:     []string{"crane", "slate", "trace"},
		FetchedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := s.PutList(ctx, list); err != nil {
		t.Fatalf("PutList: %v", err)
	}

	got, ok, err := s.GetList(ctx, list.Source)
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if !ok {
		t.Fatal("GetList found nothing")
	}
	if !reflect.DeepEqual(got.Words, list.Words) {
		t.Errorf("Words = %v, want %v", got.Words, list.Words)
	}
	if !got.FetchedAt.Equal(list.FetchedAt) {
		t.Errorf("FetchedAt = %v, want %v", got.FetchedAt, list.FetchedAt)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	if _, ok, err := s.GetList(context.Background(), "missing"); ok || err != nil {
		t.Errorf("GetList(missing) = ok=%v err=%v, want not found", ok, err)
	}
}

func TestPutReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.PutList(ctx, store.List{Source: "src", Words: []string{"old01"}, FetchedAt: time.Now()})
	s.PutList(ctx, store.List{Source: "src", Words: []string{"new01"}, FetchedAt: time.Now()})

	got, _, _ := s.GetList(ctx, "src")
	if !reflect.DeepEqual(got.Words, []string{"new01"}) {
		t.Errorf("Words = %v, want [new01]", got.Words)
	}
}

func TestEmptyListRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.PutList(ctx, store.List{Source: "src", FetchedAt: time.Now()})

	got, ok, err := s.GetList(ctx, "src")
	if err != nil || !ok {
		t.Fatalf("GetList: ok=%v err=%v", ok, err)
	}
	if len(got.Words) != 0 {
		t.Errorf("Words = %v, want empty", got.Words)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.PutList(ctx, store.List{Source: "src", Words: []string{"crane"}, FetchedAt: time.Now()})
	s.Close()

	s2, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, ok, _ := s2.GetList(ctx, "src")
	if !ok || !reflect.DeepEqual(got.Words, []string{"crane"}) {
		t.Errorf("after reopen: ok=%v words=%v", ok, got.Words)
	}
}
