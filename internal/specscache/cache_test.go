package specscache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"sysdash/internal/domain"
)

func testSpecs() *domain.HardwareSpecs {
	return &domain.HardwareSpecs{
		CPUModel: "Intel(R) Core(TM) i7-9700K",
		CPUCores: 8,
		Hostname: "testhost",
	}
}

func countingFetch(specs *domain.HardwareSpecs, calls *int) FetchFunc {
	return func(ctx context.Context) (*domain.HardwareSpecs, error) {
		*calls++
		return specs, nil
	}
}

func TestGetOrFetch_MissFetchesAndStores(t *testing.T) {
	c := New(t.TempDir())
	calls := 0

	got, err := c.GetOrFetch(context.Background(), "local", countingFetch(testSpecs(), &calls))
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if diff := cmp.Diff(testSpecs(), got); diff != "" {
		t.Errorf("specs mismatch (-want +got):\n%s", diff)
	}
}

func TestGetOrFetch_FreshHitSkipsFetch(t *testing.T) {
	c := New(t.TempDir())
	calls := 0
	fetch := countingFetch(testSpecs(), &calls)

	if _, err := c.GetOrFetch(context.Background(), "local", fetch); err != nil {
		t.Fatal(err)
	}
	got, err := c.GetOrFetch(context.Background(), "local", fetch)
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want fresh hit to skip the fetch", calls)
	}
	if got.Hostname != "testhost" {
		t.Errorf("hostname = %q", got.Hostname)
	}
}

func TestGetOrFetch_ExpiredEntryRefetchesInline(t *testing.T) {
	c := WithTTLs(t.TempDir(), time.Nanosecond, time.Nanosecond)
	calls := 0
	fetch := countingFetch(testSpecs(), &calls)

	if _, err := c.GetOrFetch(context.Background(), "local", fetch); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, err := c.GetOrFetch(context.Background(), "local", fetch); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want expired entry to refetch", calls)
	}
}

func TestGetOrFetch_FetchErrorPropagates(t *testing.T) {
	c := New(t.TempDir())
	wantErr := errors.New("agent down")

	_, err := c.GetOrFetch(context.Background(), "remote", func(ctx context.Context) (*domain.HardwareSpecs, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected fetch error, got %v", err)
	}
}

func TestGetOrFetch_CorruptEntryRefetches(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	calls := 0
	fetch := countingFetch(testSpecs(), &calls)

	if _, err := c.GetOrFetch(context.Background(), "local", fetch); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.pathFor("local"), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := c.GetOrFetch(context.Background(), "local", fetch); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want corrupt entry to refetch", calls)
	}
}

func TestInvalidate(t *testing.T) {
	c := New(t.TempDir())
	calls := 0
	fetch := countingFetch(testSpecs(), &calls)

	if _, err := c.GetOrFetch(context.Background(), "local", fetch); err != nil {
		t.Fatal(err)
	}
	if err := c.Invalidate("local"); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}
	if _, err := c.GetOrFetch(context.Background(), "local", fetch); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want invalidation to force a refetch", calls)
	}

	// Invalidating a missing entry is not an error.
	if err := c.Invalidate("ghost"); err != nil {
		t.Errorf("Invalidate(ghost) = %v", err)
	}
}

func TestNilCacheDegradesToFetch(t *testing.T) {
	var c *Cache
	calls := 0

	if _, err := c.GetOrFetch(context.Background(), "local", countingFetch(testSpecs(), &calls)); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want plain fetch through a nil cache", calls)
	}
}
