package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/poinav/pkg/datastructure"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "map.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.InitSchema(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return store
}

func mustCoord(t *testing.T, lat, lon string) datastructure.GeoCoord {
	t.Helper()
	c, err := datastructure.NewGeoCoord(lat, lon)
	if err != nil {
		t.Fatalf("coord: %v", err)
	}
	return c
}

func TestSaveAndLoadSegments(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	a := mustCoord(t, "34.0547000", "-118.4794734")
	b := mustCoord(t, "34.0544590", "-118.4801137")
	c := mustCoord(t, "34.0540", "-118.48")
	segments := []datastructure.StreetSegment{
		datastructure.NewStreetSegment("10th Helena Drive", a, b,
			datastructure.NewAttraction("Brentwood Country Mart", a),
			datastructure.NewAttraction("Kiosk", c)),
		datastructure.NewStreetSegment("Barrington Avenue", b, c),
	}

	if err := store.SaveSegments(ctx, segments); err != nil {
		t.Fatalf("save segments: %v", err)
	}

	count, err := store.CountSegments(ctx)
	if err != nil {
		t.Fatalf("count segments: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 segments, got %d", count)
	}

	loader, err := store.LoadSegments(ctx)
	if err != nil {
		t.Fatalf("load segments: %v", err)
	}
	if loader.GetNumSegments() != 2 {
		t.Fatalf("expected 2 loaded segments, got %d", loader.GetNumSegments())
	}

	first, ok := loader.GetSegment(0)
	if !ok {
		t.Fatalf("segment 0 missing")
	}
	if !first.SameSegment(segments[0]) {
		t.Fatalf("unexpected segment: %+v", first)
	}
	if len(first.Attractions) != 2 || first.Attractions[1].Name != "Kiosk" {
		t.Fatalf("unexpected attractions: %+v", first.Attractions)
	}
	// coordinate text survives untouched
	if first.Attractions[1].Coord.LatText != "34.0540" {
		t.Fatalf("coordinate text changed: %q", first.Attractions[1].Coord.LatText)
	}

	second, _ := loader.GetSegment(1)
	if len(second.Attractions) != 0 {
		t.Fatalf("expected no attractions, got %d", len(second.Attractions))
	}
}

func TestSaveSegmentsReplaces(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	a := mustCoord(t, "1", "1")
	b := mustCoord(t, "2", "2")
	first := []datastructure.StreetSegment{
		datastructure.NewStreetSegment("Old Road", a, b, datastructure.NewAttraction("Old Mill", a)),
		datastructure.NewStreetSegment("Old Lane", b, a),
	}
	if err := store.SaveSegments(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SaveSegments(ctx, first[1:]); err != nil {
		t.Fatalf("save again: %v", err)
	}

	loader, err := store.LoadSegments(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loader.GetNumSegments() != 1 {
		t.Fatalf("expected 1 segment, got %d", loader.GetNumSegments())
	}
	seg, _ := loader.GetSegment(0)
	if seg.StreetName != "Old Lane" || len(seg.Attractions) != 0 {
		t.Fatalf("unexpected segment: %+v", seg)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	store := openTestStore(t)
	loader, err := store.LoadSegments(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loader.GetNumSegments() != 0 {
		t.Fatalf("expected empty store")
	}
}
