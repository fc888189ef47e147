package scanstore

import (
	"context"
	"errors"
	"testing"

	"dupefinder/internal/dedupe"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRecords() []dedupe.FileRecord {
	return []dedupe.FileRecord{
		{Path: "/films/Matrix (1999).mkv", Filename: "Matrix (1999).mkv", Title: "Matrix", Year: 1999, Quality: "1080p", SizeBytes: 4000, Folder: "/films", DurationSeconds: 8160},
		{Path: "/films/old/The Matrix 1999.avi", Filename: "The Matrix 1999.avi", Title: "The Matrix", Year: 1999, Quality: "Unknown", SizeBytes: 1500, Folder: "/films/old", DurationSeconds: 8100},
		{Path: "/films/Heat (1995).mkv", Filename: "Heat (1995).mkv", Title: "Heat", Year: 1995, Quality: "720p", SizeBytes: 2000, Folder: "/films", DurationSeconds: 10200},
	}
}

func sampleGroups(records []dedupe.FileRecord) []dedupe.Group {
	return []dedupe.Group{{records[0], records[1]}}
}

func TestSaveScanRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	records := sampleRecords()
	groups := sampleGroups(records)

	saved, err := store.SaveScan(ctx, "/films", records, groups)
	if err != nil {
		t.Fatalf("SaveScan returned error: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("SaveScan returned empty scan ID")
	}
	if saved.Stats.TotalFiles != 3 || saved.Stats.GroupCount != 1 {
		t.Fatalf("unexpected stats: %+v", saved.Stats)
	}
	if saved.Stats.DuplicateSpaceBytes != 1500 {
		t.Fatalf("DuplicateSpaceBytes = %d, want 1500", saved.Stats.DuplicateSpaceBytes)
	}

	got, err := store.GetScan(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetScan returned error: %v", err)
	}
	if got.Root != "/films" {
		t.Fatalf("Root = %q, want %q", got.Root, "/films")
	}
	if got.Stats != saved.Stats {
		t.Fatalf("stored stats %+v, want %+v", got.Stats, saved.Stats)
	}

	storedRecords, err := store.Records(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Records returned error: %v", err)
	}
	if len(storedRecords) != len(records) {
		t.Fatalf("Records returned %d entries, want %d", len(storedRecords), len(records))
	}
	for i, rec := range storedRecords {
		if rec != records[i] {
			t.Fatalf("record %d = %+v, want %+v", i, rec, records[i])
		}
	}

	storedGroups, err := store.Groups(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Groups returned error: %v", err)
	}
	if len(storedGroups) != 1 {
		t.Fatalf("Groups returned %d groups, want 1", len(storedGroups))
	}
	if storedGroups[0].Anchor().Path != records[0].Path {
		t.Fatalf("anchor = %q, want %q", storedGroups[0].Anchor().Path, records[0].Path)
	}
	if storedGroups[0][1].Path != records[1].Path {
		t.Fatalf("second member = %q, want %q", storedGroups[0][1].Path, records[1].Path)
	}
}

func TestLatestScan(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.LatestScan(ctx); !errors.Is(err, ErrNoScans) {
		t.Fatalf("LatestScan on empty store = %v, want ErrNoScans", err)
	}

	first, err := store.SaveScan(ctx, "/a", nil, nil)
	if err != nil {
		t.Fatalf("SaveScan returned error: %v", err)
	}
	second, err := store.SaveScan(ctx, "/b", nil, nil)
	if err != nil {
		t.Fatalf("SaveScan returned error: %v", err)
	}

	latest, err := store.LatestScan(ctx)
	if err != nil {
		t.Fatalf("LatestScan returned error: %v", err)
	}
	if latest.ID != second.ID {
		t.Fatalf("LatestScan = %s, want %s", latest.ID, second.ID)
	}

	scans, err := store.ListScans(ctx)
	if err != nil {
		t.Fatalf("ListScans returned error: %v", err)
	}
	if len(scans) != 2 {
		t.Fatalf("ListScans returned %d scans, want 2", len(scans))
	}
	if scans[0].ID != second.ID || scans[1].ID != first.ID {
		t.Fatal("ListScans did not order newest first")
	}
}

func TestGetScanNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.GetScan(context.Background(), "missing"); !errors.Is(err, ErrScanNotFound) {
		t.Fatalf("GetScan = %v, want ErrScanNotFound", err)
	}
	if _, err := store.Records(context.Background(), "missing"); !errors.Is(err, ErrScanNotFound) {
		t.Fatalf("Records = %v, want ErrScanNotFound", err)
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.SaveScan(ctx, "/films", sampleRecords(), nil); err != nil {
		t.Fatalf("SaveScan returned error: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, err := store.LatestScan(ctx); !errors.Is(err, ErrNoScans) {
		t.Fatalf("LatestScan after Clear = %v, want ErrNoScans", err)
	}
}

func TestOpenRejectsSecondWriter(t *testing.T) {
	dir := t.TempDir()
	first, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer first.Close()

	if _, err := Open(dir); err == nil {
		t.Fatal("second Open succeeded, want lock error")
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	saved, err := store.SaveScan(context.Background(), "/films", sampleRecords(), nil)
	if err != nil {
		t.Fatalf("SaveScan returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer reopened.Close()

	latest, err := reopened.LatestScan(context.Background())
	if err != nil {
		t.Fatalf("LatestScan returned error: %v", err)
	}
	if latest.ID != saved.ID {
		t.Fatalf("LatestScan = %s, want %s", latest.ID, saved.ID)
	}
}
