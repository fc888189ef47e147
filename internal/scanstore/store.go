package scanstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"dupefinder/internal/dedupe"
)

// ErrNoScans indicates the store holds no scans yet.
var ErrNoScans = errors.New("no scans recorded")

// ErrScanNotFound indicates the requested scan ID does not exist.
var ErrScanNotFound = errors.New("scan not found")

// Scan describes one persisted scan together with its summary statistics.
type Scan struct {
	ID        string
	Root      string
	CreatedAt time.Time
	Stats     dedupe.Stats
}

// Store manages scan persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the scan database under dataDir. The
// accompanying lock file prevents concurrent writers from interleaving
// saves across processes.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	lock := flock.New(filepath.Join(dataDir, "scans.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another dupefinder instance is using the scan database")
	}

	dbPath := filepath.Join(dataDir, "scans.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection and releases the lock file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// SaveScan persists a scan with its records and duplicate groups and returns
// the stored scan metadata. Statistics are derived from the inputs.
func (s *Store) SaveScan(ctx context.Context, root string, records []dedupe.FileRecord, groups []dedupe.Group) (*Scan, error) {
	scan := &Scan{
		ID:        uuid.NewString(),
		Root:      root,
		CreatedAt: time.Now().UTC(),
		Stats:     dedupe.Summarize(records, groups),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO scans (
            id, root, created_at, total_files, total_duplicates,
            group_count, duplicate_space_bytes
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		scan.ID,
		scan.Root,
		scan.CreatedAt.Format(time.RFC3339Nano),
		scan.Stats.TotalFiles,
		scan.Stats.TotalDuplicates,
		scan.Stats.GroupCount,
		scan.Stats.DuplicateSpaceBytes,
	)
	if err != nil {
		return nil, fmt.Errorf("insert scan: %w", err)
	}

	fileStmt, err := tx.PrepareContext(
		ctx,
		`INSERT INTO scan_files (
            scan_id, position, path, filename, title, year,
            quality, size_bytes, folder, duration_seconds
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return nil, fmt.Errorf("prepare file insert: %w", err)
	}
	defer fileStmt.Close()

	for i, rec := range records {
		_, err = fileStmt.ExecContext(
			ctx,
			scan.ID, i, rec.Path, rec.Filename, rec.Title, rec.Year,
			rec.Quality, rec.SizeBytes, rec.Folder, rec.DurationSeconds,
		)
		if err != nil {
			return nil, fmt.Errorf("insert file %s: %w", rec.Path, err)
		}
	}

	memberStmt, err := tx.PrepareContext(
		ctx,
		"INSERT INTO group_members (scan_id, group_idx, position, path) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return nil, fmt.Errorf("prepare member insert: %w", err)
	}
	defer memberStmt.Close()

	for gi, group := range groups {
		for pos, rec := range group {
			if _, err := memberStmt.ExecContext(ctx, scan.ID, gi, pos, rec.Path); err != nil {
				return nil, fmt.Errorf("insert group member %s: %w", rec.Path, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit save: %w", err)
	}
	return scan, nil
}

// LatestScan returns the most recently saved scan, or ErrNoScans.
// Insertion order is chronological because the lock file enforces a
// single writer.
func (s *Store) LatestScan(ctx context.Context) (*Scan, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, root, created_at, total_files, total_duplicates,
                group_count, duplicate_space_bytes
         FROM scans ORDER BY rowid DESC LIMIT 1`)
	scan, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoScans
	}
	return scan, err
}

// GetScan returns the scan with the given ID, or ErrScanNotFound.
func (s *Store) GetScan(ctx context.Context, id string) (*Scan, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, root, created_at, total_files, total_duplicates,
                group_count, duplicate_space_bytes
         FROM scans WHERE id = ?`, id)
	scan, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrScanNotFound, id)
	}
	return scan, err
}

// ListScans returns all scans, newest first.
func (s *Store) ListScans(ctx context.Context) ([]Scan, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, root, created_at, total_files, total_duplicates,
                group_count, duplicate_space_bytes
         FROM scans ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		scan, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, *scan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scans: %w", err)
	}
	return scans, nil
}

// Records returns the file records of a scan in their original order.
func (s *Store) Records(ctx context.Context, scanID string) ([]dedupe.FileRecord, error) {
	if _, err := s.GetScan(ctx, scanID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT path, filename, title, year, quality, size_bytes, folder, duration_seconds
         FROM scan_files WHERE scan_id = ? ORDER BY position`, scanID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []dedupe.FileRecord
	for rows.Next() {
		var rec dedupe.FileRecord
		err := rows.Scan(&rec.Path, &rec.Filename, &rec.Title, &rec.Year,
			&rec.Quality, &rec.SizeBytes, &rec.Folder, &rec.DurationSeconds)
		if err != nil {
			return nil, fmt.Errorf("scan record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Groups reconstructs the duplicate groups of a scan. Member order within
// each group matches the order they were grouped in, anchor first.
func (s *Store) Groups(ctx context.Context, scanID string) ([]dedupe.Group, error) {
	records, err := s.Records(ctx, scanID)
	if err != nil {
		return nil, err
	}
	byPath := make(map[string]dedupe.FileRecord, len(records))
	for _, rec := range records {
		byPath[rec.Path] = rec
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT group_idx, path FROM group_members
         WHERE scan_id = ? ORDER BY group_idx, position`, scanID)
	if err != nil {
		return nil, fmt.Errorf("query group members: %w", err)
	}
	defer rows.Close()

	var (
		groups  []dedupe.Group
		current dedupe.Group
		lastIdx = -1
	)
	for rows.Next() {
		var idx int
		var path string
		if err := rows.Scan(&idx, &path); err != nil {
			return nil, fmt.Errorf("scan member row: %w", err)
		}
		rec, ok := byPath[path]
		if !ok {
			return nil, fmt.Errorf("group member %s missing from scan files", path)
		}
		if idx != lastIdx {
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = nil
			lastIdx = idx
		}
		current = append(current, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group members: %w", err)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups, nil
}

// Clear removes all stored scans.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM scans"); err != nil {
		return fmt.Errorf("clear scans: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (*Scan, error) {
	var (
		scan      Scan
		createdAt string
	)
	err := row.Scan(&scan.ID, &scan.Root, &createdAt, &scan.Stats.TotalFiles,
		&scan.Stats.TotalDuplicates, &scan.Stats.GroupCount, &scan.Stats.DuplicateSpaceBytes)
	if err != nil {
		return nil, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse scan timestamp: %w", err)
	}
	scan.CreatedAt = parsed
	return &scan, nil
}
