package scanner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dupefinder/internal/dedupe"
	"dupefinder/internal/media/ffprobe"
	"dupefinder/internal/parse"
)

// Options controls file discovery.
type Options struct {
	// Extensions lists video file extensions to keep, lowercase with dot.
	Extensions []string
	// ExcludedDirectories lists directory names skipped case-insensitively
	// wherever they appear in the tree.
	ExcludedDirectories []string
	// ProbeDurations enables ffprobe duration probing per file.
	ProbeDurations bool
	// FFprobeBinary overrides the ffprobe executable name.
	FFprobeBinary string
}

// Scanner walks a filesystem tree and emits one FileRecord per video file.
type Scanner struct {
	opts       Options
	logger     *slog.Logger
	extensions map[string]struct{}
	excluded   map[string]struct{}
}

// New creates a Scanner. A nil logger discards log output.
func New(opts Options, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	extensions := make(map[string]struct{}, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[ext] = struct{}{}
	}

	excluded := make(map[string]struct{}, len(opts.ExcludedDirectories))
	for _, name := range opts.ExcludedDirectories {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		excluded[name] = struct{}{}
	}

	return &Scanner{
		opts:       opts,
		logger:     logger,
		extensions: extensions,
		excluded:   excluded,
	}
}

// Scan walks root recursively and returns a record for every video file
// found outside the excluded directories. Unreadable entries are logged and
// skipped; only a missing root or a canceled context fail the scan.
func (s *Scanner) Scan(ctx context.Context, root string) ([]dedupe.FileRecord, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scan root: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", absRoot)
	}

	s.logger.Info("scanning folder", "root", absRoot)

	var records []dedupe.FileRecord
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if walkErr != nil {
			s.logger.Warn("skipping unreadable entry", "path", path, "error", walkErr)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != absRoot && s.isExcluded(d.Name()) {
				s.logger.Debug("excluding directory", "path", path)
				return fs.SkipDir
			}
			return nil
		}
		if !s.isVideo(d.Name()) {
			return nil
		}

		fileInfo, infoErr := d.Info()
		if infoErr != nil {
			s.logger.Warn("skipping file without metadata", "path", path, "error", infoErr)
			return nil
		}

		record := s.buildRecord(ctx, path, fileInfo.Size())
		s.logger.Debug("found video",
			"title", record.Title,
			"year", record.Year,
			"quality", record.Quality,
		)
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", absRoot, err)
	}

	s.logger.Info("scan complete", "root", absRoot, "files", len(records))
	return records, nil
}

func (s *Scanner) buildRecord(ctx context.Context, path string, size int64) dedupe.FileRecord {
	filename := filepath.Base(path)
	info := parse.Parse(filename)

	record := dedupe.FileRecord{
		Path:      path,
		Filename:  filename,
		Title:     info.Title,
		Year:      info.Year,
		Quality:   info.Quality,
		SizeBytes: size,
		Folder:    filepath.Dir(path),
	}

	if s.opts.ProbeDurations {
		record.DurationSeconds = s.probeDuration(ctx, path)
	}
	return record
}

// probeDuration returns the media duration in seconds, or 0 when ffprobe is
// unavailable or the file cannot be inspected.
func (s *Scanner) probeDuration(ctx context.Context, path string) float64 {
	result, err := ffprobe.Inspect(ctx, s.opts.FFprobeBinary, path)
	if err != nil {
		s.logger.Debug("duration probe failed", "path", path, "error", err)
		return 0
	}
	return result.DurationSeconds()
}

func (s *Scanner) isExcluded(name string) bool {
	_, ok := s.excluded[strings.ToLower(name)]
	return ok
}

func (s *Scanner) isVideo(name string) bool {
	_, ok := s.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}
