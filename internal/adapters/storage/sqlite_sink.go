package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"glimpse/internal/domain"
	"glimpse/internal/logging"
	"glimpse/internal/ports"
)

// SQLiteSink implements ports.RecordSink and the manifest-table catalog
// using GORM
type SQLiteSink struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.RecordSink   = (*SQLiteSink)(nil)
	_ ports.MediaCatalog = (*SQLiteSink)(nil)
)

// gormLogger wraps the glimpse logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("GLIMPSE_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteSink opens (or creates) the study database at dbPath
func NewSQLiteSink(dbPath string) (*SQLiteSink, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode: served sessions append concurrently to the shared store
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&ResponseModel{}, &ProgressModel{}, &MediaManifestModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	return &SQLiteSink{db: db}, nil
}

// AppendResponse appends one completed trial row
func (s *SQLiteSink) AppendResponse(ctx context.Context, record domain.TrialRecord) error {
	model := recordToModel(record)
	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to append response row: %w", describeSQLiteErr(err))
	}

	logging.Logger.Debug("Appended response row",
		"participant_id", record.ParticipantID,
		"order_index", record.OrderIndex,
		"media_file", record.MediaFile)
	return nil
}

// AppendProgress appends one monitoring row
func (s *SQLiteSink) AppendProgress(ctx context.Context, record domain.ProgressRecord) error {
	model := progressToModel(record)
	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to append progress row: %w", describeSQLiteErr(err))
	}
	return nil
}

// ListResponses returns all response rows for a study, oldest first.
// An empty studyID returns every row.
func (s *SQLiteSink) ListResponses(ctx context.Context, studyID string) ([]domain.TrialRecord, error) {
	var models []ResponseModel
	query := s.db.WithContext(ctx).Order("id ASC")
	if studyID != "" {
		query = query.Where("study_id = ?", studyID)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	records := make([]domain.TrialRecord, len(models))
	for i, m := range models {
		records[i] = modelToRecord(m)
	}
	return records, nil
}

// ListProgress returns all progress rows for a study, oldest first
func (s *SQLiteSink) ListProgress(ctx context.Context, studyID string) ([]domain.ProgressRecord, error) {
	var models []ProgressModel
	query := s.db.WithContext(ctx).Order("id ASC")
	if studyID != "" {
		query = query.Where("study_id = ?", studyID)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	records := make([]domain.ProgressRecord, len(models))
	for i, m := range models {
		records[i] = modelToProgress(m)
	}
	return records, nil
}

// List implements ports.MediaCatalog over the media_manifest table,
// ordered lexicographically by file name for deterministic plan addressing
func (s *SQLiteSink) List(ctx context.Context, kind domain.MediaKind) ([]domain.MediaItem, error) {
	var models []MediaManifestModel
	err := s.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("file_name ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list manifest entries: %w", err)
	}

	items := make([]domain.MediaItem, len(models))
	for i, m := range models {
		items[i] = manifestToItem(m)
	}
	return items, nil
}

// UpsertManifestEntry adds or updates one manifest row (operator tooling)
func (s *SQLiteSink) UpsertManifestEntry(ctx context.Context, item domain.MediaItem) error {
	model := MediaManifestModel{
		FileName:     item.Name,
		GroupLabel:   item.GroupLabel,
		Kind:         string(item.Kind),
		OutcomeLabel: item.OutcomeLabel,
		Path:         item.Path,
	}
	err := s.db.WithContext(ctx).Save(&model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert manifest entry %s: %w", item.Name, err)
	}
	return nil
}

// Close closes the underlying database connection
func (s *SQLiteSink) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// describeSQLiteErr enriches driver errors with their SQLite error code so
// operator warnings distinguish a locked database from a schema problem
func describeSQLiteErr(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return fmt.Errorf("%w (sqlite code %d)", err, sqliteErr.Code)
	}
	return err
}
