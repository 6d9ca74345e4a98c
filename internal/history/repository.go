package history

import (
	"database/sql"
	"fmt"
	"time"

	"sysdash/internal/database"
)

// Repository defines the persistence interface for metric samples.
type Repository interface {
	Save(sample *Sample) error
	Recent(limit int) ([]Sample, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the sample repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	const ddl = `
        CREATE TABLE IF NOT EXISTS samples (
            id      INTEGER PRIMARY KEY AUTOINCREMENT,
            ts      TEXT    NOT NULL,
            cpu_pct REAL    NOT NULL,
            mem_pct REAL    NOT NULL,
            temp_c  REAL
        );
        CREATE INDEX IF NOT EXISTS idx_samples_ts ON samples(ts);
    `
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("history: migration failed: %w", err)
	}
	return nil
}

// Save inserts a new sample.
func (r *SQLiteRepository) Save(sample *Sample) error {
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now().UTC()
	}

	var temp sql.NullFloat64
	if sample.TemperatureC != nil {
		temp = sql.NullFloat64{Float64: *sample.TemperatureC, Valid: true}
	}

	result, err := r.db.Exec(`
        INSERT INTO samples (ts, cpu_pct, mem_pct, temp_c)
        VALUES (?, ?, ?, ?)`,
		sample.Timestamp.Format(time.RFC3339Nano), sample.CPUPercent, sample.MemoryPercent, temp,
	)
	if err != nil {
		return fmt.Errorf("history: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("history: failed to get last insert ID: %w", err)
	}
	sample.ID = id
	return nil
}

// Recent returns the most recent n samples, newest first.
func (r *SQLiteRepository) Recent(limit int) ([]Sample, error) {
	rows, err := r.db.Query(`
        SELECT id, ts, cpu_pct, mem_pct, temp_c
        FROM samples ORDER BY ts DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes samples older than the given duration.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339Nano)
	result, err := r.db.Exec(`DELETE FROM samples WHERE ts < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("history: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows) ([]Sample, error) {
	var samples []Sample
	for rows.Next() {
		var sample Sample
		var timestampStr string
		var temp sql.NullFloat64
		if err := rows.Scan(&sample.ID, &timestampStr, &sample.CPUPercent, &sample.MemoryPercent, &temp); err != nil {
			return nil, fmt.Errorf("history: scan failed: %w", err)
		}
		sample.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
		if temp.Valid {
			v := temp.Float64
			sample.TemperatureC = &v
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}
