// Package storage provides SQLite-based persistence for generated levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/hexslide/levels"
	"github.com/vovakirdan/hexslide/internal/hexslide/levels/formats"
)

// ErrNotFound is returned when no level has the requested number.
var ErrNotFound = errors.New("storage: level not found")

// Store manages the SQLite database connection for the level catalogue.
type Store struct {
	db *sql.DB
}

// LevelEntry is a catalogue row without the level body.
type LevelEntry struct {
	ID            string
	Number        int
	Seed          uint64
	Strategy      core.Strategy
	Shape         string
	Pieces        int
	Moves         int
	MoveLimit     int
	RemovalTarget int
	CreatedAt     time.Time
}

// CatalogueStats contains aggregated statistics for the catalogue.
type CatalogueStats struct {
	Levels    int
	Fallbacks int
	AvgMoves  float64
	AvgPieces float64
	MaxNumber int
	LastAdded time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			id TEXT PRIMARY KEY,
			number INTEGER NOT NULL UNIQUE,
			seed INTEGER NOT NULL,
			strategy TEXT NOT NULL,
			shape TEXT NOT NULL,
			pieces INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			move_limit INTEGER NOT NULL,
			removal_target INTEGER NOT NULL,
			body BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_strategy ON levels(strategy);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveLevel stores a level, replacing any level with the same number.
func (s *Store) SaveLevel(lvl core.Level, name string) error {
	id := levels.IDFor(lvl.Number)
	body, err := formats.MarshalYAML(formats.Level{ID: id, Name: name, Level: lvl})
	if err != nil {
		return fmt.Errorf("storage: cannot encode level %d: %w", lvl.Number, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO levels
		 (id, number, seed, strategy, shape, pieces, moves, move_limit, removal_target, body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(number) DO UPDATE SET
		   id = excluded.id,
		   seed = excluded.seed,
		   strategy = excluded.strategy,
		   shape = excluded.shape,
		   pieces = excluded.pieces,
		   moves = excluded.moves,
		   move_limit = excluded.move_limit,
		   removal_target = excluded.removal_target,
		   body = excluded.body,
		   created_at = CURRENT_TIMESTAMP`,
		id,
		lvl.Number,
		int64(lvl.Seed),
		string(lvl.Strategy),
		lvl.Shape.Name,
		len(lvl.Pieces),
		len(lvl.Solution),
		lvl.MoveLimit,
		lvl.RemovalTarget,
		body,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level %d: %w", lvl.Number, err)
	}
	return nil
}

// LoadLevel decodes the level with the given number.
// Returns ErrNotFound if it is not in the catalogue.
func (s *Store) LoadLevel(number int) (core.Level, error) {
	var body []byte
	err := s.db.QueryRow("SELECT body FROM levels WHERE number = ?", number).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Level{}, fmt.Errorf("%w: %d", ErrNotFound, number)
	}
	if err != nil {
		return core.Level{}, fmt.Errorf("storage: cannot query level %d: %w", number, err)
	}

	parsed, err := formats.ParseYAML(body)
	if err != nil {
		return core.Level{}, fmt.Errorf("storage: cannot decode level %d: %w", number, err)
	}
	return parsed.Level, nil
}

// ListLevels returns catalogue rows ordered by level number.
// A limit of zero or less returns every row.
func (s *Store) ListLevels(limit int) ([]LevelEntry, error) {
	query := `SELECT id, number, seed, strategy, shape, pieces, moves, move_limit, removal_target, created_at
		 FROM levels
		 ORDER BY number`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var entries []LevelEntry
	for rows.Next() {
		var e LevelEntry
		var seed int64
		var strategy string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Number, &seed, &strategy, &e.Shape, &e.Pieces, &e.Moves,
			&e.MoveLimit, &e.RemovalTarget, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Seed = uint64(seed)
		e.Strategy = core.Strategy(strategy)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteLevel removes a level. Deleting a missing level is not an error.
func (s *Store) DeleteLevel(number int) error {
	_, err := s.db.Exec("DELETE FROM levels WHERE number = ?", number)
	if err != nil {
		return fmt.Errorf("storage: cannot delete level %d: %w", number, err)
	}
	return nil
}

// Stats retrieves aggregated statistics for the catalogue.
func (s *Store) Stats() (*CatalogueStats, error) {
	stats := &CatalogueStats{}

	var lastAdded any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN strategy = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(moves), 0),
		        COALESCE(AVG(pieces), 0),
		        COALESCE(MAX(number), 0),
		        MAX(created_at)
		 FROM levels`,
		string(core.StrategyFallback),
	).Scan(&stats.Levels, &stats.Fallbacks, &stats.AvgMoves, &stats.AvgPieces, &stats.MaxNumber, &lastAdded)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get catalogue stats: %w", err)
	}
	stats.LastAdded = parseTime(lastAdded)

	return stats, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
