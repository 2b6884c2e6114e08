package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"pokexplorer/internal/model"
)

//go:embed schema.sql
var schemaSQLite string

//go:embed schema_mysql.sql
var schemaMySQL string

// Store is the local favorites table, keyed by item identifier. The stat list
// is serialized as a JSON blob inside the row: stats are never queried, only
// rehydrated wholesale with the row.
type Store struct {
	db      *sql.DB
	backend string
}

// New opens the favorites store and initializes its schema.
//
// The backend is chosen from the DSN format:
// MySQL DSN examples: user:password@tcp(host:port)/dbname, user:password@/dbname
// SQLite DSN: file path (e.g. data/favorites.db, :memory:)
func New(dsn string) (*Store, error) {
	var db *sql.DB
	var err error
	var backend string

	// Simple heuristic: if DSN contains '@' it's likely MySQL
	if strings.Contains(dsn, "@") {
		backend = "mysql"
		db, err = sql.Open("mysql", dsn)
	} else {
		backend = "sqlite"
		if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
			dir := filepath.Dir(dsn)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}

		// Apply pragmas via DSN so they hold on every connection.
		// modernc.org/sqlite uses _pragma query parameters.
		if !strings.Contains(dsn, "?") {
			dsn += "?"
		} else {
			dsn += "&"
		}
		pragmas := []string{
			"_pragma=foreign_keys(1)",
			"_pragma=journal_mode(WAL)",
			"_pragma=busy_timeout(30000)",
			"_pragma=synchronous(NORMAL)",
		}
		dsn += strings.Join(pragmas, "&")

		db, err = sql.Open("sqlite", dsn)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, backend: backend}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := schemaSQLite
	if s.backend == "mysql" {
		schema = schemaMySQL
	}

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

const itemColumns = `id, name, weight, height, sprite_url, stats`

// List returns all favorites in the order they were added. It returns an
// empty slice, never nil, when the table is empty.
func (s *Store) List(ctx context.Context) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM favorites ORDER BY added_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list favorites: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Get returns the favorite with the given id, or nil if absent.
func (s *Store) Get(ctx context.Context, id int) (*model.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM favorites WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get favorite %d: %w", id, err)
	}
	return &item, nil
}

// IsFavorite reports whether a row with the given id exists.
func (s *Store) IsFavorite(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check favorite %d: %w", id, err)
	}
	return exists, nil
}

// Put inserts or replaces one or more favorites by identifier. The batch is
// applied in a single transaction. added_at is kept from the original row on
// replace so the list order is stable.
func (s *Store) Put(ctx context.Context, items ...model.Item) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put favorites: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO favorites (id, name, weight, height, sprite_url, stats, added_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	name=excluded.name, weight=excluded.weight, height=excluded.height,
	sprite_url=excluded.sprite_url, stats=excluded.stats`
	if s.backend == "mysql" {
		query = `INSERT INTO favorites (id, name, weight, height, sprite_url, stats, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		name=VALUES(name), weight=VALUES(weight), height=VALUES(height),
		sprite_url=VALUES(sprite_url), stats=VALUES(stats)`
	}

	now := time.Now().UnixMilli()
	for _, item := range items {
		stats, err := json.Marshal(item.Stats)
		if err != nil {
			return fmt.Errorf("put favorite %d: %w", item.ID, err)
		}
		if _, err := tx.ExecContext(ctx, query,
			item.ID, item.Name, item.Weight, item.Height,
			item.Sprites.FrontDefault, string(stats), now); err != nil {
			return fmt.Errorf("put favorite %d: %w", item.ID, err)
		}
	}
	return tx.Commit()
}

// Delete removes the favorite with the given id. Deleting an absent row is a
// no-op.
func (s *Store) Delete(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete favorite %d: %w", id, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (model.Item, error) {
	var item model.Item
	var stats string
	if err := row.Scan(&item.ID, &item.Name, &item.Weight, &item.Height,
		&item.Sprites.FrontDefault, &stats); err != nil {
		return model.Item{}, err
	}
	if err := json.Unmarshal([]byte(stats), &item.Stats); err != nil {
		return model.Item{}, fmt.Errorf("decode stats blob: %w", err)
	}
	return item, nil
}
