package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"portfolio-web/internal/domain"
)

// ThemeRepository persiste el modo de tema por clave (sesion o CLI).
type ThemeRepository interface {
	Load(ctx context.Context, key string) (domain.ThemeMode, bool, error)
	Save(ctx context.Context, key string, mode domain.ThemeMode) error
}

// ErrInvalidThemeMode indica un valor persistido que no es light/dark.
var ErrInvalidThemeMode = errors.New("invalid theme mode")

func decodeMode(value string) (domain.ThemeMode, error) {
	mode, ok := domain.ParseThemeMode(value)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidThemeMode, value)
	}
	return mode, nil
}

type MemoryThemeRepository struct {
	mu    sync.Mutex
	items map[string]domain.ThemeMode
}

func NewMemoryThemeRepository() *MemoryThemeRepository {
	return &MemoryThemeRepository{items: make(map[string]domain.ThemeMode)}
}

func (r *MemoryThemeRepository) Load(_ context.Context, key string) (domain.ThemeMode, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	mode, ok := r.items[key]
	return mode, ok, nil
}

func (r *MemoryThemeRepository) Save(_ context.Context, key string, mode domain.ThemeMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = mode
	return nil
}

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisThemeRepository guarda el modo en theme:<key> con TTL opcional.
type RedisThemeRepository struct {
	client redisKV
	prefix string
	ttl    time.Duration
}

func NewRedisThemeRepository(client *redis.Client, ttl time.Duration) *RedisThemeRepository {
	return &RedisThemeRepository{client: client, prefix: "theme:", ttl: ttl}
}

func (r *RedisThemeRepository) Load(ctx context.Context, key string) (domain.ThemeMode, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	mode, err := decodeMode(value)
	if err != nil {
		return "", false, err
	}
	return mode, true, nil
}

func (r *RedisThemeRepository) Save(ctx context.Context, key string, mode domain.ThemeMode) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return r.client.Set(ctx, r.prefix+key, string(mode), r.ttl).Err()
}

type pgExecQuerier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgQueryTimeout acota cada consulta para que una base lenta no frene
// los renders.
const pgQueryTimeout = 2 * time.Second

// PgThemeRepository guarda el modo en la tabla theme_preferences.
type PgThemeRepository struct {
	pool pgExecQuerier
}

func NewPgThemeRepository(pool pgExecQuerier) *PgThemeRepository {
	return &PgThemeRepository{pool: pool}
}

func (r *PgThemeRepository) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS theme_preferences (
			pref_key   TEXT PRIMARY KEY,
			mode       TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`
	_, err := r.pool.Exec(ctx, query)
	return err
}

func (r *PgThemeRepository) Load(ctx context.Context, key string) (domain.ThemeMode, bool, error) {
	const query = `
		SELECT mode
		FROM theme_preferences
		WHERE pref_key = $1
	`
	ctx, cancel := context.WithTimeout(ctx, pgQueryTimeout)
	defer cancel()
	var value string
	err := r.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	mode, err := decodeMode(value)
	if err != nil {
		return "", false, err
	}
	return mode, true, nil
}

func (r *PgThemeRepository) Save(ctx context.Context, key string, mode domain.ThemeMode) error {
	const query = `
		INSERT INTO theme_preferences (pref_key, mode, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (pref_key) DO UPDATE SET mode = EXCLUDED.mode, updated_at = EXCLUDED.updated_at
	`
	ctx, cancel := context.WithTimeout(ctx, pgQueryTimeout)
	defer cancel()
	_, err := r.pool.Exec(ctx, query, key, string(mode), time.Now().UTC())
	return err
}

// SQLiteThemeRepository es la variante embebida (modernc.org/sqlite).
type SQLiteThemeRepository struct {
	db *sql.DB
}

func NewSQLiteThemeRepository(db *sql.DB) *SQLiteThemeRepository {
	return &SQLiteThemeRepository{db: db}
}

func (r *SQLiteThemeRepository) EnsureSchema(ctx context.Context) error {
	const query = `
	CREATE TABLE IF NOT EXISTS theme_preferences (
		pref_key   TEXT PRIMARY KEY,
		mode       TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

func (r *SQLiteThemeRepository) Load(ctx context.Context, key string) (domain.ThemeMode, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT mode FROM theme_preferences WHERE pref_key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	mode, err := decodeMode(value)
	if err != nil {
		return "", false, err
	}
	return mode, true, nil
}

func (r *SQLiteThemeRepository) Save(ctx context.Context, key string, mode domain.ThemeMode) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO theme_preferences (pref_key, mode, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(pref_key) DO UPDATE SET mode = excluded.mode, updated_at = excluded.updated_at
	`, key, string(mode), time.Now().UTC())
	return err
}
