package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"portfolio-web/internal/config"
	"portfolio-web/internal/db"
)

// OpenThemeRepository construye el backend elegido en THEME_STORE y
// devuelve la funcion que libera sus conexiones. Si redis no responde se
// sigue en memoria.
func OpenThemeRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ThemeRepository, func(), error) {
	switch cfg.ThemeStore {
	case config.ThemeStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using memory theme store", zap.Error(err))
			client.Close()
			return NewMemoryThemeRepository(), func() {}, nil
		}
		return NewRedisThemeRepository(client, 0), func() { client.Close() }, nil

	case config.ThemeStorePostgres:
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		if err := db.Ping(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("db ping: %w", err)
		}
		repo := NewPgThemeRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("theme schema: %w", err)
		}
		return repo, pool.Close, nil

	case config.ThemeStoreSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite open: %w", err)
		}
		repo := NewSQLiteThemeRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("theme schema: %w", err)
		}
		return repo, func() { conn.Close() }, nil

	default:
		return NewMemoryThemeRepository(), func() {}, nil
	}
}
