// Package repository provides the relational short-link stores: a pooled
// Postgres client and an embedded SQLite database behind the same
// operations. Both create their schema idempotently at construction.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/eweracs/go-shortlink/internal/storage"
)

const pingTimeout = 5 * time.Second

// InitPostgres opens a pooled connection and verifies it is reachable.
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

type PostgresRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// CreatePostgresRepository ensures the short_links table exists and returns
// a store backed by the given pool.
func CreatePostgresRepository(db *sql.DB, logger *zap.Logger) (*PostgresRepository, error) {
	createTable := `
		CREATE TABLE IF NOT EXISTS short_links (
		id SERIAL PRIMARY KEY,
		short_id VARCHAR(6) UNIQUE NOT NULL,
		drive_id TEXT NOT NULL,
		name TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`

	if _, err := db.Exec(createTable); err != nil {
		return nil, err
	}

	return &PostgresRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, link storage.ShortLink) (*storage.ShortLink, error) {
	row := r.db.QueryRowContext(ctx,
		"INSERT INTO short_links(short_id, drive_id, name) VALUES ($1, $2, $3) RETURNING short_id, drive_id, name, created_at;",
		link.ShortID, link.DriveID, toNullString(link.Name),
	)

	inserted, err := scanShortLink(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, storage.ErrDuplicateShortID
		}
		r.logger.Error("insert failed", zap.Error(err))
		return nil, err
	}

	return inserted, nil
}

func (r *PostgresRepository) FindByShortID(ctx context.Context, shortID string) (*storage.ShortLink, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT short_id, drive_id, name, created_at FROM short_links WHERE short_id = $1;",
		shortID,
	)

	link, err := scanShortLink(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		r.logger.Error("lookup failed", zap.String("shortID", shortID), zap.Error(err))
		return nil, err
	}

	return link, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM short_links WHERE created_at < $1;",
		cutoff,
	)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *PostgresRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func scanShortLink(row *sql.Row) (*storage.ShortLink, error) {
	var link storage.ShortLink
	var name sql.NullString

	if err := row.Scan(&link.ShortID, &link.DriveID, &name, &link.CreatedAt); err != nil {
		return nil, err
	}

	link.Name = name.String
	return &link, nil
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
