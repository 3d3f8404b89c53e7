package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/eweracs/go-shortlink/internal/storage"
)

// InitSQLite opens the embedded database file, creating it if needed.
// The pool is capped at one connection; sqlite serializes writers anyway.
func InitSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

type SQLiteRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateSQLiteRepository(db *sql.DB, logger *zap.Logger) (*SQLiteRepository, error) {
	createTable := `
		CREATE TABLE IF NOT EXISTS short_links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		short_id TEXT UNIQUE NOT NULL,
		drive_id TEXT NOT NULL,
		name TEXT,
		created_at TIMESTAMP NOT NULL
	);`

	if _, err := db.Exec(createTable); err != nil {
		return nil, err
	}

	return &SQLiteRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, link storage.ShortLink) (*storage.ShortLink, error) {
	link.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO short_links(short_id, drive_id, name, created_at) VALUES (?, ?, ?, ?);",
		link.ShortID, link.DriveID, toNullString(link.Name), link.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicateShortID
		}
		r.logger.Error("insert failed", zap.Error(err))
		return nil, err
	}

	return &link, nil
}

func (r *SQLiteRepository) FindByShortID(ctx context.Context, shortID string) (*storage.ShortLink, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT short_id, drive_id, name, created_at FROM short_links WHERE short_id = ?;",
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

func (r *SQLiteRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM short_links WHERE created_at < ?;",
		cutoff,
	)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *SQLiteRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	return errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
