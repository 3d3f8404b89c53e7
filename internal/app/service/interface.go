package service

import (
	"context"
	"time"

	"github.com/eweracs/go-shortlink/internal/storage"
)

//go:generate mockgen -destination=../../mocks/mock_service.go -package=mocks github.com/eweracs/go-shortlink/internal/app/service ShortLinkIface

// Store is the capability the service needs from a storage driver.
// Implementations enforce short_id uniqueness via their own constraint.
type Store interface {
	Insert(context.Context, storage.ShortLink) (*storage.ShortLink, error)
	FindByShortID(context.Context, string) (*storage.ShortLink, error)
	DeleteExpired(context.Context, time.Time) (int64, error)
	PingContext(context.Context) error
}

// ShortLinkIface is the handler-facing surface of the service.
type ShortLinkIface interface {
	Create(ctx context.Context, driveID, name string) (*storage.ShortLink, error)
	Resolve(ctx context.Context, shortID string) (*storage.ShortLink, error)
	PingContext(ctx context.Context) error
}
