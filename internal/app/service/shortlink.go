package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/eweracs/go-shortlink/internal/storage"
)

// createAttempts bounds the id-collision retry loop per create request.
const createAttempts = 5

// ErrIDExhausted is returned when every candidate id collided.
var ErrIDExhausted = errors.New("could not allocate unique id")

type ShortLinkService struct {
	store  Store
	logger *zap.Logger
}

func NewShortLink(store Store, logger *zap.Logger) *ShortLinkService {
	return &ShortLinkService{
		store:  store,
		logger: logger,
	}
}

// Create persists a new mapping under a freshly drawn short id. A duplicate
// id is an internal retry, not an error; the loop gives up after
// createAttempts candidates.
func (s *ShortLinkService) Create(ctx context.Context, driveID, name string) (*storage.ShortLink, error) {
	for attempt := 1; attempt <= createAttempts; attempt++ {
		shortID, err := NewShortID()
		if err != nil {
			return nil, err
		}

		link, err := s.store.Insert(ctx, storage.ShortLink{
			ShortID: shortID,
			DriveID: driveID,
			Name:    name,
		})
		if errors.Is(err, storage.ErrDuplicateShortID) {
			s.logger.Info("short id collision",
				zap.String("shortID", shortID),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return nil, err
		}

		return link, nil
	}

	return nil, ErrIDExhausted
}

func (s *ShortLinkService) Resolve(ctx context.Context, shortID string) (*storage.ShortLink, error) {
	return s.store.FindByShortID(ctx, shortID)
}

func (s *ShortLinkService) PingContext(ctx context.Context) error {
	return s.store.PingContext(ctx)
}
