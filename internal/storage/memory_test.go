package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryInsertAndFind(t *testing.T) {
	m, err := CreateMemoryStorage()
	require.NoError(t, err)

	ctx := context.Background()

	link, err := m.Insert(ctx, ShortLink{ShortID: "abc123", DriveID: "drive-1", Name: "report"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", link.ShortID)
	assert.False(t, link.CreatedAt.IsZero())

	found, err := m.FindByShortID(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "drive-1", found.DriveID)
	assert.Equal(t, "report", found.Name)
}

func TestMemoryFindMissing(t *testing.T) {
	m, _ := CreateMemoryStorage()

	_, err := m.FindByShortID(context.Background(), "nosuch")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDuplicateShortID(t *testing.T) {
	m, _ := CreateMemoryStorage()
	ctx := context.Background()

	_, err := m.Insert(ctx, ShortLink{ShortID: "abc123", DriveID: "drive-1"})
	require.NoError(t, err)

	_, err = m.Insert(ctx, ShortLink{ShortID: "abc123", DriveID: "drive-2"})
	assert.ErrorIs(t, err, ErrDuplicateShortID)

	// the original row is untouched
	found, err := m.FindByShortID(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "drive-1", found.DriveID)
}

func TestMemoryDeleteExpired(t *testing.T) {
	m, _ := CreateMemoryStorage()
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	_, err := m.Insert(ctx, ShortLink{ShortID: "old111", DriveID: "drive-1", CreatedAt: old})
	require.NoError(t, err)
	_, err = m.Insert(ctx, ShortLink{ShortID: "new111", DriveID: "drive-2"})
	require.NoError(t, err)

	deleted, err := m.DeleteExpired(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = m.FindByShortID(ctx, "old111")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.FindByShortID(ctx, "new111")
	assert.NoError(t, err)
}
