package repository_test

import (
	"context"
	"testing"
	"time"

	"wifi_io_panel/internal/models"
	"wifi_io_panel/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationMemory_AppendFillsDefaults(t *testing.T) {
	repo := repository.NewNotificationMemory(4)
	before := time.Now().UTC()
	require.NoError(t, repo.Append(context.Background(), models.Notification{Level: " success ", Pin: 32}))

	got, err := repo.List(context.Background(), time.Time{}, time.Time{}, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, models.LevelSuccess, got[0].Level)
	assert.False(t, got[0].OccurredAt.Before(before))
}

func TestNotificationMemory_RingOverwritesOldest(t *testing.T) {
	repo := repository.NewNotificationMemory(3)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, models.Notification{
			OccurredAt: base.Add(time.Duration(i) * time.Second),
			Level:      models.LevelSuccess,
			Pin:        i,
		}))
	}

	got, err := repo.List(ctx, time.Time{}, time.Time{}, "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 3, 4}, []int{got[0].Pin, got[1].Pin, got[2].Pin})
}

func TestNotificationMemory_ListFilters(t *testing.T) {
	repo := repository.NewNotificationMemory(10)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, models.Notification{OccurredAt: base, Level: models.LevelSuccess, Pin: 32}))
	require.NoError(t, repo.Append(ctx, models.Notification{OccurredAt: base.Add(time.Minute), Level: models.LevelError, Pin: 33}))
	require.NoError(t, repo.Append(ctx, models.Notification{OccurredAt: base.Add(2 * time.Minute), Level: models.LevelSuccess, Pin: 25}))

	got, err := repo.List(ctx, base.Add(30*time.Second), time.Time{}, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.List(ctx, time.Time{}, base.Add(time.Minute), "success")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 32, got[0].Pin)

	got, err = repo.List(ctx, time.Time{}, time.Time{}, models.LevelError)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 33, got[0].Pin)
}

func TestNotificationMemory_CanceledContext(t *testing.T) {
	repo := repository.NewNotificationMemory(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, repo.Append(ctx, models.Notification{}))
	_, err := repo.List(ctx, time.Time{}, time.Time{}, "")
	assert.Error(t, err)
}
