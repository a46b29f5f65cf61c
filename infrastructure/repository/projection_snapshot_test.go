package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-projection-api/internal/domain"
)

func TestProjectionSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectionSnapshotRepository(newTestConnection(t))

	base := time.Date(2025, 10, 1, 2, 0, 0, 0, time.UTC)
	for i, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, repo.SaveSnapshot(ctx, &domain.ProjectionSnapshot{
			ID:           id,
			TakenAt:      base.AddDate(0, 0, i),
			BrandCount:   6,
			TotalRevenue: float64(1000 * (i + 1)),
			PeakMonth:    "Sep 2026",
		}))
	}

	snapshots, err := repo.ListSnapshots(ctx, 2)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "s3", snapshots[0].ID)
	assert.Equal(t, "s2", snapshots[1].ID)
	assert.Equal(t, 3000.0, snapshots[0].TotalRevenue)
	assert.True(t, base.AddDate(0, 0, 2).Equal(snapshots[0].TakenAt))

	all, err := repo.ListSnapshots(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
