package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-projection-api/internal/domain"
)

func TestBrandRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewBrandRepository(newTestConnection(t))

	created, err := repo.CreateBrand(ctx, &domain.Brand{
		ID:                "brand1",
		Name:              "Crush",
		Category:          "Premium Food",
		StartingSales:     60000,
		MonthlyGrowthRate: 15.5,
		StartingMonth:     2,
		HasLaunchPlan:     true,
		LaunchPlanFee:     3000,
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.GetBrandByID(ctx, "brand1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Crush", found.Name)
	assert.Equal(t, "Premium Food", found.Category)
	assert.Equal(t, 60000.0, found.StartingSales)
	assert.Equal(t, 15.5, found.MonthlyGrowthRate)
	assert.Equal(t, 2, found.StartingMonth)
	assert.True(t, found.HasLaunchPlan)
	assert.Equal(t, 3000.0, found.LaunchPlanFee)
	assert.True(t, created.CreatedAt.Equal(found.CreatedAt))

	missing, err := repo.GetBrandByID(ctx, "nao-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBrandRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewBrandRepository(newTestConnection(t))

	brands := []*domain.Brand{
		{ID: "z", Name: "Primeira", Category: "A"},
		{ID: "a", Name: "Segunda", Category: "B"},
		{ID: "m", Name: "Terceira", Category: "C"},
	}
	_, err := repo.ReplaceBrands(ctx, brands)
	require.NoError(t, err)

	listed, err := repo.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Primeira", listed[0].Name)
	assert.Equal(t, "Segunda", listed[1].Name)
	assert.Equal(t, "Terceira", listed[2].Name)

	count, err := repo.CountBrands(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestBrandRepository_ReplaceBrandsDropsPrevious(t *testing.T) {
	ctx := context.Background()
	repo := NewBrandRepository(newTestConnection(t))

	_, err := repo.CreateBrand(ctx, &domain.Brand{ID: "old", Name: "Antiga", Category: "X"})
	require.NoError(t, err)

	_, err = repo.ReplaceBrands(ctx, []*domain.Brand{{ID: "new", Name: "Nova", Category: "Y"}})
	require.NoError(t, err)

	listed, err := repo.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "new", listed[0].ID)
}

func TestBrandRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewBrandRepository(newTestConnection(t))

	brand, err := repo.CreateBrand(ctx, &domain.Brand{ID: "b1", Name: "Milaf", Category: "Traditional Goods", StartingSales: 10000})
	require.NoError(t, err)

	brand.StartingSales = 12000
	brand.HasLaunchPlan = true
	_, err = repo.UpdateBrand(ctx, brand)
	require.NoError(t, err)

	found, err := repo.GetBrandByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 12000.0, found.StartingSales)
	assert.True(t, found.HasLaunchPlan)

	_, err = repo.UpdateBrand(ctx, &domain.Brand{ID: "ghost", Name: "x", Category: "y"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.DeleteBrand(ctx, "b1"))
	assert.ErrorIs(t, repo.DeleteBrand(ctx, "b1"), ErrNotFound)

	listed, err := repo.ListBrands(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
