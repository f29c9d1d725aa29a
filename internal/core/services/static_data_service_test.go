package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeStaticData_SeedsAdminOnce(t *testing.T) {
	store := newMemStore()
	tokens := services.NewTokenService(testAuthConfig())
	admins := services.NewAdminAuthService(store, tokens)
	seed := services.SeedAdmin{Name: "Administrator", Email: "Admin@Example.com", Password: "change-me-now"}
	svc := services.NewStaticDataService(store, admins, seed)
	ctx := context.Background()

	require.NoError(t, svc.InitializeStaticData(ctx))
	require.NoError(t, svc.InitializeStaticData(ctx))

	require.Len(t, store.admins, 1)
	admin, err := store.FindAdminByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, services.SystemActor, admin.CreatedBy)
	assert.True(t, admin.IsActive)
}

func TestInitializeStaticData_NoSeedConfigured(t *testing.T) {
	store := newMemStore()
	admins := services.NewAdminAuthService(store, services.NewTokenService(testAuthConfig()))

	err := services.NewStaticDataService(store, admins, services.SeedAdmin{}).InitializeStaticData(context.Background())

	require.NoError(t, err)
	assert.Empty(t, store.admins)
}

func TestBaseService_NowIsUTC(t *testing.T) {
	local := time.FixedZone("IST", 5*3600+1800)
	base := services.BaseService{Clock: func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, local) }}

	now := base.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, 3, now.Hour())
}
