package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvlm/crm-backend/internal/models"
	"github.com/cvlm/crm-backend/internal/services"
	"github.com/cvlm/crm-backend/internal/utils"
)

func referralCollection(t *testing.T) *services.Collection {
	t.Helper()
	store := &stubStore{profiles: []models.Profile{
		{
			ID:           "x",
			FullName:     "Prospect X",
			OwnPromoCode: "  RefCode ",
		},
		{
			ID:       "y",
			FullName: "Prospect Y",
			Requests: []models.Request{
				{ID: "y-1", Status: models.StatusPending, PromoCode: "refcode"},
			},
		},
	}}
	collection := services.NewCollection(store, quietLogger())
	collection.Load(context.Background())
	return collection
}

func TestResolveOwner(t *testing.T) {
	svc := services.NewReferralService(referralCollection(t))

	owner, ok := svc.ResolveOwner(context.Background(), "refcode")
	require.True(t, ok)
	assert.Equal(t, "x", owner.ID)

	_, ok = svc.ResolveOwner(context.Background(), "missing")
	assert.False(t, ok)

	_, ok = svc.ResolveOwner(context.Background(), "   ")
	assert.False(t, ok)
}

func TestUsageCount(t *testing.T) {
	svc := services.NewReferralService(referralCollection(t))

	count, err := svc.UsageCount(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// no own code, no usage
	count, err = svc.UsageCount(context.Background(), "y")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUsageCount_UnknownProfile(t *testing.T) {
	svc := services.NewReferralService(referralCollection(t))

	_, err := svc.UsageCount(context.Background(), "missing")

	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
