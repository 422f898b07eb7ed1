package referral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvlm/crm-backend/internal/models"
	"github.com/cvlm/crm-backend/internal/referral"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "refcode", referral.Normalize("  RefCode "))
	assert.Equal(t, "", referral.Normalize("   "))
	// idempotent: normalizing a normalized code changes nothing
	assert.Equal(t, referral.Normalize("  RefCode "), referral.Normalize(referral.Normalize("  RefCode ")))
}

func population() []models.Profile {
	return []models.Profile{
		{
			ID:           "x",
			FullName:     "Prospect X",
			OwnPromoCode: "  RefCode ",
			Requests: []models.Request{
				{ID: "x-1", Status: models.StatusPending},
			},
		},
		{
			ID:           "y",
			FullName:     "Prospect Y",
			OwnPromoCode: "",
			Requests: []models.Request{
				{ID: "y-1", Status: models.StatusPending, PromoCode: "refcode"},
			},
		},
	}
}

func TestResolveOwner_NormalizedMatch(t *testing.T) {
	profiles := population()

	owner := referral.ResolveOwner("refcode", profiles)

	require.NotNil(t, owner)
	assert.Equal(t, "x", owner.ID)

	// the same owner resolves regardless of the query's casing and padding
	assert.Equal(t, owner.ID, referral.ResolveOwner(" REFCODE  ", profiles).ID)
}

func TestResolveOwner_BlankCodeNeverMatches(t *testing.T) {
	profiles := population()
	profiles[1].OwnPromoCode = "   "

	assert.Nil(t, referral.ResolveOwner("", profiles))
	assert.Nil(t, referral.ResolveOwner("   ", profiles))
}

func TestResolveOwner_NoMatch(t *testing.T) {
	assert.Nil(t, referral.ResolveOwner("missing", population()))
}

func TestResolveOwner_DuplicateCodesResolveDeterministically(t *testing.T) {
	profiles := []models.Profile{
		{ID: "first", OwnPromoCode: "SHARED"},
		{ID: "second", OwnPromoCode: " shared "},
	}

	for i := 0; i < 10; i++ {
		owner := referral.ResolveOwner("shared", profiles)
		require.NotNil(t, owner)
		assert.Equal(t, "first", owner.ID)
	}
}

func TestCountUsage_AcrossPopulation(t *testing.T) {
	profiles := population()

	assert.Equal(t, 1, referral.CountUsage(profiles[0], profiles))
}

func TestCountUsage_BlankOwnCodeIsZero(t *testing.T) {
	profiles := population()

	assert.Equal(t, 0, referral.CountUsage(profiles[1], profiles))
}

func TestCountUsage_IncludesOwnRequests(t *testing.T) {
	profiles := population()
	profiles[0].Requests[0].PromoCode = " REFCODE"

	assert.Equal(t, 2, referral.CountUsage(profiles[0], profiles))
}
