package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvlm/crm-backend/internal/models"
)

var testNow = time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

func TestNewProfile_PartialRecordDefaults(t *testing.T) {
	rec := models.ExtractedRecord{FullName: "Jean Dupont", Email: "jean@mail.com"}

	p := models.NewProfile(rec, "profile-1", "request-1", testNow)

	assert.Equal(t, "profile-1", p.ID)
	assert.Equal(t, "Jean Dupont", p.FullName)
	assert.Equal(t, "jean@mail.com", p.Email)
	assert.Equal(t, testNow, p.CreatedAt)

	assert.Equal(t, []string{}, p.Skills)
	assert.Equal(t, []string{}, p.Certifications)
	assert.Equal(t, []string{}, p.Interests)
	assert.Equal(t, []string{}, p.References)
	assert.Equal(t, []models.Experience{}, p.Experience)
	assert.Equal(t, []models.Education{}, p.Education)

	require.Len(t, p.Requests, 1)
	initial := p.Requests[0]
	assert.Equal(t, "request-1", initial.ID)
	assert.Equal(t, models.StatusPending, initial.Status)
	assert.Equal(t, testNow, initial.Date)
	assert.Equal(t, "", initial.PromoCode)
	assert.Equal(t, "Initial import", initial.Details)
}

func TestNewProfile_CarriesExtractedRequestFields(t *testing.T) {
	rec := models.ExtractedRecord{
		FullName:       "Marie Curie",
		Email:          "marie@mail.com",
		PromoCode:      "WELCOME10",
		OwnPromoCode:   "MARIE2026",
		RequestDetails: "CV redesign",
	}

	p := models.NewProfile(rec, "profile-1", "request-1", testNow)

	assert.Equal(t, "MARIE2026", p.OwnPromoCode)
	require.Len(t, p.Requests, 1)
	assert.Equal(t, "WELCOME10", p.Requests[0].PromoCode)
	assert.Equal(t, "CV redesign", p.Requests[0].Details)
}

func twoRequestProfile() models.Profile {
	return models.Profile{
		ID:       "profile-1",
		FullName: "Jean Dupont",
		Requests: []models.Request{
			{ID: "req-2", Date: testNow, Status: models.StatusPending, Details: "Cover letter"},
			{ID: "req-1", Date: testNow.Add(-time.Hour), Status: models.StatusDelivered, PromoCode: "refcode", Details: "CV redesign"},
		},
	}
}

func TestWithRequestStatus_ReplacesOnlyStatus(t *testing.T) {
	p := twoRequestProfile()

	updated := p.WithRequestStatus("req-2", models.StatusInProgress)

	assert.Equal(t, models.StatusInProgress, updated.Requests[0].Status)
	assert.Equal(t, "Cover letter", updated.Requests[0].Details)
	assert.Equal(t, p.Requests[1], updated.Requests[1])
	// input untouched
	assert.Equal(t, models.StatusPending, p.Requests[0].Status)
}

func TestWithRequestStatus_Idempotent(t *testing.T) {
	p := twoRequestProfile()

	once := p.WithRequestStatus("req-2", models.StatusDelivered)
	twice := once.WithRequestStatus("req-2", models.StatusDelivered)

	assert.Equal(t, once, twice)
}

func TestWithRequestStatus_UnknownIDIsNoOp(t *testing.T) {
	p := twoRequestProfile()

	updated := p.WithRequestStatus("unknown-id", models.StatusDelivered)

	assert.Equal(t, p, updated)
}

func TestWithRequestPromoCode(t *testing.T) {
	p := twoRequestProfile()

	updated := p.WithRequestPromoCode("req-1", "NEWCODE")

	assert.Equal(t, "NEWCODE", updated.Requests[1].PromoCode)
	assert.Equal(t, "refcode", p.Requests[1].PromoCode)
	assert.Equal(t, p, p.WithRequestPromoCode("missing", "x"))
}

func TestWithRequestDetails(t *testing.T) {
	p := twoRequestProfile()

	updated := p.WithRequestDetails("req-2", "Executive cover letter")

	assert.Equal(t, "Executive cover letter", updated.Requests[0].Details)
	assert.Equal(t, models.StatusPending, updated.Requests[0].Status)
	assert.Equal(t, p, p.WithRequestDetails("missing", "x"))
}

func TestWithOwnPromoCode(t *testing.T) {
	p := twoRequestProfile()

	updated := p.WithOwnPromoCode("JEAN2026")

	assert.Equal(t, "JEAN2026", updated.OwnPromoCode)
	assert.Equal(t, "", p.OwnPromoCode)
}

func TestStats(t *testing.T) {
	p := twoRequestProfile()

	stats := p.Stats()

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Delivered)
	require.NotNil(t, stats.Latest)
	// latest is the front of the sequence, not the max-by-date pick
	assert.Equal(t, "req-2", stats.Latest.ID)
}

func TestStats_EmptyRequests(t *testing.T) {
	stats := models.Profile{ID: "profile-1"}.Stats()

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Delivered)
	assert.Nil(t, stats.Latest)
}

func TestRequestStatus_Settable(t *testing.T) {
	assert.True(t, models.StatusPending.Settable())
	assert.True(t, models.StatusInProgress.Settable())
	assert.True(t, models.StatusDelivered.Settable())

	assert.False(t, models.StatusCompleted.Settable())
	assert.False(t, models.StatusCancelled.Settable())
	assert.False(t, models.RequestStatus("ARCHIVED").Settable())
}
