package services

import (
	"context"

	"github.com/cvlm/crm-backend/internal/models"
	"github.com/cvlm/crm-backend/internal/referral"
	"github.com/cvlm/crm-backend/internal/utils"
)

type ReferralService interface {
	// ResolveOwner returns the profile owning the given code, or false.
	// Absence is a regular outcome here, not an error.
	ResolveOwner(ctx context.Context, code string) (*models.Profile, bool)
	// UsageCount recomputes how many requests across the population
	// cite the profile's own code.
	UsageCount(ctx context.Context, profileID string) (int, error)
}

type referralService struct {
	collection *Collection
}

func NewReferralService(collection *Collection) ReferralService {
	return &referralService{collection: collection}
}

func (s *referralService) ResolveOwner(_ context.Context, code string) (*models.Profile, bool) {
	owner := referral.ResolveOwner(code, s.collection.All())
	if owner == nil {
		return nil, false
	}
	return owner, true
}

func (s *referralService) UsageCount(_ context.Context, profileID string) (int, error) {
	const op = "ReferralService.UsageCount"

	p, ok := s.collection.Get(profileID)
	if !ok {
		return 0, utils.E(utils.CodeNotFound, op, "profile not found", nil)
	}
	return referral.CountUsage(p, s.collection.All()), nil
}
