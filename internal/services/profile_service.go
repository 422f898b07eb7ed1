package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cvlm/crm-backend/internal/models"
	"github.com/cvlm/crm-backend/internal/providers/extractor"
	"github.com/cvlm/crm-backend/internal/utils"
)

type ProfileService interface {
	// Import extracts a structured record from raw text and creates a
	// profile with its initial PENDING request at the front of the
	// collection. Nothing is created when extraction fails.
	Import(ctx context.Context, rawText string) (*models.Profile, error)
	List(ctx context.Context) []models.Profile
	Get(ctx context.Context, id string) (*models.Profile, error)
	SetOwnPromoCode(ctx context.Context, id, code string) (*models.Profile, error)
	SetRequestStatus(ctx context.Context, id, requestID string, status models.RequestStatus) (*models.Profile, error)
	SetRequestPromoCode(ctx context.Context, id, requestID, code string) (*models.Profile, error)
	SetRequestDetails(ctx context.Context, id, requestID, details string) (*models.Profile, error)
}

type profileService struct {
	collection *Collection
	extractor  extractor.Extractor
	log        *logrus.Logger
}

func NewProfileService(collection *Collection, ext extractor.Extractor, log *logrus.Logger) ProfileService {
	return &profileService{collection: collection, extractor: ext, log: log}
}

func (s *profileService) Import(ctx context.Context, rawText string) (*models.Profile, error) {
	const op = "ProfileService.Import"

	// rejected before any collaborator call
	if strings.TrimSpace(rawText) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "raw text is required", nil)
	}

	rec, err := s.extractor.Extract(ctx, rawText)
	if err != nil {
		return nil, err
	}

	p := models.NewProfile(*rec, uuid.NewString(), uuid.NewString(), time.Now().UTC())
	s.collection.Prepend(ctx, p)

	s.log.WithFields(logrus.Fields{
		"profile_id": p.ID,
		"full_name":  p.FullName,
	}).Info("prospect imported")

	return &p, nil
}

func (s *profileService) List(_ context.Context) []models.Profile {
	return s.collection.All()
}

func (s *profileService) Get(_ context.Context, id string) (*models.Profile, error) {
	const op = "ProfileService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "profile id is required", nil)
	}
	p, ok := s.collection.Get(id)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "profile not found", nil)
	}
	return &p, nil
}

func (s *profileService) SetOwnPromoCode(ctx context.Context, id, code string) (*models.Profile, error) {
	const op = "ProfileService.SetOwnPromoCode"

	return s.replace(ctx, op, id, func(p models.Profile) models.Profile {
		return p.WithOwnPromoCode(code)
	})
}

func (s *profileService) SetRequestStatus(ctx context.Context, id, requestID string, status models.RequestStatus) (*models.Profile, error) {
	const op = "ProfileService.SetRequestStatus"

	if !status.Settable() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "status must be one of PENDING, IN_PROGRESS, DELIVERED", nil)
	}
	return s.replace(ctx, op, id, func(p models.Profile) models.Profile {
		return p.WithRequestStatus(requestID, status)
	})
}

func (s *profileService) SetRequestPromoCode(ctx context.Context, id, requestID, code string) (*models.Profile, error) {
	const op = "ProfileService.SetRequestPromoCode"

	return s.replace(ctx, op, id, func(p models.Profile) models.Profile {
		return p.WithRequestPromoCode(requestID, code)
	})
}

func (s *profileService) SetRequestDetails(ctx context.Context, id, requestID, details string) (*models.Profile, error) {
	const op = "ProfileService.SetRequestDetails"

	return s.replace(ctx, op, id, func(p models.Profile) models.Profile {
		return p.WithRequestDetails(requestID, details)
	})
}

// replace applies a copy-on-write mutation to one profile and swaps it
// into the collection. An unknown request id inside the mutation is a
// silent no-op by contract; only an unknown profile id is an error.
func (s *profileService) replace(ctx context.Context, op, id string, mutate func(models.Profile) models.Profile) (*models.Profile, error) {
	p, ok := s.collection.Get(id)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "profile not found", nil)
	}

	updated := mutate(p)
	s.collection.Replace(ctx, updated)
	return &updated, nil
}
