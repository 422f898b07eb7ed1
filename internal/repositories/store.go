package repositories

import (
	"context"

	"github.com/cvlm/crm-backend/internal/models"
)

// ProfileStore is the persistence port for the profile collection.
// Granularity is the whole collection: Load restores the last snapshot
// in collection order, Save replaces it. The in-memory collection
// stays authoritative; adapters only snapshot it.
type ProfileStore interface {
	Load(ctx context.Context) ([]models.Profile, error)
	Save(ctx context.Context, profiles []models.Profile) error
}
