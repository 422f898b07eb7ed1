package services

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cvlm/crm-backend/internal/models"
	"github.com/cvlm/crm-backend/internal/repositories"
)

// Collection holds the authoritative in-memory profile collection over
// an injected persistence port. Load runs once at startup; every
// mutation snapshots the whole collection through the port. A failed
// save is logged and swallowed: the in-memory state stays
// authoritative and the next successful save recovers it.
type Collection struct {
	mu       sync.RWMutex
	profiles []models.Profile
	store    repositories.ProfileStore
	log      *logrus.Logger
}

func NewCollection(store repositories.ProfileStore, log *logrus.Logger) *Collection {
	return &Collection{profiles: []models.Profile{}, store: store, log: log}
}

// Load restores the last snapshot. Missing or corrupt stored data
// falls back to an empty collection and never fails the caller.
func (c *Collection) Load(ctx context.Context) {
	profiles, err := c.store.Load(ctx)
	if err != nil {
		c.log.WithError(err).Warn("profile store load failed, starting with an empty collection")
		profiles = nil
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	c.mu.Lock()
	c.profiles = profiles
	c.mu.Unlock()
}

// All returns the collection in order, as a copy.
func (c *Collection) All() []models.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Profile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

func (c *Collection) Get(id string) (models.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return models.Profile{}, false
}

// Prepend inserts a profile at the front of the collection, keeping
// the newest-first convention, and snapshots.
func (c *Collection) Prepend(ctx context.Context, p models.Profile) {
	c.mu.Lock()
	c.profiles = append([]models.Profile{p}, c.profiles...)
	c.persistLocked(ctx)
	c.mu.Unlock()
}

// Replace swaps the profile with the same id and snapshots. A missing
// id leaves the collection untouched.
func (c *Collection) Replace(ctx context.Context, p models.Profile) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.profiles {
		if c.profiles[i].ID == p.ID {
			c.profiles[i] = p
			c.persistLocked(ctx)
			return true
		}
	}
	return false
}

func (c *Collection) persistLocked(ctx context.Context) {
	snapshot := make([]models.Profile, len(c.profiles))
	copy(snapshot, c.profiles)

	if err := c.store.Save(ctx, snapshot); err != nil {
		c.log.WithError(err).Warn("profile store save failed, keeping in-memory collection")
	}
}
