// Package referral resolves the promo-code economy across the profile
// collection: linking a cited code back to its owning profile and
// counting how often a profile's own code has been used.
package referral

import (
	"strings"

	"github.com/cvlm/crm-backend/internal/models"
)

// Normalize is the single comparison rule for promo codes: trimmed and
// lower-cased. Two codes are the same code iff their normalized forms
// are equal.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// ResolveOwner returns the profile whose OwnPromoCode matches the given
// code, or nil. A blank normalized code never matches. When several
// profiles share a normalized code the first one in collection order
// wins, so repeated calls always resolve the same owner.
func ResolveOwner(code string, profiles []models.Profile) *models.Profile {
	normalized := Normalize(code)
	if normalized == "" {
		return nil
	}
	for i := range profiles {
		if Normalize(profiles[i].OwnPromoCode) == normalized {
			owner := profiles[i]
			return &owner
		}
	}
	return nil
}

// CountUsage counts the requests across the whole population, the
// profile's own included, that cite the profile's own code. The result
// is recomputed on every call; codes and requests mutate independently,
// so nothing here is cached.
func CountUsage(profile models.Profile, profiles []models.Profile) int {
	own := Normalize(profile.OwnPromoCode)
	if own == "" {
		return 0
	}
	count := 0
	for _, p := range profiles {
		for _, r := range p.Requests {
			if Normalize(r.PromoCode) == own {
				count++
			}
		}
	}
	return count
}
