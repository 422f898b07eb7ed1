package models

import "time"

type Experience struct {
	Role        string `json:"role" bson:"role"`
	Company     string `json:"company" bson:"company"`
	Duration    string `json:"duration" bson:"duration"`
	Description string `json:"description" bson:"description"`
}

type Education struct {
	Institution string `json:"institution" bson:"institution"`
	Degree      string `json:"degree" bson:"degree"`
	Year        string `json:"year" bson:"year"`
}

// Profile is a tracked prospect. Requests holds its service orders,
// newest first: new requests are inserted at the front, and "latest
// request" everywhere means Requests[0].
type Profile struct {
	ID           string `json:"id" bson:"id"`
	FullName     string `json:"full_name" bson:"full_name"`
	JobTitle     string `json:"job_title" bson:"job_title"`
	Email        string `json:"email" bson:"email"`
	Phone        string `json:"phone" bson:"phone"`
	Location     string `json:"location" bson:"location"`
	Nationality  string `json:"nationality" bson:"nationality"`
	BirthYear    string `json:"birth_year" bson:"birth_year"`
	PortfolioURL string `json:"portfolio_url" bson:"portfolio_url"`
	Summary      string `json:"summary" bson:"summary"`

	Skills         []string `json:"skills" bson:"skills"`
	Certifications []string `json:"certifications" bson:"certifications"`
	Interests      []string `json:"interests" bson:"interests"`
	References     []string `json:"references" bson:"references"`

	Experience []Experience `json:"experience" bson:"experience"`
	Education  []Education  `json:"education" bson:"education"`

	Requests []Request `json:"requests" bson:"requests"`

	// OwnPromoCode is the referral code this prospect shares with
	// others; other prospects cite it on their requests.
	OwnPromoCode string `json:"own_promo_code" bson:"own_promo_code"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NewProfile builds a Profile from an extraction result. Construction
// is total: every absent string becomes "", every absent sequence an
// empty non-nil slice, and exactly one initial PENDING request is
// attached carrying the cited code and details from the extraction.
func NewProfile(rec ExtractedRecord, id, requestID string, now time.Time) Profile {
	details := rec.RequestDetails
	if details == "" {
		details = "Initial import"
	}

	initial := Request{
		ID:        requestID,
		Date:      now,
		Status:    StatusPending,
		PromoCode: rec.PromoCode,
		Details:   details,
	}

	return Profile{
		ID:             id,
		FullName:       rec.FullName,
		JobTitle:       rec.JobTitle,
		Email:          rec.Email,
		Phone:          rec.Phone,
		Location:       rec.Location,
		Nationality:    rec.Nationality,
		BirthYear:      rec.BirthYear,
		PortfolioURL:   rec.PortfolioURL,
		Summary:        rec.Summary,
		Skills:         orEmpty(rec.Skills),
		Certifications: orEmpty(rec.Certifications),
		Interests:      orEmpty(rec.Interests),
		References:     orEmpty(rec.References),
		Experience:     orEmptyExperience(rec.Experience),
		Education:      orEmptyEducation(rec.Education),
		Requests:       []Request{initial},
		OwnPromoCode:   rec.OwnPromoCode,
		CreatedAt:      now,
	}
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func orEmptyExperience(in []Experience) []Experience {
	if in == nil {
		return []Experience{}
	}
	return in
}

func orEmptyEducation(in []Education) []Education {
	if in == nil {
		return []Education{}
	}
	return in
}

// WithOwnPromoCode returns a copy of the profile with its referral
// code replaced.
func (p Profile) WithOwnPromoCode(code string) Profile {
	p.OwnPromoCode = code
	return p
}

// WithRequestStatus returns a copy of the profile with the status of
// the identified request replaced. An unknown request id is a no-op:
// the profile comes back unchanged, never an error.
func (p Profile) WithRequestStatus(requestID string, status RequestStatus) Profile {
	return p.withRequest(requestID, func(r *Request) { r.Status = status })
}

// WithRequestPromoCode replaces the cited code of one request by id,
// with the same no-op-on-miss contract as WithRequestStatus.
func (p Profile) WithRequestPromoCode(requestID, code string) Profile {
	return p.withRequest(requestID, func(r *Request) { r.PromoCode = code })
}

// WithRequestDetails replaces the details of one request by id, with
// the same no-op-on-miss contract as WithRequestStatus.
func (p Profile) WithRequestDetails(requestID, details string) Profile {
	return p.withRequest(requestID, func(r *Request) { r.Details = details })
}

func (p Profile) withRequest(requestID string, mutate func(*Request)) Profile {
	for i := range p.Requests {
		if p.Requests[i].ID != requestID {
			continue
		}
		requests := make([]Request, len(p.Requests))
		copy(requests, p.Requests)
		mutate(&requests[i])
		p.Requests = requests
		return p
	}
	return p
}

// RequestStats are the derived per-profile request figures.
type RequestStats struct {
	Total     int      `json:"total"`
	Delivered int      `json:"delivered"`
	Latest    *Request `json:"latest,omitempty"`
}

// Stats derives the request statistics. Latest is the front of the
// Requests sequence, not a date-sorted pick; an empty sequence yields
// zero counts and a nil Latest.
func (p Profile) Stats() RequestStats {
	stats := RequestStats{Total: len(p.Requests)}
	for _, r := range p.Requests {
		if r.Status == StatusDelivered {
			stats.Delivered++
		}
	}
	if len(p.Requests) > 0 {
		latest := p.Requests[0]
		stats.Latest = &latest
	}
	return stats
}
