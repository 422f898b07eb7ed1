package models

// ExtractedRecord is the structured result the extraction provider
// produces from a raw text blob. Every field is optional on the wire;
// NewProfile makes construction total over a partial record.
type ExtractedRecord struct {
	FullName     string `json:"full_name"`
	JobTitle     string `json:"job_title"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Nationality  string `json:"nationality"`
	BirthYear    string `json:"birth_year"`
	PortfolioURL string `json:"portfolio_url"`
	Summary      string `json:"summary"`

	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
	Interests      []string `json:"interests"`
	References     []string `json:"references"`

	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`

	// PromoCode is the discount code the prospect cites for the
	// request being placed; OwnPromoCode is the referral code the
	// prospect offers to share.
	PromoCode      string `json:"extracted_promo_code"`
	OwnPromoCode   string `json:"extracted_own_promo_code"`
	RequestDetails string `json:"extracted_request_details"`
}
