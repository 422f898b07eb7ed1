// Package export serializes the profile collection to a flat CSV form.
//
// The escape rule is fixed by the export contract and is narrower than
// encoding/csv (a semicolon also forces quoting), so the writer is
// implemented here instead of on top of csv.Writer.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cvlm/crm-backend/internal/models"
)

// Header is the canonical column set, in order. The nested request,
// experience and education sequences are embedded as JSON so those
// columns round-trip.
var Header = []string{
	"ID",
	"Full Name",
	"Email",
	"Phone",
	"Job Title",
	"Location",
	"Referral Code",
	"Created At",
	"Requests (JSON)",
	"Experience (JSON)",
	"Education (JSON)",
	"Summary",
}

// Filename returns the dated export artifact name.
func Filename(now time.Time) string {
	return fmt.Sprintf("cvlm_crm_export_%s.csv", now.UTC().Format("2006-01-02"))
}

// Marshal renders the collection as one header row plus one row per
// profile, newline-joined, in collection order.
func Marshal(profiles []models.Profile) ([]byte, error) {
	rows := make([]string, 0, len(profiles)+1)
	rows = append(rows, joinRow(Header))

	for _, p := range profiles {
		requests, err := json.Marshal(orEmptyRequests(p.Requests))
		if err != nil {
			return nil, err
		}
		experience, err := json.Marshal(orEmptyExperience(p.Experience))
		if err != nil {
			return nil, err
		}
		education, err := json.Marshal(orEmptyEducation(p.Education))
		if err != nil {
			return nil, err
		}

		rows = append(rows, joinRow([]string{
			p.ID,
			p.FullName,
			p.Email,
			p.Phone,
			p.JobTitle,
			p.Location,
			p.OwnPromoCode,
			formatTime(p.CreatedAt),
			string(requests),
			string(experience),
			string(education),
			p.Summary,
		}))
	}

	return []byte(strings.Join(rows, "\n")), nil
}

func joinRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escape(f)
	}
	return strings.Join(escaped, ",")
}

// escape wraps a field in double quotes, doubling internal quotes,
// whenever it contains a quote, comma, newline or semicolon.
func escape(field string) string {
	if strings.ContainsAny(field, "\",\n;") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func orEmptyRequests(in []models.Request) []models.Request {
	if in == nil {
		return []models.Request{}
	}
	return in
}

func orEmptyExperience(in []models.Experience) []models.Experience {
	if in == nil {
		return []models.Experience{}
	}
	return in
}

func orEmptyEducation(in []models.Education) []models.Education {
	if in == nil {
		return []models.Education{}
	}
	return in
}
