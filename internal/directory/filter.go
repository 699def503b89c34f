// Package directory implements the filter/search engine and pagination
// behind the founders and businesses views. Filtering is a pure pass over an
// input snapshot: every call re-runs all predicates from the unfiltered
// source and preserves its order, so results can never drift out of sync
// with the criteria.
package directory

import (
	"slices"
	"strings"

	"github.com/founderhub/founderhub/internal/models"
)

// FounderCriteria is a set of independent predicates ANDed together. An
// empty field matches everything on that dimension.
type FounderCriteria struct {
	Query         string `form:"query"`
	FundingSeries string `form:"funding_series"`
	Industry      string `form:"industry"`
	Location      string `form:"location"`
	CompanySize   string `form:"company_size"`
	LookingFor    string `form:"looking_for"`
}

// BusinessCriteria filters the derived businesses view.
type BusinessCriteria struct {
	Query         string `form:"query"`
	Industry      string `form:"industry"`
	FundingSeries string `form:"funding_series"`
	CompanySize   string `form:"company_size"`
}

// Founders returns the founder subset of users, in input order.
func Founders(users []models.User) []models.User {
	founders := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.IsFounder {
			founders = append(founders, u)
		}
	}
	return founders
}

// FilterFounders returns the founders matching every set criterion. The
// free-text query matches name, company or bio, case-insensitively.
func FilterFounders(users []models.User, c FounderCriteria) []models.User {
	query := strings.ToLower(c.Query)

	results := make([]models.User, 0, len(users))
	for _, u := range users {
		if !u.IsFounder {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(u.Name), query) &&
			!strings.Contains(strings.ToLower(u.Company), query) &&
			!strings.Contains(strings.ToLower(u.Bio), query) {
			continue
		}
		if c.FundingSeries != "" && u.FundingSeries != c.FundingSeries {
			continue
		}
		if c.Industry != "" && u.Industry != c.Industry {
			continue
		}
		if c.Location != "" && !strings.Contains(u.Location, c.Location) {
			continue
		}
		if c.CompanySize != "" && u.CompanySize != c.CompanySize {
			continue
		}
		if c.LookingFor != "" && !slices.Contains(u.LookingFor, c.LookingFor) {
			continue
		}
		results = append(results, u)
	}
	return results
}

// FilterBusinesses returns the businesses matching every set criterion. The
// free-text query matches company name, founder name or industry.
func FilterBusinesses(businesses []models.Business, c BusinessCriteria) []models.Business {
	query := strings.ToLower(c.Query)

	results := make([]models.Business, 0, len(businesses))
	for _, b := range businesses {
		if query != "" &&
			!strings.Contains(strings.ToLower(b.Name), query) &&
			!strings.Contains(strings.ToLower(b.Founder), query) &&
			!strings.Contains(strings.ToLower(b.Industry), query) {
			continue
		}
		if c.Industry != "" && b.Industry != c.Industry {
			continue
		}
		if c.FundingSeries != "" && b.FundingSeries != c.FundingSeries {
			continue
		}
		if c.CompanySize != "" && b.CompanySize != c.CompanySize {
			continue
		}
		results = append(results, b)
	}
	return results
}

// DeriveBusinesses groups founder users into one business per distinct
// company name. The grouping key is exact string equality; when two founders
// share a company name the entry is attributed to whichever appears first in
// the source order.
func DeriveBusinesses(users []models.User) []models.Business {
	seen := make(map[string]struct{})
	businesses := make([]models.Business, 0, len(users))

	for _, u := range users {
		if !u.IsFounder {
			continue
		}
		if _, dup := seen[u.Company]; dup {
			continue
		}
		seen[u.Company] = struct{}{}

		b := models.Business{
			ID:            u.ID,
			Name:          u.Company,
			Founder:       u.Name,
			FounderID:     u.ID,
			Industry:      u.Industry,
			FundingSeries: u.FundingSeries,
			CompanySize:   u.CompanySize,
			Location:      u.Location,
			Website:       u.Website,
			FoundingDate:  u.FoundingDate,
			LookingFor:    u.LookingFor,
			Logo:          u.Avatar,
		}
		if b.FundingSeries == "" {
			b.FundingSeries = "Not specified"
		}
		if b.CompanySize == "" {
			b.CompanySize = "Unknown"
		}
		if b.LookingFor == nil {
			b.LookingFor = []string{}
		}
		businesses = append(businesses, b)
	}
	return businesses
}
