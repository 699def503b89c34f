package directory

import (
	"sort"

	"github.com/founderhub/founderhub/internal/models"
)

// Fixed option lists offered by the directory filters.
var (
	FundingSeriesOptions = []string{
		"Pre-seed", "Seed", "Series A", "Series B", "Series C", "Series D+",
		"Bootstrapped", "Not specified",
	}
	CompanySizeOptions = []string{"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"}
	LookingForOptions  = []string{"Funding", "Co-founder", "Mentorship", "Partnerships", "Talent", "Customers"}
)

// Locations returns the distinct countries present in the users' locations,
// sorted alphabetically.
func Locations(users []models.User) []string {
	return distinct(users, models.User.Country)
}

// Industries returns the distinct industries present among users, sorted
// alphabetically.
func Industries(users []models.User) []string {
	return distinct(users, func(u models.User) string { return u.Industry })
}

func distinct(users []models.User, field func(models.User) string) []string {
	seen := make(map[string]struct{}, len(users))
	values := make([]string, 0, len(users))
	for _, u := range users {
		v := field(u)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
