package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/founderhub/founderhub/internal/models"
)

func sampleUsers() []models.User {
	return []models.User{
		{
			ID: 1, Name: "Ada Fontaine", Company: "Acme", Bio: "fintech for small teams",
			Location: "Berlin, Germany", Industry: "Fintech", IsFounder: true,
			FundingSeries: "Seed", CompanySize: "1-10", LookingFor: []string{"Funding", "Talent"},
		},
		{
			ID: 2, Name: "Ben Ortiz", Company: "Beacon Health", Bio: "care coordination",
			Location: "Austin, United States", Industry: "Healthcare", IsFounder: true,
			FundingSeries: "Series A", CompanySize: "11-50", LookingFor: []string{"Partnerships"},
		},
		{
			ID: 3, Name: "Chloe Nguyen", Company: "Acme", Bio: "second acme founder",
			Location: "Lyon, France", Industry: "Fintech", IsFounder: true,
			FundingSeries: "Seed", CompanySize: "1-10", LookingFor: []string{"Mentorship"},
		},
		{
			ID: 4, Name: "Dmitri Walsh", Company: "Zeta Robotics", Bio: "not a founder",
			Location: "Berlin, Germany", Industry: "Software & Tech",
		},
		{
			ID: 5, Name: "Eve Okafor", Company: "Zeta Robotics", Bio: "warehouse automation",
			Location: "Lagos, Nigeria", Industry: "Software & Tech", IsFounder: true,
			FundingSeries: "Bootstrapped", CompanySize: "51-200", LookingFor: []string{"Customers"},
		},
	}
}

func TestFilterFoundersEmptyCriteriaReturnsAllFounders(t *testing.T) {
	users := sampleUsers()

	got := FilterFounders(users, FounderCriteria{})

	require.Len(t, got, 4)
	assert.Equal(t, []int{1, 2, 3, 5}, idsOf(got), "input order preserved, non-founders excluded")
}

func TestFilterFoundersCriteriaAreANDed(t *testing.T) {
	users := sampleUsers()

	got := FilterFounders(users, FounderCriteria{Industry: "Fintech", FundingSeries: "Seed"})
	assert.Equal(t, []int{1, 3}, idsOf(got))

	got = FilterFounders(users, FounderCriteria{Industry: "Fintech", CompanySize: "51-200"})
	assert.Empty(t, got)
}

func TestFilterFoundersQueryMatchesAnyTextField(t *testing.T) {
	users := sampleUsers()

	byName := FilterFounders(users, FounderCriteria{Query: "ada"})
	assert.Equal(t, []int{1}, idsOf(byName))

	byCompany := FilterFounders(users, FounderCriteria{Query: "ACME"})
	assert.Equal(t, []int{1, 3}, idsOf(byCompany), "query is case-insensitive")

	byBio := FilterFounders(users, FounderCriteria{Query: "automation"})
	assert.Equal(t, []int{5}, idsOf(byBio))
}

func TestFilterFoundersLocationIsSubstringMatch(t *testing.T) {
	users := sampleUsers()

	got := FilterFounders(users, FounderCriteria{Location: "Germany"})
	assert.Equal(t, []int{1}, idsOf(got), "non-founder in Berlin is excluded")
}

func TestFilterFoundersLookingForIsMembership(t *testing.T) {
	users := sampleUsers()

	got := FilterFounders(users, FounderCriteria{LookingFor: "Talent"})
	assert.Equal(t, []int{1}, idsOf(got))
}

func TestFilterFoundersIsSubsetPreservingOrder(t *testing.T) {
	users := sampleUsers()

	criteria := []FounderCriteria{
		{},
		{Query: "a"},
		{Industry: "Fintech"},
		{FundingSeries: "Seed", LookingFor: "Mentorship"},
		{Location: "Nowhere"},
	}
	for _, c := range criteria {
		got := FilterFounders(users, c)
		assert.True(t, isOrderedSubset(idsOf(users), idsOf(got)), "criteria %+v must yield an ordered subset", c)
	}
}

func TestDeriveBusinessesFirstFounderWins(t *testing.T) {
	users := sampleUsers()

	got := DeriveBusinesses(users)

	require.Len(t, got, 3, "two Acme founders collapse into one business")
	assert.Equal(t, "Acme", got[0].Name)
	assert.Equal(t, "Ada Fontaine", got[0].Founder, "attributed to the first founder in source order")
	assert.Equal(t, 1, got[0].FounderID)
	assert.Equal(t, "Beacon Health", got[1].Name)
	assert.Equal(t, "Zeta Robotics", got[2].Name)
	assert.Equal(t, "Eve Okafor", got[2].Founder, "non-founder colleague does not claim the company")
}

func TestDeriveBusinessesFillsDisplayDefaults(t *testing.T) {
	users := []models.User{{ID: 1, Name: "Solo", Company: "Stealth", IsFounder: true}}

	got := DeriveBusinesses(users)

	require.Len(t, got, 1)
	assert.Equal(t, "Not specified", got[0].FundingSeries)
	assert.Equal(t, "Unknown", got[0].CompanySize)
	assert.NotNil(t, got[0].LookingFor)
}

func TestFilterBusinessesQueryAndEnums(t *testing.T) {
	businesses := DeriveBusinesses(sampleUsers())

	byFounder := FilterBusinesses(businesses, BusinessCriteria{Query: "okafor"})
	require.Len(t, byFounder, 1)
	assert.Equal(t, "Zeta Robotics", byFounder[0].Name)

	byIndustry := FilterBusinesses(businesses, BusinessCriteria{Query: "fintech"})
	require.Len(t, byIndustry, 1)
	assert.Equal(t, "Acme", byIndustry[0].Name)

	bySize := FilterBusinesses(businesses, BusinessCriteria{CompanySize: "11-50"})
	require.Len(t, bySize, 1)
	assert.Equal(t, "Beacon Health", bySize[0].Name)
}

func TestLocationsAndIndustriesAreDistinctSorted(t *testing.T) {
	users := sampleUsers()

	assert.Equal(t, []string{"France", "Germany", "Nigeria", "United States"}, Locations(users))
	assert.Equal(t, []string{"Fintech", "Healthcare", "Software & Tech"}, Industries(users))
}

func idsOf[T interface{ models.User | models.Business }](items []T) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		switch v := any(item).(type) {
		case models.User:
			ids = append(ids, v.ID)
		case models.Business:
			ids = append(ids, v.ID)
		}
	}
	return ids
}

func isOrderedSubset(source, subset []int) bool {
	i := 0
	for _, id := range source {
		if i < len(subset) && subset[i] == id {
			i++
		}
	}
	return i == len(subset)
}
