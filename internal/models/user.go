package models

import (
	"strings"
	"time"
)

// User is a member of the network. Founder-only fields (FoundingDate,
// FundingSeries, CompanySize, LookingFor) are set if and only if IsFounder
// is true.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio"`
	Location  string    `json:"location"` // "City, Country"
	Website   string    `json:"website"`
	JoinDate  time.Time `json:"join_date"`
	Followers int       `json:"followers"`
	Following int       `json:"following"`
	Industry  string    `json:"industry"`
	Skills    []string  `json:"skills"`

	IsFounder     bool       `json:"is_founder"`
	FoundingDate  *time.Time `json:"founding_date,omitempty"`
	FundingSeries string     `json:"funding_series,omitempty"`
	CompanySize   string     `json:"company_size,omitempty"`
	LookingFor    []string   `json:"looking_for,omitempty"`
}

// Country returns the country part of the "City, Country" location string.
func (u User) Country() string {
	if _, country, ok := strings.Cut(u.Location, ", "); ok {
		return country
	}
	return u.Location
}

// ProfileUpdate carries the fields the profile editor may change. Nil fields
// are left untouched by the merge.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Company  *string `json:"company,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}
