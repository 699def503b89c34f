package models

import "time"

// Business is a derived view over founder users, one entry per distinct
// company name. Fields come from the first founder encountered for that
// company in the source collection's order.
type Business struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Founder       string     `json:"founder"`
	FounderID     int        `json:"founder_id"`
	Industry      string     `json:"industry"`
	FundingSeries string     `json:"funding_series"`
	CompanySize   string     `json:"company_size"`
	Location      string     `json:"location"`
	Website       string     `json:"website"`
	FoundingDate  *time.Time `json:"founding_date,omitempty"`
	LookingFor    []string   `json:"looking_for"`
	Logo          string     `json:"logo"`
}

// Event is a static upcoming-event entry shown on the home feed.
type Event struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
}
