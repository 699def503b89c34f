package models

import "time"

// Post is a feed entry. Author is a copy of the user as they were at posting
// time; profile edits do not rewrite it.
type Post struct {
	ID        int       `json:"id"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Shares    int       `json:"shares"`
	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}
