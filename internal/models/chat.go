package models

import "time"

// ChatGroup is a topic room. Messages are ordered oldest first and only ever
// grow by append.
type ChatGroup struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Members     int       `json:"members"`
	Image       string    `json:"image"`
	Messages    []Message `json:"messages"`
}

// Message ids are sequential within their group, not globally unique.
type Message struct {
	ID        int       `json:"id"`
	Sender    User      `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
