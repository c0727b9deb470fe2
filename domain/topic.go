package domain

import "time"

type TopicID string

type Topic struct {
	ID        TopicID   `json:"id"`
	Title     string    `json:"title"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
