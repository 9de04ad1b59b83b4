package models

import "time"

// Project is a portfolio showcase entry.
type Project struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	LiveLink     string    `json:"liveLink,omitempty"`
	RepoLink     string    `json:"repoLink,omitempty"`
	Technologies []string  `json:"technologies"`
	Featured     bool      `json:"featured"`
	SortOrder    int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
