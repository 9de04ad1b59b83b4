package models

import "time"

// Resume is an uploaded resume PDF. At most one resume is active at a time;
// the active one is what the public site serves.
type Resume struct {
	ID        string    `json:"_id"`
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
