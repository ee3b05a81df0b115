// Package entity defines the domain entities for the jobs feature.
package entity

import "time"

// Job represents a posted job opening.
type Job struct {
	// ID is the unique identifier for the job.
	ID uint `gorm:"primaryKey" json:"id"`

	// Title is the position being advertised.
	Title string `gorm:"size:255;not null" json:"title"`

	// Company is the hiring organization.
	Company string `gorm:"size:255;not null" json:"company"`

	// Location is where the position is based.
	Location string `gorm:"size:255;not null" json:"location"`

	// CreatedAt is the timestamp when the job was posted.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the job was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
