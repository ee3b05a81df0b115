// Package entity defines the domain entities for the applications feature.
package entity

import "time"

// Application represents a submitted job application. The referenced job is
// not owned: deleting a job (no such operation exists) would not cascade.
type Application struct {
	// ID is the unique identifier for the application.
	ID uint `gorm:"primaryKey" json:"id"`

	// ApplicantName is the applicant's full name.
	ApplicantName string `gorm:"size:255;not null" json:"applicantName"`

	// ApplicantEmail is the applicant's contact address. Together with JobID
	// it identifies a submission; the same pair may only apply once.
	ApplicantEmail string `gorm:"size:255;not null;index:idx_applicant_job" json:"applicantEmail"`

	// JobID references the job being applied for.
	JobID uint `gorm:"not null;index:idx_applicant_job" json:"jobId"`

	// ResumeURL optionally points at the applicant's resume.
	ResumeURL string `gorm:"size:512" json:"resumeUrl,omitempty"`

	// CreatedAt is the timestamp when the application was submitted.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the application was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
