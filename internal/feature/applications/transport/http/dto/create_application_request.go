// Package dto defines data transfer objects for the applications feature's HTTP transport layer.
package dto

// CreateApplicationReq represents the request body for POST /api/applications.
// The resume URL is optional but must be an http(s) URL when present.
type CreateApplicationReq struct {
	ApplicantName  string `json:"applicantName" binding:"required"`
	ApplicantEmail string `json:"applicantEmail" binding:"required,email"`
	JobID          uint   `json:"jobId" binding:"required"`
	ResumeURL      string `json:"resumeUrl" binding:"omitempty,http_url"`
}
