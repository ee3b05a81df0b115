// Package dto defines data transfer objects for the jobs feature's HTTP transport layer.
package dto

// CreateJobReq represents the request body for POST /api/jobs.
// All three fields must be present and non-empty.
type CreateJobReq struct {
	Title    string `json:"title" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Location string `json:"location" binding:"required"`
}
