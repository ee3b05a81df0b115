package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bindTarget mirrors the binding tags used by the application DTOs.
type bindTarget struct {
	ApplicantName  string `json:"applicantName" binding:"required"`
	ApplicantEmail string `json:"applicantEmail" binding:"required,email"`
	JobID          uint   `json:"jobId" binding:"required"`
	ResumeURL      string `json:"resumeUrl" binding:"omitempty,http_url"`
}

// bindJSON runs a payload through Gin's JSON binding and returns the error.
func bindJSON(t *testing.T, payload string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	var target bindTarget
	return c.ShouldBindJSON(&target)
}

func TestFieldErrors_ValidatorFailures(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected []FieldError
	}{
		{
			name:    "all required fields missing",
			payload: `{}`,
			expected: []FieldError{
				{Field: "applicantName", Message: "applicantName is required"},
				{Field: "applicantEmail", Message: "applicantEmail is required"},
				{Field: "jobId", Message: "jobId is required"},
			},
		},
		{
			name:    "invalid email shape",
			payload: `{"applicantName":"Jane","applicantEmail":"not-an-email","jobId":1}`,
			expected: []FieldError{
				{Field: "applicantEmail", Message: "Invalid email"},
			},
		},
		{
			// jobId and resumeUrl would come back as jobID/resumeURL if the
			// struct field name leaked instead of the json tag.
			name:    "mixed-case keys keep their json spelling",
			payload: `{"resumeUrl":"ftp://cv.pdf"}`,
			expected: []FieldError{
				{Field: "applicantName", Message: "applicantName is required"},
				{Field: "applicantEmail", Message: "applicantEmail is required"},
				{Field: "jobId", Message: "jobId is required"},
				{Field: "resumeUrl", Message: "Invalid URL"},
			},
		},
		{
			name:    "non-http resume URL",
			payload: `{"applicantName":"Jane","applicantEmail":"jane@example.com","jobId":1,"resumeUrl":"ftp://cv.pdf"}`,
			expected: []FieldError{
				{Field: "resumeUrl", Message: "Invalid URL"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bindJSON(t, tt.payload)
			require.Error(t, err)

			assert.Equal(t, tt.expected, FieldErrors(err))
		})
	}
}

func TestFieldErrors_TypeMismatch(t *testing.T) {
	err := bindJSON(t, `{"applicantName":"Jane","applicantEmail":"jane@example.com","jobId":"abc"}`)
	require.Error(t, err)

	errs := FieldErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "jobId", errs[0].Field)
	assert.Equal(t, "jobId is malformed", errs[0].Message)
}

func TestFieldErrors_UnparsableBody(t *testing.T) {
	err := bindJSON(t, `not json`)
	require.Error(t, err)

	errs := FieldErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "body", errs[0].Field)
}
