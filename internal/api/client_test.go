// internal/api/client_test.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobswipe-client/internal/common/config"
	"jobswipe-client/internal/common/errors"
	"jobswipe-client/internal/common/logger"
	"jobswipe-client/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestClient(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.APIConfig{
		BaseURL:        server.URL,
		Timeout:        2000,
		ProfileTimeout: 500,
		UploadTimeout:  2000,
	}, logger.NewTestLogger(t))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func createTestRequest() models.ApplicationRequest {
	return models.ApplicationRequest{
		JobID: 42,
		UserInfo: models.ApplicantProfile{
			UserID: "test-user",
			Name:   "Alex Morgan",
			Email:  "alex.morgan@example.com",
		},
	}
}

// ==========================
// Apply Tests
// ==========================

func TestClient_Apply(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		checkResult func(t *testing.T, resp *ApplyResponse)
		checkErr    func(t *testing.T, err error)
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"status":"success","message":"Application submitted successfully!"}`,
			checkResult: func(t *testing.T, resp *ApplyResponse) {
				assert.Equal(t, "success", resp.Status)
				assert.Equal(t, "Application submitted successfully!", resp.Message)
				assert.Empty(t, resp.Errors)
			},
		},
		{
			name:   "structured field errors",
			status: http.StatusOK,
			body:   `{"status":"error","errors":[{"error_type":"missing_field","field_name":"gpa","error_message":"GPA is required"}]}`,
			checkResult: func(t *testing.T, resp *ApplyResponse) {
				require.Len(t, resp.Errors, 1)
				assert.Equal(t, "gpa", resp.Errors[0].FieldName)
				assert.Equal(t, "GPA is required", resp.Errors[0].Message)
			},
		},
		{
			name:   "rejection with json error field",
			status: http.StatusBadRequest,
			body:   `{"error":"Job not found"}`,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, errors.IsCode(err, errors.ErrCodeServer))
				assert.Equal(t, "Job not found", err.(*errors.StandardError).Message)
			},
		},
		{
			name:   "rejection without json body",
			status: http.StatusUnprocessableEntity,
			body:   `<html>failed</html>`,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, errors.IsCode(err, errors.ErrCodeServer))
				assert.Equal(t, "Server returned 422 status", err.(*errors.StandardError).Message)
			},
		},
		{
			name:   "undecodable 2xx body",
			status: http.StatusOK,
			body:   `{"status":`,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedResponse))
			},
		},
		{
			name:   "2xx body failing the shape check",
			status: http.StatusOK,
			body:   `{"message":"no status field"}`,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedResponse))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/apply", r.URL.Path)

				var req models.ApplicationRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, 42, req.JobID)
				assert.Equal(t, "test-user", req.UserInfo.UserID)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			resp, err := client.Apply(context.Background(), createTestRequest())
			if tt.checkErr != nil {
				require.Error(t, err)
				tt.checkErr(t, err)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			tt.checkResult(t, resp)
		})
	}
}

func TestClient_Apply_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refused connection

	client := NewClient(config.APIConfig{
		BaseURL: server.URL,
		Timeout: 500,
	}, logger.NewTestLogger(t))

	_, err := client.Apply(context.Background(), createTestRequest())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTransport))
	assert.True(t, errors.IsRetryable(err))
}

func TestClient_ApplicationErrors(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/application-errors", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("job_id"))
		assert.Equal(t, "test-user", r.URL.Query().Get("user_id"))
		writeJSON(w, http.StatusOK, []models.ApplicationError{
			{ID: 7, ErrorType: "missing_field", FieldName: "gpa"},
		})
	}))

	appErrs, err := client.ApplicationErrors(context.Background(), 42, "test-user")
	require.NoError(t, err)
	require.Len(t, appErrs, 1)
	assert.Equal(t, 7, appErrs[0].ID)
}

// ==========================
// Profile Tests
// ==========================

func TestClient_Profile(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile", r.URL.Path)
		assert.Equal(t, "test-user", r.URL.Query().Get("user_id"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"user_id":         "test-user",
			"name":            "Alex Morgan",
			"graduation_year": "2027",
		})
	}))

	profile, err := client.Profile(context.Background(), "test-user")
	require.NoError(t, err)
	assert.Equal(t, "Alex Morgan", profile.Name)
	assert.Equal(t, "2027", profile.GraduationYear)
	assert.NotNil(t, profile.Answers, "answers map is always usable")
}

func TestClient_Profile_Timeout(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		writeJSON(w, http.StatusOK, map[string]interface{}{"user_id": "test-user"})
	}))

	start := time.Now()
	_, err := client.Profile(context.Background(), "test-user")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeRequestTimeout))
	assert.Less(t, time.Since(start), 1500*time.Millisecond, "bounded by the profile timeout")
}

func TestClient_Profile_MissingUserID(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"name": "Alex Morgan"})
	}))

	_, err := client.Profile(context.Background(), "test-user")
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedResponse))
}

func TestClient_SaveProfile(t *testing.T) {
	var saved models.ApplicantProfile
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/profile", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&saved))
		writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}))

	err := client.SaveProfile(context.Background(), models.ApplicantProfile{
		UserID: "test-user",
		Name:   "Alex Morgan",
	})
	require.NoError(t, err)
	assert.Equal(t, "test-user", saved.UserID)
}

// ==========================
// Upload Tests
// ==========================

func TestClient_UploadResume(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload-resume", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "test-user", r.FormValue("user_id"))

		file, header, err := r.FormFile("resume")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "resume.pdf", header.Filename)

		writeJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"resume_path": "uploads/test-user/resume.pdf",
		})
	}))

	path, err := client.UploadResume(context.Background(), "test-user", "resume.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/test-user/resume.pdf", path)
}

func TestClient_UploadResume_MissingPath(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}))

	_, err := client.UploadResume(context.Background(), "test-user", "resume.pdf", strings.NewReader("pdf-bytes"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedResponse))
}

func TestClient_UploadResume_BackendError(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "error", "error": "unsupported file type"})
	}))

	_, err := client.UploadResume(context.Background(), "test-user", "resume.pdf", strings.NewReader("exe-bytes"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeResumeUploadFailed))
}

// ==========================
// Directory & Feed Tests
// ==========================

func TestClient_LinkedCompaniesJobs(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/linked-companies-jobs", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		writeJSON(w, http.StatusOK, models.CompanyJobsPage{
			Companies: []models.Company{{ID: 1, Name: "Initech"}},
			Pagination: models.Pagination{
				Page: 2, PerPage: 10, HasNext: false, TotalCompanies: 11,
			},
		})
	}))

	page, err := client.LinkedCompaniesJobs(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Companies, 1)
	assert.False(t, page.Pagination.HasNext)
	assert.Equal(t, 11, page.Pagination.TotalCompanies)
}

func TestClient_Jobs(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs", r.URL.Path)
		writeJSON(w, http.StatusOK, []models.Job{
			{ID: 42, Title: "Backend Engineer", Company: "Initech"},
		})
	}))

	jobs, err := client.Jobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
}

func TestClient_Swipe(t *testing.T) {
	var body map[string]interface{}
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/swipe", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}))

	require.NoError(t, client.Swipe(context.Background(), "test-user", 42, "like"))
	assert.Equal(t, "test-user", body["user_id"])
	assert.Equal(t, float64(42), body["job_id"])
	assert.Equal(t, "like", body["action"])
}

// ==========================
// Auth Status Tests
// ==========================

func TestClient_AuthStatus(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/status", r.URL.Path)
		writeJSON(w, http.StatusOK, models.AuthStatus{
			SignedIn:          true,
			UserID:            "test-user",
			LinkedInConnected: true,
		})
	}))

	status, err := client.AuthStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.SignedIn)
	assert.True(t, status.LinkedInConnected)
}
