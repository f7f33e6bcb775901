// internal/api/upload.go
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"

	"jobswipe-client/internal/common/errors"
	"jobswipe-client/internal/common/metrics"
)

type uploadResponse struct {
	Status     string `json:"status"`
	ResumePath string `json:"resume_path"`
	Error      string `json:"error,omitempty"`
}

// UploadResume sends one multipart transfer and returns the opaque
// resume reference assigned by the backend.
func (c *Client) UploadResume(ctx context.Context, userID, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("resume", filename)
	if err != nil {
		return "", errors.NewResumeUploadFailedError(err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", errors.NewResumeUploadFailedError(err)
	}
	if err := mw.WriteField("user_id", userID); err != nil {
		return "", errors.NewResumeUploadFailedError(err)
	}
	if err := mw.Close(); err != nil {
		return "", errors.NewResumeUploadFailedError(err)
	}

	req, err := nethttp.NewRequest(nethttp.MethodPost, c.endpoint("/upload-resume", nil), &buf)
	if err != nil {
		return "", errors.NewResumeUploadFailedError(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	raw, err := c.roundTripRaw(ctx, "upload-resume", req, c.uploadClient)
	if err != nil {
		metrics.ResumeUploadsTotal.WithLabelValues("failure").Inc()
		return "", err
	}

	var out uploadResponse
	if err := c.decode("upload-resume", raw, &out); err != nil {
		metrics.ResumeUploadsTotal.WithLabelValues("failure").Inc()
		return "", err
	}
	if out.ResumePath == "" {
		metrics.ResumeUploadsTotal.WithLabelValues("failure").Inc()
		if out.Error != "" {
			return "", errors.NewResumeUploadFailedError(fmt.Errorf("%s", out.Error))
		}
		return "", errors.NewMalformedResponseError("endpoint: upload-resume, missing resume_path")
	}

	metrics.ResumeUploadsTotal.WithLabelValues("success").Inc()
	c.logger.Info("resume uploaded", map[string]interface{}{
		"userId":     userID,
		"resumePath": out.ResumePath,
	})
	return out.ResumePath, nil
}
