// internal/api/apply.go
package api

import (
	"context"
	"net/url"
	"strconv"

	"jobswipe-client/internal/models"
)

// ApplyResponse is the wire payload of POST /apply. The backend may
// report a terminal status or a list of structured field errors; the
// coordinator owns the interpretation.
type ApplyResponse struct {
	Status  string                    `json:"status"`
	Message string                    `json:"message"`
	Errors  []models.ApplicationError `json:"errors,omitempty"`
}

// Apply submits one application. Exactly one network call; no internal
// retries. The returned error covers transport failures, non-2xx
// rejections and malformed 2xx bodies.
func (c *Client) Apply(ctx context.Context, req models.ApplicationRequest) (*ApplyResponse, error) {
	payload, err := c.marshalBody("apply", req)
	if err != nil {
		return nil, err
	}

	raw, err := c.postRaw(ctx, "apply", c.endpoint("/apply", nil), payload)
	if err != nil {
		return nil, err
	}

	if err := validateSchema("apply", applyResponseSchema, raw); err != nil {
		return nil, err
	}

	var out ApplyResponse
	if err := c.decode("apply", raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplicationErrors fetches previously recorded rejections for a
// (job, user) pair. Idempotent and side-effect free.
func (c *Client) ApplicationErrors(ctx context.Context, jobID int, userID string) ([]models.ApplicationError, error) {
	query := url.Values{}
	query.Set("job_id", strconv.Itoa(jobID))
	query.Set("user_id", userID)

	var out []models.ApplicationError
	if err := c.getJSON(ctx, "application-errors", c.endpoint("/application-errors", query), &out); err != nil {
		return nil, err
	}
	return out, nil
}
