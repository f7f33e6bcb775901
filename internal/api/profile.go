// internal/api/profile.go
package api

import (
	"context"
	nethttp "net/http"
	"net/url"

	"jobswipe-client/internal/models"
)

// Profile fetches the stored profile for a user. The call is bounded
// by the profile timeout regardless of the caller's context.
func (c *Client) Profile(ctx context.Context, userID string) (*models.ApplicantProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, c.profileTimeout)
	defer cancel()

	query := url.Values{}
	query.Set("user_id", userID)
	rawURL := c.endpoint("/profile", query)

	req, err := nethttp.NewRequest(nethttp.MethodGet, rawURL, nil)
	if err != nil {
		return nil, c.errs.Report(err, "profile")
	}
	req.Header.Set("Accept", "application/json")

	raw, err := c.roundTripRaw(ctx, "profile", req, c.httpClient)
	if err != nil {
		return nil, err
	}

	if err := validateSchema("profile", profileResponseSchema, raw); err != nil {
		return nil, err
	}

	var profile models.ApplicantProfile
	if err := c.decode("profile", raw, &profile); err != nil {
		return nil, err
	}
	if profile.Answers == nil {
		profile.Answers = map[string]string{}
	}
	return &profile, nil
}

// SaveProfile persists a full profile snapshot. The profile's own
// user_id field doubles as the request's user_id.
func (c *Client) SaveProfile(ctx context.Context, profile models.ApplicantProfile) error {
	return c.postJSON(ctx, "save-profile", c.endpoint("/profile", nil), profile, nil)
}
