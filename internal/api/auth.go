// internal/api/auth.go
package api

import (
	"context"

	"jobswipe-client/internal/models"
)

// AuthStatus checks whether the external LinkedIn account is still
// linked. Bounded by the profile timeout; safe to poll.
func (c *Client) AuthStatus(ctx context.Context) (*models.AuthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.profileTimeout)
	defer cancel()

	var out models.AuthStatus
	if err := c.getJSON(ctx, "auth-status", c.endpoint("/auth/status", nil), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
