// internal/models/auth.go
package models

// AuthStatus is the GET /auth/status payload. The poller only acts on
// LinkedInConnected; the rest is surfaced to the UI as-is.
type AuthStatus struct {
	SignedIn          bool   `json:"signed_in"`
	UserID            string `json:"user_id,omitempty"`
	Name              string `json:"name,omitempty"`
	LinkedInConnected bool   `json:"linkedin_connected"`
	TokenExpired      bool   `json:"token_expired"`
	TokenExpires      string `json:"token_expires,omitempty"`
	ProfileComplete   bool   `json:"profile_complete"`
}
