// internal/models/job.go
package models

// Job mirrors the /jobs payload. Immutable once fetched; the
// submission coordinator only ever reads its ID.
type Job struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PostedAt    string `json:"posted_at"`
	Source      string `json:"source"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Resource is an entry from GET /resources (career guides, prep
// links and the like).
type Resource struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Kind  string `json:"kind,omitempty"`
}
