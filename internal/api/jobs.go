// internal/api/jobs.go
package api

import (
	"context"
	"net/url"
	"strconv"

	"jobswipe-client/internal/models"
)

// Jobs fetches the current job feed.
func (c *Client) Jobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.getJSON(ctx, "jobs", c.endpoint("/jobs", nil), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// FavoriteJobs fetches recent postings from favorite companies.
func (c *Client) FavoriteJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.getJSON(ctx, "fav-jobs", c.endpoint("/fav-jobs", nil), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// LinkedCompaniesJobs fetches one page of the favorites directory.
func (c *Client) LinkedCompaniesJobs(ctx context.Context, page, perPage int) (*models.CompanyJobsPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var out models.CompanyJobsPage
	if err := c.getJSON(ctx, "linked-companies-jobs", c.endpoint("/linked-companies-jobs", query), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Swipe records a like or dislike for a job.
func (c *Client) Swipe(ctx context.Context, userID string, jobID int, action string) error {
	body := map[string]interface{}{
		"user_id": userID,
		"job_id":  jobID,
		"action":  action,
	}
	return c.postJSON(ctx, "swipe", c.endpoint("/swipe", nil), body, nil)
}

// Favorites returns the user's favorite company names.
func (c *Client) Favorites(ctx context.Context, userID string) ([]string, error) {
	query := url.Values{}
	query.Set("user_id", userID)

	var names []string
	if err := c.getJSON(ctx, "favorites", c.endpoint("/favorites", query), &names); err != nil {
		return nil, err
	}
	return names, nil
}

// FavoriteCompany marks a company as favorite for the user.
func (c *Client) FavoriteCompany(ctx context.Context, userID, name string) error {
	body := map[string]interface{}{
		"user_id": userID,
		"name":    name,
	}
	return c.postJSON(ctx, "favorite-company", c.endpoint("/favorite-company", nil), body, nil)
}

// Resources fetches the static career resources list.
func (c *Client) Resources(ctx context.Context) ([]models.Resource, error) {
	var out []models.Resource
	if err := c.getJSON(ctx, "resources", c.endpoint("/resources", nil), &out); err != nil {
		return nil, err
	}
	return out, nil
}
