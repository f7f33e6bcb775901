// Package companies accumulates the paginated directory of companies
// the account is linked to, together with their open jobs.
package companies

import (
	"context"
	"sync"

	"jobswipe-client/internal/common/logger"
	"jobswipe-client/internal/models"
)

// API is the slice of the backend client the directory depends on.
type API interface {
	LinkedCompaniesJobs(ctx context.Context, page, perPage int) (*models.CompanyJobsPage, error)
}

const defaultPerPage = 10

// Directory holds the pages fetched so far. Refresh restarts from page
// one and replaces the list; LoadMore appends the next page while the
// backend reports more.
type Directory struct {
	api     API
	perPage int
	logger  logger.Logger

	mu        sync.Mutex
	companies []models.Company
	page      int
	hasNext   bool
	total     int
	loading   bool
}

func NewDirectory(client API, log logger.Logger) *Directory {
	return &Directory{
		api:     client,
		perPage: defaultPerPage,
		logger:  log.WithFields(map[string]interface{}{"component": "companies"}),
		hasNext: true,
	}
}

// Refresh fetches page one and replaces the accumulated list. On
// failure the previously accumulated list is kept.
func (d *Directory) Refresh(ctx context.Context) error {
	d.mu.Lock()
	if d.loading {
		d.mu.Unlock()
		return nil
	}
	d.loading = true
	d.mu.Unlock()
	defer d.clearLoading()

	result, err := d.api.LinkedCompaniesJobs(ctx, 1, d.perPage)
	if err != nil {
		d.logger.WithError(err).Warn("Companies refresh failed", nil)
		return err
	}

	d.mu.Lock()
	d.companies = result.Companies
	d.page = 1
	d.hasNext = result.Pagination.HasNext
	d.total = result.Pagination.TotalCompanies
	d.mu.Unlock()
	return nil
}

// LoadMore fetches the next page and appends it. A call when no
// further page exists, or while another fetch is running, is a no-op.
func (d *Directory) LoadMore(ctx context.Context) error {
	d.mu.Lock()
	if d.loading || !d.hasNext || d.page == 0 {
		d.mu.Unlock()
		return nil
	}
	d.loading = true
	next := d.page + 1
	d.mu.Unlock()
	defer d.clearLoading()

	result, err := d.api.LinkedCompaniesJobs(ctx, next, d.perPage)
	if err != nil {
		d.logger.WithError(err).Warn("Companies page load failed", nil)
		return err
	}

	d.mu.Lock()
	d.companies = append(d.companies, result.Companies...)
	d.page = next
	d.hasNext = result.Pagination.HasNext
	d.total = result.Pagination.TotalCompanies
	d.mu.Unlock()
	return nil
}

func (d *Directory) clearLoading() {
	d.mu.Lock()
	d.loading = false
	d.mu.Unlock()
}

// Companies returns a copy of the accumulated list.
func (d *Directory) Companies() []models.Company {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Company, len(d.companies))
	copy(out, d.companies)
	return out
}

// HasNext reports whether another page is available.
func (d *Directory) HasNext() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasNext
}

// Total returns the backend's reported company count, zero before the
// first successful fetch.
func (d *Directory) Total() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.total
}
