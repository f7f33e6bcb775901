// internal/companies/directory_test.go
package companies

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobswipe-client/internal/common/errors"
	"jobswipe-client/internal/common/logger"
	"jobswipe-client/internal/models"
)

type fakeAPI struct {
	pages map[int]*models.CompanyJobsPage
	err   error
	calls []int
}

func (f *fakeAPI) LinkedCompaniesJobs(ctx context.Context, page, perPage int) (*models.CompanyJobsPage, error) {
	f.calls = append(f.calls, page)
	if f.err != nil {
		return nil, f.err
	}
	result, ok := f.pages[page]
	if !ok {
		return nil, errors.NewServerError("Server returned 404 status")
	}
	return result, nil
}

func createPage(page int, hasNext bool, names ...string) *models.CompanyJobsPage {
	companies := make([]models.Company, len(names))
	for i, name := range names {
		companies[i] = models.Company{ID: (page-1)*10 + i + 1, Name: name}
	}
	return &models.CompanyJobsPage{
		Companies: companies,
		Pagination: models.Pagination{
			Page:           page,
			PerPage:        10,
			HasNext:        hasNext,
			TotalCompanies: 12,
		},
	}
}

func companyNames(companies []models.Company) []string {
	names := make([]string, len(companies))
	for i, c := range companies {
		names[i] = c.Name
	}
	return names
}

func TestDirectory_RefreshReplacesList(t *testing.T) {
	client := &fakeAPI{pages: map[int]*models.CompanyJobsPage{
		1: createPage(1, true, "Initech", "Globex"),
	}}
	directory := NewDirectory(client, logger.NewTestLogger(t))

	require.NoError(t, directory.Refresh(context.Background()))
	assert.Equal(t, []string{"Initech", "Globex"}, companyNames(directory.Companies()))
	assert.True(t, directory.HasNext())
	assert.Equal(t, 12, directory.Total())

	// A second refresh starts over instead of appending.
	require.NoError(t, directory.Refresh(context.Background()))
	assert.Equal(t, []string{"Initech", "Globex"}, companyNames(directory.Companies()))
	assert.Equal(t, []int{1, 1}, client.calls)
}

func TestDirectory_LoadMoreAppends(t *testing.T) {
	client := &fakeAPI{pages: map[int]*models.CompanyJobsPage{
		1: createPage(1, true, "Initech"),
		2: createPage(2, true, "Globex"),
		3: createPage(3, false, "Umbrella"),
	}}
	directory := NewDirectory(client, logger.NewTestLogger(t))

	require.NoError(t, directory.Refresh(context.Background()))
	require.NoError(t, directory.LoadMore(context.Background()))
	require.NoError(t, directory.LoadMore(context.Background()))

	assert.Equal(t, []string{"Initech", "Globex", "Umbrella"}, companyNames(directory.Companies()))
	assert.False(t, directory.HasNext())

	// The last page said no more; further calls never hit the backend.
	require.NoError(t, directory.LoadMore(context.Background()))
	assert.Equal(t, []int{1, 2, 3}, client.calls)
}

func TestDirectory_LoadMoreBeforeRefreshIsNoop(t *testing.T) {
	client := &fakeAPI{pages: map[int]*models.CompanyJobsPage{}}
	directory := NewDirectory(client, logger.NewTestLogger(t))

	require.NoError(t, directory.LoadMore(context.Background()))
	assert.Empty(t, client.calls)
}

func TestDirectory_FailureKeepsAccumulatedList(t *testing.T) {
	client := &fakeAPI{pages: map[int]*models.CompanyJobsPage{
		1: createPage(1, true, "Initech"),
	}}
	directory := NewDirectory(client, logger.NewTestLogger(t))
	require.NoError(t, directory.Refresh(context.Background()))

	client.err = errors.NewTransportError(io.ErrUnexpectedEOF)
	err := directory.LoadMore(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrCodeTransport))
	assert.Equal(t, []string{"Initech"}, companyNames(directory.Companies()))
	assert.True(t, directory.HasNext(), "a failed page load can be retried")

	err = directory.Refresh(context.Background())
	assert.Error(t, err)
	assert.Equal(t, []string{"Initech"}, companyNames(directory.Companies()))
}
