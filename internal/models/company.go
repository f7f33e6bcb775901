// internal/models/company.go
package models

// Company is one favorite company with its recent intern postings, as
// returned by GET /linked-companies-jobs.
type Company struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Jobs []Job  `json:"jobs"`
}

// Pagination describes the paging state the backend reports alongside
// a companies page.
type Pagination struct {
	Page           int  `json:"page"`
	PerPage        int  `json:"per_page"`
	HasNext        bool `json:"has_next"`
	TotalCompanies int  `json:"total_companies"`
}

// CompanyJobsPage is a single page of the linked-companies listing.
type CompanyJobsPage struct {
	Companies  []Company  `json:"companies"`
	Pagination Pagination `json:"pagination"`
}
