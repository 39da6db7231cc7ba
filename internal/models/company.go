package models

// Company is a full company record.
// swagger:model Company
type Company struct {
	// Unique, human-assigned identifier
	// example: acme
	Handle string `db:"handle" json:"handle"`

	// Unique display name
	// example: Acme Corp
	Name string `db:"name" json:"name"`

	// example: 120
	NumEmployees *int `db:"num_employees" json:"num_employees"`

	Description *string `db:"description" json:"description"`

	// example: https://acme.test/logo.png
	LogoURL *string `db:"logo_url" json:"logo_url"`
}

// CompanySummary is the listing projection of a company.
// swagger:model CompanySummary
type CompanySummary struct {
	Handle string `db:"handle" json:"handle"`
	Name   string `db:"name" json:"name"`
}

// CompanyDetail is a company with all of its jobs.
// swagger:model CompanyDetail
type CompanyDetail struct {
	Company
	Jobs []Job `json:"jobs"`
}

// CompanyFilter holds the optional listing filters.
type CompanyFilter struct {
	Search       string
	MinEmployees *int
	MaxEmployees *int
}

// CreateCompanyRequest is the body of POST /companies.
// swagger:model CreateCompanyRequest
type CreateCompanyRequest struct {
	// required: true
	// example: acme
	Handle string `json:"handle" validate:"required,max=25,lowercase"`

	// required: true
	// example: Acme Corp
	Name string `json:"name" validate:"required"`

	NumEmployees *int    `json:"num_employees" validate:"omitempty,min=0"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url" validate:"omitempty,url"`
}

// Company converts the request into a record.
func (r CreateCompanyRequest) Company() Company {
	return Company{
		Handle:       r.Handle,
		Name:         r.Name,
		NumEmployees: r.NumEmployees,
		Description:  r.Description,
		LogoURL:      r.LogoURL,
	}
}

// UpdateCompanyRequest is the body of PATCH /companies/{handle}.
// Absent fields are left unchanged.
// swagger:model UpdateCompanyRequest
type UpdateCompanyRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	NumEmployees *int    `json:"num_employees" validate:"omitempty,min=0"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url" validate:"omitempty,url"`
}

// Fields returns the supplied fields keyed by column.
func (r UpdateCompanyRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.NumEmployees != nil {
		fields["num_employees"] = *r.NumEmployees
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.LogoURL != nil {
		fields["logo_url"] = *r.LogoURL
	}
	return fields
}

// CompanyResponse wraps a single company.
// swagger:model CompanyResponse
type CompanyResponse struct {
	Company *Company `json:"company"`
}

// CompanyDetailResponse wraps a company with its jobs.
// swagger:model CompanyDetailResponse
type CompanyDetailResponse struct {
	Company *CompanyDetail `json:"company"`
}

// CompaniesResponse wraps a company listing.
// swagger:model CompaniesResponse
type CompaniesResponse struct {
	Companies []CompanySummary `json:"companies"`
}
