package dto

// EnrichCompanyRequest asks for the firmographic profile of a domain.
type EnrichCompanyRequest struct {
	Domain string `json:"domain"`
}

// FindProspectsRequest searches people at an enriched organization.
type FindProspectsRequest struct {
	OrganizationID string   `json:"organization_id"`
	Titles         []string `json:"titles"`
	Seniorities    []string `json:"seniorities"`
}

// AccountProspectsRequest narrows the prospects returned for an account.
type AccountProspectsRequest struct {
	Titles      []string `json:"titles"`
	Seniorities []string `json:"seniorities"`
}
