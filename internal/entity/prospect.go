package entity

// ProspectCandidate is a contact found at a target organization.
type ProspectCandidate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Email       *string `json:"email"`
	LinkedInURL *string `json:"linkedin_url"`
	Phone       *string `json:"phone,omitempty"`
}

// ProspectCriteria narrows a prospect search by role and seniority.
type ProspectCriteria struct {
	Titles      []string `json:"person_titles,omitempty"`
	Seniorities []string `json:"person_seniorities,omitempty"`
}
