package apollo

import "github.com/octobees/marketing-ops/api/internal/entity"

// MockCompanyProfile returns a fresh copy of the profile served in mock mode.
func MockCompanyProfile() *entity.CompanyProfile {
	return &entity.CompanyProfile{
		ID:            "org_123",
		Name:          "TechCorp Solutions",
		Domain:        ptr("techcorpsolutions.com"),
		Industry:      ptr("Technology"),
		EmployeeCount: ptr(850),
		Technologies:  []string{"React", "AWS", "Node.js"},
		SocialLinks: entity.SocialLinks{
			LinkedIn: ptr("https://linkedin.com/company/techcorp"),
			Twitter:  ptr("https://twitter.com/techcorp"),
			Facebook: ptr("https://facebook.com/techcorp"),
		},
	}
}

// MockProspects returns a fresh copy of the prospects served in mock mode.
func MockProspects() []entity.ProspectCandidate {
	return []entity.ProspectCandidate{
		{
			ID:          "prospect_1",
			Name:        "John Anderson",
			Title:       "Chief Technology Officer",
			Email:       ptr("j.anderson@techcorp.com"),
			LinkedInURL: ptr("https://linkedin.com/in/janderson"),
		},
		{
			ID:          "prospect_2",
			Name:        "Sarah Chen",
			Title:       "VP of Engineering",
			Email:       ptr("s.chen@techcorp.com"),
			LinkedInURL: ptr("https://linkedin.com/in/schen"),
		},
		{
			ID:          "prospect_3",
			Name:        "Michael Rodriguez",
			Title:       "Head of Infrastructure",
			Email:       ptr("m.rodriguez@techcorp.com"),
			LinkedInURL: ptr("https://linkedin.com/in/mrodriguez"),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
