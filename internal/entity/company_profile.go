package entity

// SocialLinks holds the optional social-profile URLs of a company.
type SocialLinks struct {
	LinkedIn *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	Facebook *string `json:"facebook"`
}

// CompanyProfile is the firmographic record resolved for a company domain.
type CompanyProfile struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Domain        *string     `json:"domain"`
	Industry      *string     `json:"industry"`
	EmployeeCount *int        `json:"employee_count"`
	Technologies  []string    `json:"technologies"`
	SocialLinks   SocialLinks `json:"social_links"`
}
