package dto

// AssetSearchQuery is bound from the asset search query string.
type AssetSearchQuery struct {
	Query       string `query:"q"`
	Type        string `query:"type"`
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
	Orientation string `query:"orientation"`
	Category    string `query:"category"`
	Color       string `query:"color"`
	People      string `query:"people"`
}

// WizardTransitionRequest moves the ad generator from a step.
type WizardTransitionRequest struct {
	Step   int    `json:"step"`
	Action string `json:"action"`
}
