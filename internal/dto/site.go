package dto

// SitePage is a public marketing page.
type SitePage struct {
	Slug     string         `json:"slug" yaml:"slug"`
	Title    string         `json:"title" yaml:"title"`
	Subtitle string         `json:"subtitle,omitempty" yaml:"subtitle"`
	Sections []SiteSection  `json:"sections,omitempty" yaml:"sections"`
	Plans    []PricingPlan  `json:"plans,omitempty" yaml:"plans"`
	AddOns   []PricingAddOn `json:"addOns,omitempty" yaml:"add_ons"`
}

// SiteSection is a headed block of copy with optional bullet items.
type SiteSection struct {
	Heading string   `json:"heading" yaml:"heading"`
	Body    string   `json:"body,omitempty" yaml:"body"`
	Items   []string `json:"items,omitempty" yaml:"items"`
}

// PricingPlan is a subscription tier.
type PricingPlan struct {
	Name        string   `json:"name" yaml:"name"`
	Price       string   `json:"price" yaml:"price"`
	Period      string   `json:"period,omitempty" yaml:"period"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
	CTA         string   `json:"cta,omitempty" yaml:"cta"`
	Popular     bool     `json:"popular,omitempty" yaml:"popular"`
}

// PricingAddOn is an optional paid extra.
type PricingAddOn struct {
	Name        string `json:"name" yaml:"name"`
	Price       string `json:"price" yaml:"price"`
	Description string `json:"description" yaml:"description"`
}

// SchoolPageResponse is a per-school content page.
type SchoolPageResponse struct {
	SchoolID  int64  `json:"school_id"`
	PageName  string `json:"page_name"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
