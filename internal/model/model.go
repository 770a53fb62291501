// Package model defines the content entities served by the site:
// projects, categories, services, client logos, site settings and the
// admin user.
package model

// RoleAdmin is the admin user role.
const RoleAdmin = "admin"

// User represents the authenticated site administrator.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// IsAdmin returns true if the user has admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Project is a portfolio entry. Category holds the category NAME, not
// its id — a denormalized reference kept consistent by the category
// repository's cascading rename.
type Project struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Client      string `json:"client,omitempty"`
}

// Category groups projects by name. Names are unique case-insensitively.
type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Service is an offering shown on the services section. Icon is a
// symbolic glyph name resolved by Glyph.
type Service struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ClientLogo is a client reference shown in the logo strip. Logo holds
// a URL or inline base64 image data.
type ClientLogo struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// SiteSettings is the singleton record holding hero and branding
// content. Field names mirror the persisted JSON shape.
type SiteSettings struct {
	HeroImage         string `json:"heroImage"`
	HeaderLogo        string `json:"headerLogo"`
	FooterLogo        string `json:"footerLogo"`
	HeroTitleLine1    string `json:"heroTitleLine1"`
	HeroHighlightWord string `json:"heroHighlightWord"`
	HeroTitleLine2    string `json:"heroTitleLine2"`
	HeroDescription   string `json:"heroDescription"`
}
