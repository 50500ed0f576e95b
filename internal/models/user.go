package models

import (
	"time"
)

// Role tags a profile can carry. A profile may hold several at once, e.g. a
// photographer who also models.
const (
	RolePhotographer = "photographer"
	RoleModel        = "model"
	RoleAgency       = "agency"
	RoleCompany      = "company"
	RoleFan          = "fan"
)

type User struct {
	Email              string   `bson:"email" json:"email" validate:"required,email"`
	DisplayName        string   `bson:"display_name" json:"display_name"`
	FullName           string   `bson:"full_name" json:"full_name"`
	AvatarURL          string   `bson:"avatar_url" json:"avatar_url"`
	Bio                string   `bson:"bio" json:"bio"`
	Roles              []string `bson:"roles" json:"roles"`
	PrimaryRole        string   `bson:"primary_role" json:"primary_role"`
	Styles             []string `bson:"styles" json:"styles"`
	AgencyAffiliation  string   `bson:"agency_affiliation" json:"agency_affiliation"`
	CompanyAffiliation string   `bson:"company_affiliation" json:"company_affiliation"`
	// Reciprocal talent links, keyed by account email. Kept duplicate-free.
	LinkedAgencies       []string  `bson:"linked_agencies" json:"linked_agencies"`
	LinkedCompanies      []string  `bson:"linked_companies" json:"linked_companies"`
	LinkedModels         []string  `bson:"linked_models" json:"linked_models"`
	ShowSensitiveContent bool      `bson:"show_sensitive_content" json:"show_sensitive_content"`
	OnboardingComplete   bool      `bson:"onboarding_complete" json:"onboarding_complete"`
	CreatedAt            time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt            time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeRoles re-derives primary_role when it is no longer a member of the
// roles set, e.g. after a profile edit dropped the tag it pointed at.
func (u *User) NormalizeRoles() {
	u.Roles = dedupeStrings(u.Roles)
	if u.PrimaryRole != "" && u.HasRole(u.PrimaryRole) {
		return
	}
	if len(u.Roles) > 0 {
		u.PrimaryRole = u.Roles[0]
	} else {
		u.PrimaryRole = ""
	}
}

// DedupeLinks keeps the linked account sets duplicate-free.
func (u *User) DedupeLinks() {
	u.LinkedAgencies = dedupeStrings(u.LinkedAgencies)
	u.LinkedCompanies = dedupeStrings(u.LinkedCompanies)
	u.LinkedModels = dedupeStrings(u.LinkedModels)
}

func dedupeStrings(values []string) []string {
	if values == nil {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
