package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRolesRederivesPrimary(t *testing.T) {
	u := User{Roles: []string{RoleModel, RolePhotographer}, PrimaryRole: RoleAgency}
	u.NormalizeRoles()
	assert.Equal(t, RoleModel, u.PrimaryRole)
}

func TestNormalizeRolesKeepsValidPrimary(t *testing.T) {
	u := User{Roles: []string{RoleModel, RolePhotographer}, PrimaryRole: RolePhotographer}
	u.NormalizeRoles()
	assert.Equal(t, RolePhotographer, u.PrimaryRole)
}

func TestNormalizeRolesDedupes(t *testing.T) {
	u := User{Roles: []string{RoleModel, RoleModel, RoleFan}}
	u.NormalizeRoles()
	assert.Equal(t, []string{RoleModel, RoleFan}, u.Roles)
	assert.Equal(t, RoleModel, u.PrimaryRole)
}

func TestNormalizeRolesEmpty(t *testing.T) {
	u := User{PrimaryRole: RoleFan}
	u.NormalizeRoles()
	assert.Equal(t, "", u.PrimaryRole)
}

func TestDedupeLinks(t *testing.T) {
	u := User{
		LinkedAgencies: []string{"a@exhibit.app", "a@exhibit.app"},
		LinkedModels:   []string{"m@exhibit.app"},
	}
	u.DedupeLinks()
	assert.Equal(t, []string{"a@exhibit.app"}, u.LinkedAgencies)
	assert.Equal(t, []string{"m@exhibit.app"}, u.LinkedModels)
}

func TestMergeTriggerWarnings(t *testing.T) {
	got := MergeTriggerWarnings(nil, "horror")
	assert.Equal(t, []string{"disturbing_themes", "blood"}, got)

	// Caller-supplied warnings keep their position; style additions follow.
	got = MergeTriggerWarnings([]string{"blood", "violence"}, "horror")
	assert.Equal(t, []string{"blood", "violence", "disturbing_themes"}, got)

	// A style without implied warnings changes nothing.
	got = MergeTriggerWarnings([]string{"violence"}, "portrait")
	assert.Equal(t, []string{"violence"}, got)
}

func TestNewMoodboardEntryProjection(t *testing.T) {
	p := Post{
		ID:        "p1",
		Title:     "Velvet light",
		Caption:   "Studio session",
		ImageURL:  "https://img.exhibit.app/velvet.jpg",
		CreatedBy: "iris@exhibit.app",
		Tags:      []string{"studio"},
	}
	e := NewMoodboardEntry(p)
	assert.Equal(t, p.ID, e.ID)
	assert.Equal(t, p.Title, e.Title)
	assert.Equal(t, p.Caption, e.Description)
	assert.Equal(t, p.ImageURL, e.ImageURL)
	assert.Equal(t, p.CreatedBy, e.PhotographerName)
	assert.Equal(t, p.Tags, e.Tags)
}
