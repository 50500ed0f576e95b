package models

import (
	"time"
)

// TaggedPerson credits a collaborator on a post, in the order they were
// tagged.
type TaggedPerson struct {
	Name      string `bson:"name" json:"name"`
	Role      string `bson:"role" json:"role"`
	Instagram string `bson:"instagram" json:"instagram"`
}

type Post struct {
	ID               string         `bson:"id" json:"id"`
	Title            string         `bson:"title" json:"title" validate:"required"`
	Caption          string         `bson:"caption" json:"caption"`
	ImageURL         string         `bson:"image_url" json:"image_url" validate:"required"`
	PhotographyStyle string         `bson:"photography_style" json:"photography_style"`
	Tags             []string       `bson:"tags" json:"tags"`
	TriggerWarnings  []string       `bson:"trigger_warnings" json:"trigger_warnings"`
	TaggedPeople     []TaggedPerson `bson:"tagged_people" json:"tagged_people"`
	CreatedBy        string         `bson:"created_by" json:"created_by"`
	// Sensitivity flags are persisted as integers; filter predicates must use
	// the same representation or they never match.
	IsSensitive int       `bson:"is_sensitive" json:"is_sensitive"`
	IsApproved  int       `bson:"is_approved" json:"is_approved"`
	CreatedDate time.Time `bson:"created_date" json:"created_date"`
}

// StyleTriggerWarnings maps a photography style to the content warnings it
// implies. The creation flow applies these before a post is sent to the API.
var StyleTriggerWarnings = map[string][]string{
	"boudoir":       {"artistic_nudity"},
	"artistic_nude": {"artistic_nudity"},
	"dark_art":      {"disturbing_themes"},
	"horror":        {"disturbing_themes", "blood"},
}

// MergeTriggerWarnings unions the caller-supplied warnings with the ones the
// style implies, preserving the caller's order.
func MergeTriggerWarnings(existing []string, style string) []string {
	merged := append([]string{}, existing...)
	for _, w := range StyleTriggerWarnings[style] {
		found := false
		for _, have := range merged {
			if have == w {
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, w)
		}
	}
	return merged
}
