package models

import "time"

// MoodboardEntry is the locally cached projection of a saved post. It is
// deliberately a subset of Post: the moodboard owns these fields and never
// writes them back to the server.
type MoodboardEntry struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ImageURL         string    `json:"image_url"`
	PhotographerName string    `json:"photographer_name"`
	CreatedDate      time.Time `json:"created_date"`
	Tags             []string  `json:"tags"`
}

// NewMoodboardEntry projects a post to the cache-entry shape.
func NewMoodboardEntry(p Post) MoodboardEntry {
	return MoodboardEntry{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Caption,
		ImageURL:         p.ImageURL,
		PhotographerName: p.CreatedBy,
		CreatedDate:      p.CreatedDate,
		Tags:             append([]string{}, p.Tags...),
	}
}
