package entity

import "time"

// Article is a news entry published alongside the catalog.
// Unpublished articles are only visible to authenticated users.
type Article struct {
	ID          string
	Title       string
	Content     string
	Author      string
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the invariants that must hold for a persisted article.
func (a *Article) Validate() error {
	if err := ValidateTitle(a.Title); err != nil {
		return err
	}
	if err := ValidateContent(a.Content); err != nil {
		return err
	}
	if a.Author != "" {
		if err := ValidateAuthor(a.Author); err != nil {
			return err
		}
	}
	return nil
}
