package entity

import "time"

// Item is a product offered in the catalog.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the invariants that must hold for a persisted item.
func (i *Item) Validate() error {
	if err := ValidateName(i.Name); err != nil {
		return err
	}
	if err := ValidateDescription(i.Description); err != nil {
		return err
	}
	if err := ValidatePrice(i.Price); err != nil {
		return err
	}
	if i.Category != "" {
		if err := ValidateCategory(i.Category); err != nil {
			return err
		}
	}
	return nil
}
