package entity

import "time"

// Category is the top level of the learning taxonomy.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// SubCategory belongs to a Category. CategoryID is only checked when the
// sub-category is created.
type SubCategory struct {
	ID         string
	Name       string
	CategoryID string
	CreatedAt  time.Time
}
