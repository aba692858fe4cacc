package entity

import "time"

// Lesson is an immutable record of a prompt submitted by a user and the lesson
// text generated for it. The referenced ids are not checked.
type Lesson struct {
	ID            string
	UserID        string
	CategoryID    string
	SubCategoryID string
	Prompt        string
	Response      string
	CreatedAt     time.Time
}
