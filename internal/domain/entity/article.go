package entity

import "time"

// Article represents a news article entity in the system.
// Ownership of updates and deletes is permanently bound to CreatedByID;
// there is no reassignment path.
type Article struct {
	ID           int64
	Title        string
	Headline     *string
	Content      string
	Source       *string
	CategoryID   int64
	Status       bool
	CreatedByID  int64
	UpdatedByID  int64
	CreatedDate  time.Time
	ModifiedDate *time.Time
}

// StatusText renders the active flag the way every listing displays it.
func (a *Article) StatusText() string {
	if a.Status {
		return "Active"
	}
	return "Inactive"
}

// IsOwnedBy reports whether the given account created this article.
// Edit and delete rights derive from this alone; role is not consulted.
func (a *Article) IsOwnedBy(accountID int64) bool {
	return a.CreatedByID == accountID
}
