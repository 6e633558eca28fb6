package models

import "time"

// Expert represents a bookable person, bot or AI scoped to exactly one
// chapter. The (ChapterID, ID) pair identifies a record; ID alone is a
// storage surrogate. Nullable columns are pointers so that absent values
// survive a round trip unchanged.
type Expert struct {
	ID          int64     `json:"id"`
	ChapterID   int64     `json:"chapterID"`
	UserID      *int64    `json:"userID"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Schedule    *string   `json:"schedule"`
	Languages   *string   `json:"languages"` // comma-joined language names
	Online      *string   `json:"online"`
	Price       *float64  `json:"price"`
	Ranking     *float64  `json:"ranking"`
	Jobs        int64     `json:"jobs"`
	Type        *string   `json:"type"`
	URLImage    *string   `json:"url_image"`
	URLVideo    *string   `json:"url_video"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
