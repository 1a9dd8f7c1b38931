package models

import (
	"time"
)

type User struct {
	UserID             string `json:"id" db:"user_id"`
	Email              string `json:"email" db:"email"`
	FirstName          string `json:"first_name" db:"first_name"`
	LastName           string `json:"last_name" db:"last_name"`
	Bio                string `json:"bio" db:"bio"`
	Location           string `json:"location" db:"location"`
	PhoneNumber        string `json:"phone_number" db:"phone_number"`
	ProfilePicFilename string `json:"profile_pic_filename" db:"profile_pic_filename"`
}

type Post struct {
	PostID          string    `json:"id" db:"post_id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	CategoryID      *string   `json:"category_id" db:"category_id"`
	AuthorID        string    `json:"author_id" db:"author_id"`
	AuthorFirstName string    `json:"author_first_name" db:"author_first_name"`
	AuthorLastName  string    `json:"author_last_name" db:"author_last_name"`
	Location        string    `json:"location" db:"location"`
	Lat             *float64  `json:"lat,omitempty" db:"lat"`
	Lng             *float64  `json:"lng,omitempty" db:"lng"`
	ImageURL        string    `json:"image_url" db:"image_url"`
	DateCreated     time.Time `json:"date_created" db:"date_created"`
	Email           *string   `json:"email,omitempty" db:"-"`
}

type Category struct {
	CategoryID string `json:"id" db:"category_id"`
	Name       string `json:"name" db:"name"`
}

// AuthContext - auth state of the caller, supplied by the host, never read implicitly
type AuthContext struct {
	Authenticated bool
	Credential    string
}

// VisiblePost - post joined with its resolved category label, derived, never stored
type VisiblePost struct {
	Post
	CategoryLabel string `json:"category_label"`
}

type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Marker struct {
	PostID   string   `json:"id"`
	Label    string   `json:"label"`
	Position Position `json:"position"`
}
