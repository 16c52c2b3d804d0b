package models

// Post is an announcement published by a club.
// ClubName and ClubAvatar are copies taken when the post was created.
type Post struct {
	ID         string `json:"id" db:"postid" yaml:"id" example:"p1"`
	ClubID     string `json:"clubId" db:"clubid" yaml:"clubId" example:"1"`
	ClubName   string `json:"clubName" yaml:"clubName"`
	ClubAvatar string `json:"clubAvatar" yaml:"clubAvatar"`
	Content    string `json:"content" db:"content" yaml:"content"`
	Image      string `json:"image,omitempty" yaml:"image,omitempty"`
	CreatedAt  string `json:"createdAt" yaml:"createdAt" example:"2 hours ago"`
	Likes      int    `json:"likes" yaml:"likes"`
}

// Event is a dated club activity
type Event struct {
	ID          string `json:"id" db:"eventid" yaml:"id" example:"e1"`
	ClubID      string `json:"clubId" db:"clubid" yaml:"clubId" example:"1"`
	ClubName    string `json:"clubName" yaml:"clubName"`
	Title       string `json:"title" db:"title" yaml:"title"`
	Date        string `json:"date" yaml:"date" example:"2025-11-05"`
	Time        string `json:"time" yaml:"time" example:"7:00 PM"`
	Location    string `json:"location" db:"location" yaml:"location"`
	Description string `json:"description" db:"description" yaml:"description"`
}

// EventDetails are the fields an admin supplies when creating an event.
type EventDetails struct {
	Title       string
	Date        string
	Time        string
	Location    string
	Description string
}
