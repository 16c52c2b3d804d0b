package catalog

import (
	"context"

	"github.com/yigit/clubr/internal/app/models"
)

// Catalog is the initial world state every new session starts from
type Catalog struct {
	User      models.User    `json:"user" yaml:"user"`
	Clubs     []models.Club  `json:"clubs" yaml:"clubs"`
	Posts     []models.Post  `json:"posts" yaml:"posts"`
	Events    []models.Event `json:"events" yaml:"events"`
	Chats     []models.Chat  `json:"chats" yaml:"chats"`
	Interests []string       `json:"interests" yaml:"interests"` // tags offered during onboarding
}

// Source loads a catalog from somewhere: static fixtures or a database.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// Clone returns a deep copy so that sessions never share mutable state.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		User:      c.User.Clone(),
		Clubs:     make([]models.Club, len(c.Clubs)),
		Posts:     make([]models.Post, len(c.Posts)),
		Events:    make([]models.Event, len(c.Events)),
		Chats:     make([]models.Chat, len(c.Chats)),
		Interests: make([]string, len(c.Interests)),
	}
	for i, club := range c.Clubs {
		out.Clubs[i] = club.Clone()
	}
	copy(out.Posts, c.Posts)
	copy(out.Events, c.Events)
	for i, chat := range c.Chats {
		out.Chats[i] = chat.Clone()
	}
	copy(out.Interests, c.Interests)
	return out
}

// ClubByID returns the club with the given id.
func (c *Catalog) ClubByID(id string) (models.Club, bool) {
	for _, club := range c.Clubs {
		if club.ID == id {
			return club, true
		}
	}
	return models.Club{}, false
}
