package session

import (
	"sort"
	"strings"

	"github.com/yigit/clubr/internal/app/models"
)

// State is an immutable snapshot of a session. Every view slice is derived
// from it on demand and never cached.
type State struct {
	Screen         models.Screen
	User           models.User
	Clubs          []models.Club
	Posts          []models.Post
	Events         []models.Event
	Chats          []models.Chat
	Interests      []string // tags offered on the interest-selection screen
	SelectedClubID string
	AdminClubID    string
}

func (st State) clone() State {
	out := State{
		Screen:         st.Screen,
		User:           st.User.Clone(),
		Clubs:          make([]models.Club, len(st.Clubs)),
		Posts:          make([]models.Post, len(st.Posts)),
		Events:         make([]models.Event, len(st.Events)),
		Chats:          make([]models.Chat, len(st.Chats)),
		Interests:      make([]string, len(st.Interests)),
		SelectedClubID: st.SelectedClubID,
		AdminClubID:    st.AdminClubID,
	}
	for i, c := range st.Clubs {
		out.Clubs[i] = c.Clone()
	}
	copy(out.Posts, st.Posts)
	copy(out.Events, st.Events)
	for i, c := range st.Chats {
		out.Chats[i] = c.Clone()
	}
	copy(out.Interests, st.Interests)
	return out
}

func (st State) clubIndex(id string) int {
	for i := range st.Clubs {
		if st.Clubs[i].ID == id {
			return i
		}
	}
	return -1
}

func (st State) chatIndex(id string) int {
	for i := range st.Chats {
		if st.Chats[i].ID == id {
			return i
		}
	}
	return -1
}

func (st State) postTaken(id string) bool {
	for _, p := range st.Posts {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (st State) eventTaken(id string) bool {
	for _, e := range st.Events {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Club looks a club up by id.
func (st State) Club(id string) (models.Club, bool) {
	if i := st.clubIndex(id); i >= 0 {
		return st.Clubs[i], true
	}
	return models.Club{}, false
}

// Chat looks a chat up by id.
func (st State) Chat(id string) (models.Chat, bool) {
	if i := st.chatIndex(id); i >= 0 {
		return st.Chats[i], true
	}
	return models.Chat{}, false
}

// SelectedClub resolves the selected club against the club collection.
func (st State) SelectedClub() (models.Club, bool) {
	if st.SelectedClubID == "" {
		return models.Club{}, false
	}
	return st.Club(st.SelectedClubID)
}

// AdminClub resolves the active admin club against the club collection.
func (st State) AdminClub() (models.Club, bool) {
	if st.AdminClubID == "" {
		return models.Club{}, false
	}
	return st.Club(st.AdminClubID)
}

// IsAdminView reports whether the club screen should render the admin variant.
func (st State) IsAdminView() bool {
	return st.SelectedClubID != "" && st.SelectedClubID == st.AdminClubID
}

func (st State) filterClubs(keep func(models.Club) bool) []models.Club {
	out := make([]models.Club, 0, len(st.Clubs))
	for _, c := range st.Clubs {
		if keep(c) {
			out = append(out, c.Clone())
		}
	}
	return out
}

// AdminClubs returns the clubs the user may switch into admin mode for,
// in club collection order.
func (st State) AdminClubs() []models.Club {
	return st.filterClubs(func(c models.Club) bool { return st.User.IsAdminOf(c.ID) })
}

// DiscoveryClubs returns the clubs the user does not follow.
func (st State) DiscoveryClubs() []models.Club {
	return st.filterClubs(func(c models.Club) bool { return !c.IsFollowing })
}

// FollowedClubs returns the clubs the user follows.
func (st State) FollowedClubs() []models.Club {
	return st.filterClubs(func(c models.Club) bool { return c.IsFollowing })
}

// HasFollowingClubs reports whether at least one club is followed.
func (st State) HasFollowingClubs() bool {
	for _, c := range st.Clubs {
		if c.IsFollowing {
			return true
		}
	}
	return false
}

func (st State) followedSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, c := range st.Clubs {
		if c.IsFollowing {
			set[c.ID] = struct{}{}
		}
	}
	return set
}

// FollowedPosts returns the posts of followed clubs in collection order.
func (st State) FollowedPosts() []models.Post {
	followed := st.followedSet()
	out := make([]models.Post, 0, len(st.Posts))
	for _, p := range st.Posts {
		if _, ok := followed[p.ClubID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// FollowedEvents returns the events of followed clubs in collection order.
func (st State) FollowedEvents() []models.Event {
	followed := st.followedSet()
	out := make([]models.Event, 0, len(st.Events))
	for _, e := range st.Events {
		if _, ok := followed[e.ClubID]; ok {
			out = append(out, e)
		}
	}
	return out
}

// ClubPosts returns the posts whose owning club is clubID.
func (st State) ClubPosts(clubID string) []models.Post {
	out := make([]models.Post, 0)
	for _, p := range st.Posts {
		if p.ClubID == clubID {
			out = append(out, p)
		}
	}
	return out
}

// ClubEvents returns the events whose owning club is clubID.
func (st State) ClubEvents(clubID string) []models.Event {
	out := make([]models.Event, 0)
	for _, e := range st.Events {
		if e.ClubID == clubID {
			out = append(out, e)
		}
	}
	return out
}

// SelectedClubPosts returns the selected club's posts, or nothing when no club is selected.
func (st State) SelectedClubPosts() []models.Post {
	if st.SelectedClubID == "" {
		return []models.Post{}
	}
	return st.ClubPosts(st.SelectedClubID)
}

// SelectedClubEvents returns the selected club's events, or nothing when no club is selected.
func (st State) SelectedClubEvents() []models.Event {
	if st.SelectedClubID == "" {
		return []models.Event{}
	}
	return st.ClubEvents(st.SelectedClubID)
}

// SearchDiscovery filters the discovery clubs by a case-insensitive substring
// of name, description or category. A blank query matches everything.
func (st State) SearchDiscovery(query string) []models.Club {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return st.DiscoveryClubs()
	}
	return st.filterClubs(func(c models.Club) bool {
		return !c.IsFollowing &&
			(strings.Contains(strings.ToLower(c.Name), q) ||
				strings.Contains(strings.ToLower(c.Description), q) ||
				strings.Contains(strings.ToLower(c.Category), q))
	})
}

// RecommendedClubs orders the discovery clubs so that those whose category is
// one of the user's interests come first. Ties keep collection order.
func (st State) RecommendedClubs() []models.Club {
	interests := make(map[string]struct{}, len(st.User.Interests))
	for _, tag := range st.User.Interests {
		interests[strings.ToLower(tag)] = struct{}{}
	}
	clubs := st.DiscoveryClubs()
	score := func(c models.Club) int {
		if _, ok := interests[strings.ToLower(c.Category)]; ok {
			return 1
		}
		return 0
	}
	sort.SliceStable(clubs, func(i, j int) bool {
		return score(clubs[i]) > score(clubs[j])
	})
	return clubs
}
