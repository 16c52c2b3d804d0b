package session

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/yigit/clubr/internal/app/catalog"
	"github.com/yigit/clubr/internal/app/models"
	"github.com/yigit/clubr/internal/pkg/apperrors"
	"github.com/yigit/clubr/internal/pkg/validation"
)

// JustNow is the display timestamp given to freshly created posts.
const JustNow = "Just now"

// messageTimeLayout formats chat message timestamps, e.g. "10:35 AM".
const messageTimeLayout = "3:04 PM"

// Store owns the state of one session. Intents are the only way to mutate it.
// Each intent runs to completion under the write lock, so a Snapshot never
// observes a partially applied update.
type Store struct {
	mu    sync.RWMutex
	state State
	now   func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces the clock used for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store seeded from a private copy of c, starting on the login screen.
func NewStore(c *catalog.Catalog, opts ...Option) *Store {
	seed := c.Clone()
	s := &Store{
		state: State{
			Screen:    models.ScreenLogin,
			User:      seed.User,
			Clubs:     seed.Clubs,
			Posts:     seed.Posts,
			Events:    seed.Events,
			Chats:     seed.Chats,
			Interests: seed.Interests,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Screen returns the current screen.
func (s *Store) Screen() models.Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Screen
}

// nextID returns prefix+n, counting up past ids that are already taken.
func nextID(prefix string, n int, taken func(id string) bool) string {
	for {
		id := prefix + strconv.Itoa(n)
		if !taken(id) {
			return id
		}
		n++
	}
}

func (s *Store) update(fn func(st *State) Result) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := fn(&s.state)
	snapshot := s.state.clone()
	res.state = &snapshot
	return res
}

// Login moves past the login screen. Users without interests go to
// interest selection; otherwise home when something is followed, else discovery.
func (s *Store) Login() Result {
	return s.update(func(st *State) Result {
		switch {
		case len(st.User.Interests) == 0:
			st.Screen = models.ScreenInterests
		case st.HasFollowingClubs():
			st.Screen = models.ScreenHome
		default:
			st.Screen = models.ScreenDiscovery
		}
		return applied()
	})
}

// SignUp starts onboarding at the interest-selection screen.
func (s *Store) SignUp() Result {
	return s.update(func(st *State) Result {
		st.Screen = models.ScreenInterests
		return applied()
	})
}

// CompleteInterestSelection records the chosen tags and opens discovery.
// Blank tags are dropped and duplicates removed; an empty selection is rejected.
func (s *Store) CompleteInterestSelection(tags []string) Result {
	selected := normalizeTags(tags)
	if len(selected) == 0 {
		return rejected(apperrors.ErrValidationFailed, "select at least one interest")
	}
	return s.update(func(st *State) Result {
		st.User.Interests = selected
		st.Screen = models.ScreenDiscovery
		return applied()
	})
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// Logout returns to the login screen. Interests and admin mode are kept.
func (s *Store) Logout() Result {
	return s.update(func(st *State) Result {
		st.SelectedClubID = ""
		st.Screen = models.ScreenLogin
		return applied()
	})
}

// Navigate switches screens. Leaving the club screen clears the selection.
func (s *Store) Navigate(screen models.Screen) Result {
	if !screen.Valid() {
		return rejected(apperrors.ErrValidationFailed, fmt.Sprintf("unknown screen %q", screen))
	}
	return s.update(func(st *State) Result {
		if screen == models.ScreenClub {
			if _, ok := st.SelectedClub(); !ok {
				return rejected(apperrors.ErrNoClubSelected, "select a club before opening the club screen")
			}
		} else {
			st.SelectedClubID = ""
		}
		st.Screen = screen
		return applied()
	})
}

// SelectClub opens the club screen for clubID.
func (s *Store) SelectClub(clubID string) Result {
	return s.update(func(st *State) Result {
		return st.selectClub(clubID)
	})
}

func (st *State) selectClub(clubID string) Result {
	if st.clubIndex(clubID) < 0 {
		return rejected(apperrors.ErrClubNotFound, fmt.Sprintf("club %q not found", clubID))
	}
	st.SelectedClubID = clubID
	st.Screen = models.ScreenClub
	return applied()
}

// OpenPost opens the club screen of the club that published postID.
func (s *Store) OpenPost(postID string) Result {
	return s.update(func(st *State) Result {
		for _, p := range st.Posts {
			if p.ID == postID {
				return st.openOwner(p.ClubID)
			}
		}
		return rejected(apperrors.ErrResourceNotFound, fmt.Sprintf("post %q not found", postID))
	})
}

// OpenEvent opens the club screen of the club hosting eventID.
func (s *Store) OpenEvent(eventID string) Result {
	return s.update(func(st *State) Result {
		for _, e := range st.Events {
			if e.ID == eventID {
				return st.openOwner(e.ClubID)
			}
		}
		return rejected(apperrors.ErrResourceNotFound, fmt.Sprintf("event %q not found", eventID))
	})
}

func (st *State) openOwner(clubID string) Result {
	if st.clubIndex(clubID) < 0 {
		return noop(fmt.Sprintf("club %q no longer exists", clubID))
	}
	return st.selectClub(clubID)
}

// MessageAdmin opens the messages screen.
func (s *Store) MessageAdmin() Result {
	return s.Navigate(models.ScreenMessages)
}

// ToggleFollow flips the following flag of clubID. Unknown ids are a no-op.
func (s *Store) ToggleFollow(clubID string) Result {
	return s.update(func(st *State) Result {
		i := st.clubIndex(clubID)
		if i < 0 {
			return noop(fmt.Sprintf("club %q not found", clubID))
		}
		st.Clubs[i].IsFollowing = !st.Clubs[i].IsFollowing
		return applied()
	})
}

// ToggleAdminMode enters admin mode for clubID, or leaves it when clubID is empty.
// Only clubs the user administers are accepted.
func (s *Store) ToggleAdminMode(clubID string) Result {
	return s.update(func(st *State) Result {
		if clubID == "" {
			if st.AdminClubID == "" {
				return noop("admin mode is not active")
			}
			st.AdminClubID = ""
			return applied()
		}
		if st.clubIndex(clubID) < 0 {
			return rejected(apperrors.ErrClubNotFound, fmt.Sprintf("club %q not found", clubID))
		}
		if !st.User.IsAdminOf(clubID) {
			return rejected(apperrors.ErrNotClubAdmin, fmt.Sprintf("not an admin of club %q", clubID))
		}
		st.AdminClubID = clubID
		st.SelectedClubID = clubID
		st.Screen = models.ScreenClub
		return applied()
	})
}

// CreatePost publishes a post as the active admin club. The post goes to the
// front of the collection.
func (s *Store) CreatePost(content, image string) Result {
	return s.update(func(st *State) Result {
		club, ok := st.AdminClub()
		if !ok {
			return noop("admin mode is not active")
		}
		if !validation.NotBlank(content) {
			return rejected(apperrors.ErrValidationFailed, "post content is required")
		}
		post := models.Post{
			ID:         nextID("p", len(st.Posts)+1, st.postTaken),
			ClubID:     club.ID,
			ClubName:   club.Name,
			ClubAvatar: club.CoverImage,
			Content:    content,
			Image:      image,
			CreatedAt:  JustNow,
			Likes:      0,
		}
		st.Posts = append([]models.Post{post}, st.Posts...)
		return created(post.ID)
	})
}

// CreateEvent schedules an event for the active admin club. The event goes to
// the back of the collection.
func (s *Store) CreateEvent(details models.EventDetails) Result {
	return s.update(func(st *State) Result {
		club, ok := st.AdminClub()
		if !ok {
			return noop("admin mode is not active")
		}
		if !validation.NotBlank(details.Title) {
			return rejected(apperrors.ErrValidationFailed, "event title is required")
		}
		if !validation.ISODate(details.Date) {
			return rejected(apperrors.ErrValidationFailed, "event date must be formatted YYYY-MM-DD")
		}
		if !validation.NotBlank(details.Time) {
			return rejected(apperrors.ErrValidationFailed, "event time is required")
		}
		if !validation.NotBlank(details.Location) {
			return rejected(apperrors.ErrValidationFailed, "event location is required")
		}
		event := models.Event{
			ID:          nextID("e", len(st.Events)+1, st.eventTaken),
			ClubID:      club.ID,
			ClubName:    club.Name,
			Title:       details.Title,
			Date:        details.Date,
			Time:        details.Time,
			Location:    details.Location,
			Description: details.Description,
		}
		st.Events = append(st.Events, event)
		return created(event.ID)
	})
}

// UpdateClub merges patch into the active admin club. Posts and events keep
// the club name they were created with.
func (s *Store) UpdateClub(patch models.ClubPatch) Result {
	return s.update(func(st *State) Result {
		if st.AdminClubID == "" {
			return noop("admin mode is not active")
		}
		i := st.clubIndex(st.AdminClubID)
		if i < 0 {
			return noop(fmt.Sprintf("club %q no longer exists", st.AdminClubID))
		}
		if patch.Empty() {
			return noop("nothing to update")
		}
		if patch.Name != nil && !validation.NotBlank(*patch.Name) {
			return rejected(apperrors.ErrValidationFailed, "club name cannot be blank")
		}
		patch.Apply(&st.Clubs[i])
		return applied()
	})
}

// ProfilePatch carries a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	Name     *string
	Bio      *string
	Location *string
}

// UpdateProfile edits the user's display fields.
func (s *Store) UpdateProfile(patch ProfilePatch) Result {
	if patch.Name != nil && !validation.NotBlank(*patch.Name) {
		return rejected(apperrors.ErrValidationFailed, "name cannot be blank")
	}
	return s.update(func(st *State) Result {
		if patch.Name == nil && patch.Bio == nil && patch.Location == nil {
			return noop("nothing to update")
		}
		if patch.Name != nil {
			st.User.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Bio != nil {
			st.User.Bio = *patch.Bio
		}
		if patch.Location != nil {
			st.User.Location = *patch.Location
		}
		return applied()
	})
}

// SendMessage appends a message from the user to chatID and refreshes the
// chat preview. Messages live only as long as the session.
func (s *Store) SendMessage(chatID, content string) Result {
	if !validation.NotBlank(content) {
		return rejected(apperrors.ErrValidationFailed, "message content is required")
	}
	return s.update(func(st *State) Result {
		i := st.chatIndex(chatID)
		if i < 0 {
			return rejected(apperrors.ErrResourceNotFound, fmt.Sprintf("chat %q not found", chatID))
		}
		chat := &st.Chats[i]
		msg := models.Message{
			ID:           nextID("m", len(chat.Messages)+1, chat.HasMessage),
			SenderID:     st.User.ID,
			SenderName:   "You",
			SenderAvatar: st.User.Avatar,
			Content:      strings.TrimSpace(content),
			Timestamp:    s.now().Format(messageTimeLayout),
			IsRead:       true,
		}
		chat.Messages = append(chat.Messages, msg)
		chat.LastMessage = msg.Content
		chat.LastMessageTime = msg.Timestamp
		return created(msg.ID)
	})
}

// MarkChatRead clears the unread badge of chatID.
func (s *Store) MarkChatRead(chatID string) Result {
	return s.update(func(st *State) Result {
		i := st.chatIndex(chatID)
		if i < 0 {
			return rejected(apperrors.ErrResourceNotFound, fmt.Sprintf("chat %q not found", chatID))
		}
		chat := &st.Chats[i]
		unread := chat.UnreadCount > 0
		for j := range chat.Messages {
			if !chat.Messages[j].IsRead {
				chat.Messages[j].IsRead = true
				unread = true
			}
		}
		if !unread {
			return noop("chat already read")
		}
		chat.UnreadCount = 0
		return applied()
	})
}
