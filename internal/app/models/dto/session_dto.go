package dto

import (
	"github.com/yigit/clubr/internal/app/models"
	"github.com/yigit/clubr/internal/app/session"
)

// --- Request DTOs ---

// InterestsRequest carries the tags chosen on the interest-selection screen
type InterestsRequest struct {
	Interests []string `json:"interests" binding:"required,min=1,dive,max=64"`
}

// NavigateRequest names the screen to switch to
type NavigateRequest struct {
	Screen string `json:"screen" binding:"required,oneof=login interests discovery home club messages clubs profile"`
}

// AdminModeRequest enters admin mode for ClubID, or leaves it when empty
type AdminModeRequest struct {
	ClubID string `json:"clubId"`
}

// CreatePostRequest represents a post published by the active admin club
type CreatePostRequest struct {
	Content string `json:"content" binding:"required,notblank"`
	Image   string `json:"image" binding:"omitempty,url"`
}

// CreateEventRequest represents an event scheduled by the active admin club
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,notblank"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"required,notblank"`
	Location    string `json:"location" binding:"required,notblank"`
	Description string `json:"description"`
}

// ToDetails converts the request into store input
func (r CreateEventRequest) ToDetails() models.EventDetails {
	return models.EventDetails{
		Title:       r.Title,
		Date:        r.Date,
		Time:        r.Time,
		Location:    r.Location,
		Description: r.Description,
	}
}

// UpdateClubRequest is a partial update of the active admin club
type UpdateClubRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	CoverImage  *string `json:"coverImage" binding:"omitempty,url"`
}

// ToPatch converts the request into store input
func (r UpdateClubRequest) ToPatch() models.ClubPatch {
	return models.ClubPatch{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		CoverImage:  r.CoverImage,
	}
}

// UpdateProfileRequest is a partial update of the user's profile
type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,notblank"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
}

// ToPatch converts the request into store input
func (r UpdateProfileRequest) ToPatch() session.ProfilePatch {
	return session.ProfilePatch{
		Name:     r.Name,
		Bio:      r.Bio,
		Location: r.Location,
	}
}

// SendMessageRequest represents a message typed into a chat
type SendMessageRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

// --- Response DTOs ---

// ClubDetail is the club screen: the club with its own posts and events
type ClubDetail struct {
	Club        models.Club    `json:"club"`
	Posts       []models.Post  `json:"posts"`
	Events      []models.Event `json:"events"`
	IsAdminView bool           `json:"isAdminView"`
}

// SessionView is what the rendering layer needs to draw the current screen
type SessionView struct {
	Screen            models.Screen `json:"screen"`
	User              models.User   `json:"user"`
	SelectedClub      *ClubDetail   `json:"selectedClub,omitempty"`
	AdminClub         *models.Club  `json:"adminClub,omitempty"`
	AdminClubs        []models.Club `json:"adminClubs"`
	HasFollowingClubs bool          `json:"hasFollowingClubs"`
	UnreadMessages    int           `json:"unreadMessages"`
}

// IntentResponse reports the outcome of an intent together with the new view
type IntentResponse struct {
	Outcome session.Outcome `json:"outcome"`
	Reason  string          `json:"reason,omitempty"`
	Ref     string          `json:"ref,omitempty"`
	View    SessionView     `json:"view"`
}

// LoginResponse hands out the session token
type LoginResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"tokenType"`
	ExpiresIn int         `json:"expiresIn"`
	View      SessionView `json:"view"`
}

// FeedResponse is the home screen
type FeedResponse struct {
	Posts      []models.Post  `json:"posts"`
	Events     []models.Event `json:"events"`
	Pagination PaginationInfo `json:"pagination"`
}

// ProfileResponse is the profile screen
type ProfileResponse struct {
	User          models.User   `json:"user"`
	FollowedClubs []models.Club `json:"followedClubs"`
	AdminClubs    []models.Club `json:"adminClubs"`
	AdminClubID   string        `json:"adminClubId,omitempty"`
}

// InterestsResponse lists the selectable tags and the user's current choice
type InterestsResponse struct {
	Available []string `json:"available"`
	Selected  []string `json:"selected"`
}

// ChatListResponse is the messages screen
type ChatListResponse struct {
	Chats []models.Chat `json:"chats"`
}

// NewClubDetail builds the club screen for club
func NewClubDetail(st *session.State, club models.Club) ClubDetail {
	return ClubDetail{
		Club:        club,
		Posts:       st.ClubPosts(club.ID),
		Events:      st.ClubEvents(club.ID),
		IsAdminView: st.AdminClubID != "" && st.AdminClubID == club.ID,
	}
}

// NewSessionView derives the view model from a snapshot
func NewSessionView(st session.State) SessionView {
	view := SessionView{
		Screen:            st.Screen,
		User:              st.User,
		AdminClubs:        st.AdminClubs(),
		HasFollowingClubs: st.HasFollowingClubs(),
	}
	if club, ok := st.SelectedClub(); ok {
		detail := NewClubDetail(&st, club)
		view.SelectedClub = &detail
	}
	if club, ok := st.AdminClub(); ok {
		view.AdminClub = &club
	}
	for _, chat := range st.Chats {
		view.UnreadMessages += chat.UnreadCount
	}
	return view
}

// NewIntentResponse pairs a result with the view after it
func NewIntentResponse(res session.Result, st session.State) IntentResponse {
	return IntentResponse{
		Outcome: res.Outcome,
		Reason:  res.Reason,
		Ref:     res.Ref,
		View:    NewSessionView(st),
	}
}

// NewProfileResponse builds the profile screen
func NewProfileResponse(st session.State) ProfileResponse {
	return ProfileResponse{
		User:          st.User,
		FollowedClubs: st.FollowedClubs(),
		AdminClubs:    st.AdminClubs(),
		AdminClubID:   st.AdminClubID,
	}
}
