package services

import (
	"github.com/yigit/clubr/internal/app/models"
	"github.com/yigit/clubr/internal/app/session"
)

// Intent is a named user action run against one session store
type Intent struct {
	Name  string
	apply func(s *session.Store) session.Result
}

func intent(name string, apply func(s *session.Store) session.Result) Intent {
	return Intent{Name: name, apply: apply}
}

// LogoutIntent returns to the login screen
func LogoutIntent() Intent {
	return intent("logout", (*session.Store).Logout)
}

// CompleteInterestsIntent records the chosen interests
func CompleteInterestsIntent(tags []string) Intent {
	return intent("completeInterestSelection", func(s *session.Store) session.Result {
		return s.CompleteInterestSelection(tags)
	})
}

// NavigateIntent switches screens
func NavigateIntent(screen models.Screen) Intent {
	return intent("navigate", func(s *session.Store) session.Result {
		return s.Navigate(screen)
	})
}

// SelectClubIntent opens a club
func SelectClubIntent(clubID string) Intent {
	return intent("selectClub", func(s *session.Store) session.Result {
		return s.SelectClub(clubID)
	})
}

// OpenPostIntent opens the club that published a post
func OpenPostIntent(postID string) Intent {
	return intent("openPost", func(s *session.Store) session.Result {
		return s.OpenPost(postID)
	})
}

// OpenEventIntent opens the club hosting an event
func OpenEventIntent(eventID string) Intent {
	return intent("openEvent", func(s *session.Store) session.Result {
		return s.OpenEvent(eventID)
	})
}

// MessageAdminIntent opens the messages screen
func MessageAdminIntent() Intent {
	return intent("messageAdmin", (*session.Store).MessageAdmin)
}

// ToggleFollowIntent follows or unfollows a club
func ToggleFollowIntent(clubID string) Intent {
	return intent("toggleFollow", func(s *session.Store) session.Result {
		return s.ToggleFollow(clubID)
	})
}

// ToggleAdminModeIntent enters or leaves admin mode
func ToggleAdminModeIntent(clubID string) Intent {
	return intent("toggleAdminMode", func(s *session.Store) session.Result {
		return s.ToggleAdminMode(clubID)
	})
}

// CreatePostIntent publishes a post as the admin club
func CreatePostIntent(content, image string) Intent {
	return intent("createPost", func(s *session.Store) session.Result {
		return s.CreatePost(content, image)
	})
}

// CreateEventIntent schedules an event for the admin club
func CreateEventIntent(details models.EventDetails) Intent {
	return intent("createEvent", func(s *session.Store) session.Result {
		return s.CreateEvent(details)
	})
}

// UpdateClubIntent edits the admin club
func UpdateClubIntent(patch models.ClubPatch) Intent {
	return intent("updateClub", func(s *session.Store) session.Result {
		return s.UpdateClub(patch)
	})
}

// UpdateProfileIntent edits the user's profile
func UpdateProfileIntent(patch session.ProfilePatch) Intent {
	return intent("updateProfile", func(s *session.Store) session.Result {
		return s.UpdateProfile(patch)
	})
}

// SendMessageIntent writes into a chat
func SendMessageIntent(chatID, content string) Intent {
	return intent("sendMessage", func(s *session.Store) session.Result {
		return s.SendMessage(chatID, content)
	})
}

// MarkChatReadIntent clears a chat's unread badge
func MarkChatReadIntent(chatID string) Intent {
	return intent("markChatRead", func(s *session.Store) session.Result {
		return s.MarkChatRead(chatID)
	})
}
