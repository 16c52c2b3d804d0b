package models

// User is the single signed-in student of a session
type User struct {
	ID         string   `json:"id" yaml:"id" example:"currentUser"`
	Name       string   `json:"name" yaml:"name" example:"Alex Thompson"`
	Email      string   `json:"email" yaml:"email" example:"alex.thompson@queensu.ca"`
	Avatar     string   `json:"avatar" yaml:"avatar"`
	Bio        string   `json:"bio" yaml:"bio"`
	Location   string   `json:"location" yaml:"location" example:"Kingston, ON"`
	JoinDate   string   `json:"joinDate" yaml:"joinDate" example:"September 2023"`
	Interests  []string `json:"interests" yaml:"interests"`
	AdminClubs []string `json:"adminClubs" yaml:"adminClubs"` // IDs of clubs the user administers
}

// IsAdminOf reports whether the user administers the club with the given id.
func (u *User) IsAdminOf(clubID string) bool {
	for _, id := range u.AdminClubs {
		if id == clubID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with u.
func (u User) Clone() User {
	u.Interests = cloneStrings(u.Interests)
	u.AdminClubs = cloneStrings(u.AdminClubs)
	return u
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
