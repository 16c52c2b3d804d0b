package models

// Club represents a student club
type Club struct {
	ID          string   `json:"id" db:"clubid" yaml:"id" example:"1"`
	Name        string   `json:"name" db:"clubname" yaml:"name" example:"Queen's Journal"`
	Description string   `json:"description" db:"description" yaml:"description"`
	CoverImage  string   `json:"coverImage" yaml:"coverImage"`
	Category    string   `json:"category" yaml:"category" example:"Media"`
	MemberCount int      `json:"memberCount" yaml:"memberCount" example:"87"`
	IsFollowing bool     `json:"isFollowing" yaml:"isFollowing"`
	Admins      []string `json:"admins" yaml:"admins"`
}

// Clone returns a copy that shares no slices with c.
func (c Club) Clone() Club {
	c.Admins = cloneStrings(c.Admins)
	return c
}

// ClubPatch carries a partial club update. Nil fields are left untouched.
type ClubPatch struct {
	Name        *string
	Description *string
	Category    *string
	CoverImage  *string
}

// Empty reports whether the patch changes nothing.
func (p ClubPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil && p.CoverImage == nil
}

// Apply merges the non-nil fields of p into c.
func (p ClubPatch) Apply(c *Club) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.CoverImage != nil {
		c.CoverImage = *p.CoverImage
	}
}
