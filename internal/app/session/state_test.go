package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/clubr/internal/app/models"
	"github.com/yigit/clubr/internal/seed"
)

func clubIDs(clubs []models.Club) []string {
	ids := make([]string, 0, len(clubs))
	for _, c := range clubs {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestState_FollowedAndDiscoveryPartitionClubs(t *testing.T) {
	s := newTestStore(t)
	toggles := []string{"3", "1", "8", "3", "5", "2"}

	for _, id := range toggles {
		s.ToggleFollow(id)

		st := s.Snapshot()
		followed := st.FollowedClubs()
		discovery := st.DiscoveryClubs()
		assert.Len(t, append(followed, discovery...), len(st.Clubs))

		seen := make(map[string]bool)
		for _, c := range followed {
			assert.True(t, c.IsFollowing)
			seen[c.ID] = true
		}
		for _, c := range discovery {
			assert.False(t, c.IsFollowing)
			assert.False(t, seen[c.ID], "club %s in both views", c.ID)
		}
		assert.Equal(t, len(followed) > 0, st.HasFollowingClubs())
	}
}

func TestState_FollowedFeed(t *testing.T) {
	s := newTestStore(t)
	st := s.Snapshot()

	posts := st.FollowedPosts()
	require.Len(t, posts, 3)
	for _, p := range posts {
		assert.Contains(t, []string{"1", "2"}, p.ClubID)
	}

	events := st.FollowedEvents()
	var ids []string
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e1", "e2"}, ids)

	s.ToggleFollow("3")
	events = s.Snapshot().FollowedEvents()
	require.Len(t, events, 3)
	assert.Equal(t, "e4", events[2].ID, "collection order is kept")
}

func TestState_AdminClubs(t *testing.T) {
	st := newTestStore(t).Snapshot()
	assert.Equal(t, []string{"1", "2"}, clubIDs(st.AdminClubs()))
}

func TestState_SelectedClubViews(t *testing.T) {
	s := newTestStore(t)
	st := s.Snapshot()
	assert.Empty(t, st.SelectedClubPosts())
	assert.Empty(t, st.SelectedClubEvents())

	s.SelectClub("1")
	st = s.Snapshot()
	for _, p := range st.SelectedClubPosts() {
		assert.Equal(t, "1", p.ClubID)
	}
	assert.Len(t, st.SelectedClubPosts(), 2)
	assert.Len(t, st.SelectedClubEvents(), 1)
}

func TestState_SearchDiscovery(t *testing.T) {
	st := newTestStore(t).Snapshot()

	assert.Equal(t, clubIDs(st.DiscoveryClubs()), clubIDs(st.SearchDiscovery("  ")))
	assert.Equal(t, []string{"5"}, clubIDs(st.SearchDiscovery("cfrc")))
	assert.Empty(t, st.SearchDiscovery("journal"), "followed clubs never match")
	assert.Empty(t, st.SearchDiscovery("no such club"))
}

func TestState_RecommendedClubs(t *testing.T) {
	s := newTestStore(t)
	s.CompleteInterestSelection([]string{"politics"})
	st := s.Snapshot()

	recommended := st.RecommendedClubs()
	require.Len(t, recommended, len(st.DiscoveryClubs()))
	assert.Equal(t, "3", recommended[0].ID)

	rest := clubIDs(recommended[1:])
	var expected []string
	for _, c := range st.DiscoveryClubs() {
		if c.ID != "3" {
			expected = append(expected, c.ID)
		}
	}
	assert.Equal(t, expected, rest)
}

func TestState_ClubUpdatePropagates(t *testing.T) {
	s := newTestStore(t)
	s.ToggleAdminMode("2")
	s.UpdateClub(models.ClubPatch{CoverImage: strPtr("https://example.com/new.jpg")})

	st := s.Snapshot()
	for _, c := range st.AdminClubs() {
		if c.ID == "2" {
			assert.Equal(t, "https://example.com/new.jpg", c.CoverImage)
		}
	}
	club, ok := st.SelectedClub()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/new.jpg", club.CoverImage)
	assert.NotEqual(t, seed.Clubs()[1].CoverImage, club.CoverImage)
}
