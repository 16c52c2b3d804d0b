package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_ReferencesAreConsistent(t *testing.T) {
	c := DefaultCatalog()

	clubIDs := make(map[string]string, len(c.Clubs))
	for _, club := range c.Clubs {
		_, dup := clubIDs[club.ID]
		require.False(t, dup, "duplicate club id %s", club.ID)
		clubIDs[club.ID] = club.Name
	}

	for _, p := range c.Posts {
		name, ok := clubIDs[p.ClubID]
		require.True(t, ok, "post %s references unknown club %s", p.ID, p.ClubID)
		assert.Equal(t, name, p.ClubName, "post %s", p.ID)
	}
	for _, e := range c.Events {
		name, ok := clubIDs[e.ClubID]
		require.True(t, ok, "event %s references unknown club %s", e.ID, e.ClubID)
		assert.Equal(t, name, e.ClubName, "event %s", e.ID)
	}
	for _, id := range c.User.AdminClubs {
		_, ok := clubIDs[id]
		assert.True(t, ok, "admin club %s missing", id)
	}
}

func TestFixtureSource_LoadReturnsFreshCopies(t *testing.T) {
	src := NewFixtureSource()

	first, err := src.Load(context.Background())
	require.NoError(t, err)
	first.Clubs[0].IsFollowing = false
	first.Interests[0] = "changed"

	second, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Clubs[0].IsFollowing)
	assert.Equal(t, "Media", second.Interests[0])
	assert.Equal(t, "Media", Interests[0])
}
