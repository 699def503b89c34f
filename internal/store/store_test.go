package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/founderhub/founderhub/internal/models"
)

func newTestStore() *Store {
	users := []models.User{
		{ID: 1, Name: "Ada Fontaine", Company: "Acme", IsFounder: true},
		{ID: 2, Name: "Ben Ortiz", Company: "Zeta"},
	}
	posts := []models.Post{
		{ID: 2, Author: users[1], Content: "second", Likes: 3, Timestamp: time.Unix(1_700_000_100, 0)},
		{ID: 1, Author: users[0], Content: "first", Likes: 1, Timestamp: time.Unix(1_700_000_000, 0)},
	}
	groups := []models.ChatGroup{
		{ID: 1, Name: "Tech Startups", Messages: []models.Message{
			{ID: 1, Sender: users[1], Content: "hi", Timestamp: time.Unix(1_700_000_000, 0)},
		}},
		{ID: 2, Name: "Funding & Investment"},
	}
	s := New(users, posts, groups, users[0])
	s.nowFn = func() time.Time { return time.Unix(1_700_100_000, 0) }
	return s
}

func TestAddPostPrependsWithSequentialID(t *testing.T) {
	s := newTestStore()

	post := s.AddPost("launching soon")

	assert.Equal(t, 3, post.ID)
	assert.Equal(t, "Ada Fontaine", post.Author.Name)
	assert.Zero(t, post.Likes)
	assert.Zero(t, post.Comments)
	assert.Zero(t, post.Shares)
	assert.Empty(t, post.Tags)
	assert.Equal(t, time.Unix(1_700_100_000, 0), post.Timestamp)

	posts := s.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, post, posts[0], "new post must be first")
	assert.Equal(t, 2, posts[1].ID, "existing order preserved")
}

func TestLikePostIncrementsPerClick(t *testing.T) {
	s := newTestStore()

	first, ok := s.LikePost(1)
	require.True(t, ok)
	assert.Equal(t, 2, first.Likes)

	second, ok := s.LikePost(1)
	require.True(t, ok)
	assert.Equal(t, 3, second.Likes, "likes are not de-duplicated per user")

	other := s.Posts()[0]
	assert.Equal(t, 3, other.Likes, "untouched posts keep their counters")
}

func TestLikePostUnknownIDLeavesCollectionEqual(t *testing.T) {
	s := newTestStore()
	before := s.Posts()

	_, ok := s.LikePost(99)

	assert.False(t, ok)
	assert.Equal(t, before, s.Posts())
}

func TestSendMessageAppendsToMatchingGroup(t *testing.T) {
	s := newTestStore()

	msg, ok := s.SendMessage(1, "hello")
	require.True(t, ok)

	assert.Equal(t, 2, msg.ID, "id follows current sequence length")
	assert.Equal(t, "hello", msg.Content)
	assert.Equal(t, "Ada Fontaine", msg.Sender.Name)

	group, found := s.ChatGroupByID(1)
	require.True(t, found)
	require.Len(t, group.Messages, 2)
	assert.Equal(t, msg, group.Messages[1], "append keeps chronological order")

	other, found := s.ChatGroupByID(2)
	require.True(t, found)
	assert.Empty(t, other.Messages, "other groups stay untouched")
}

func TestSendMessageUnknownGroupIsNoOp(t *testing.T) {
	s := newTestStore()
	before := s.ChatGroups()

	_, ok := s.SendMessage(42, "hello")

	assert.False(t, ok)
	assert.Equal(t, before, s.ChatGroups())
}

func TestSendMessageSnapshotStability(t *testing.T) {
	s := newTestStore()
	before := s.ChatGroups()
	beforeLen := len(before[0].Messages)

	_, ok := s.SendMessage(1, "hello")
	require.True(t, ok)

	assert.Len(t, before[0].Messages, beforeLen, "earlier snapshots must not grow")
}

func TestUpdateProfileMergesOverCurrentUser(t *testing.T) {
	s := newTestStore()

	bio := "building in public"
	company := "Acme Labs"
	updated := s.UpdateProfile(models.ProfileUpdate{Bio: &bio, Company: &company})

	assert.Equal(t, "building in public", updated.Bio)
	assert.Equal(t, "Acme Labs", updated.Company)
	assert.Equal(t, "Ada Fontaine", updated.Name, "unset fields survive the merge")
	assert.Equal(t, updated, s.CurrentUser())
}

func TestUpdateProfileDoesNotCascade(t *testing.T) {
	s := newTestStore()

	name := "Ada F."
	s.UpdateProfile(models.ProfileUpdate{Name: &name})

	listed, ok := s.UserByID(1)
	require.True(t, ok)
	assert.Equal(t, "Ada Fontaine", listed.Name, "users collection keeps the original entry")

	posts := s.Posts()
	assert.Equal(t, "Ada Fontaine", posts[1].Author.Name, "existing posts keep the author snapshot")

	post := s.AddPost("fresh")
	assert.Equal(t, "Ada F.", post.Author.Name, "new posts use the edited identity")
}
