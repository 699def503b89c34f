// Package store holds the in-memory source of truth for the demo: users,
// posts, chat groups and the current viewer. Mutations build new collections
// instead of editing shared ones, so snapshots handed to readers stay stable.
package store

import (
	"sync"
	"time"

	"github.com/founderhub/founderhub/internal/models"
)

type Store struct {
	mu          sync.Mutex
	users       []models.User
	posts       []models.Post
	chatGroups  []models.ChatGroup
	currentUser models.User
	nowFn       func() time.Time
}

// New wires the store with its seed collections. The current user is a
// distinguished snapshot; profile edits replace it without touching the
// users collection.
func New(users []models.User, posts []models.Post, chatGroups []models.ChatGroup, currentUser models.User) *Store {
	return &Store{
		users:       users,
		posts:       posts,
		chatGroups:  chatGroups,
		currentUser: currentUser,
		nowFn:       time.Now,
	}
}

// Users returns the current users snapshot. Callers must not modify it.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users
}

// Posts returns the current posts snapshot, newest first.
func (s *Store) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posts
}

// ChatGroups returns the current chat groups snapshot.
func (s *Store) ChatGroups() []models.ChatGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatGroups
}

func (s *Store) CurrentUser() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

func (s *Store) UserByID(id int) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) ChatGroupByID(id int) (models.ChatGroup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.chatGroups {
		if g.ID == id {
			return g, true
		}
	}
	return models.ChatGroup{}, false
}

// AddPost prepends a post authored by the current user. Ids follow the
// collection length; posts are never deleted, so the scheme cannot collide.
func (s *Store) AddPost(content string) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.Post{
		ID:        len(s.posts) + 1,
		Author:    s.currentUser,
		Content:   content,
		Tags:      []string{},
		Timestamp: s.nowFn(),
	}

	next := make([]models.Post, 0, len(s.posts)+1)
	next = append(next, post)
	next = append(next, s.posts...)
	s.posts = next

	return post
}

// LikePost increments the like counter of the matching post. Likes are
// counted per click, not per user. An unknown id leaves the collection
// untouched and reports false.
func (s *Store) LikePost(postID int) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var liked models.Post
	found := false
	next := make([]models.Post, len(s.posts))
	for i, p := range s.posts {
		if p.ID == postID {
			p.Likes++
			liked = p
			found = true
		}
		next[i] = p
	}
	if !found {
		return models.Post{}, false
	}

	s.posts = next
	return liked, true
}

// SendMessage appends a message from the current user to the matching group.
// Message ids are scoped to the group. An unknown group id is a no-op.
func (s *Store) SendMessage(groupID int, content string) (models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.chatGroups {
		if g.ID != groupID {
			continue
		}

		msg := models.Message{
			ID:        len(g.Messages) + 1,
			Sender:    s.currentUser,
			Content:   content,
			Timestamp: s.nowFn(),
		}

		msgs := make([]models.Message, 0, len(g.Messages)+1)
		msgs = append(msgs, g.Messages...)
		msgs = append(msgs, msg)

		next := make([]models.ChatGroup, len(s.chatGroups))
		copy(next, s.chatGroups)
		g.Messages = msgs
		next[i] = g
		s.chatGroups = next

		return msg, true
	}

	return models.Message{}, false
}

// UpdateProfile merges the set fields over the current user and replaces the
// current-user snapshot. Posts and messages authored earlier keep the
// identity they were created with.
func (s *Store) UpdateProfile(update models.ProfileUpdate) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.Company != nil {
		u.Company = *update.Company
	}
	if update.Location != nil {
		u.Location = *update.Location
	}
	if update.Website != nil {
		u.Website = *update.Website
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}

	s.currentUser = u
	return u
}
