// Package chat resolves which chat group the viewer is looking at and
// scopes message sending to it. Selection is held as an id, never as a
// group value, so every read re-resolves against the live collection and
// freshly appended messages are always visible.
package chat

import (
	"strings"

	"github.com/founderhub/founderhub/internal/models"
	"github.com/founderhub/founderhub/internal/store"
)

// Session is the viewer's chat state: unselected, or selected by group id.
type Session struct {
	store      *store.Store
	selectedID int // 0 while unselected

	// OnSelect mirrors a selection change to the navigation collaborator so
	// the deep link stays consistent with the visible chat. May be nil.
	OnSelect func(groupID int)
}

func NewSession(st *store.Store) *Session {
	return &Session{store: st}
}

// Open resolves the active chat for the chat view. A supplied group id wins
// when it exists; otherwise the session falls back to its current selection
// if still valid, then to the first group, and stays unselected only when
// there are no groups at all.
func (s *Session) Open(groupID int) {
	groups := s.store.ChatGroups()

	if groupID != 0 && groupExists(groups, groupID) {
		s.selectTo(groupID)
		return
	}
	if s.selectedID != 0 && groupExists(groups, s.selectedID) {
		return
	}
	if len(groups) > 0 {
		s.selectTo(groups[0].ID)
		return
	}
	s.selectedID = 0
}

// Selected re-resolves the selected group by id against the live store.
func (s *Session) Selected() (models.ChatGroup, bool) {
	if s.selectedID == 0 {
		return models.ChatGroup{}, false
	}
	return s.store.ChatGroupByID(s.selectedID)
}

// SelectedID returns the selected group id, 0 while unselected.
func (s *Session) SelectedID() int {
	return s.selectedID
}

// Send appends a message from the current user to the selected chat. While
// unselected it is a no-op.
func (s *Session) Send(content string) (models.Message, bool) {
	if s.selectedID == 0 {
		return models.Message{}, false
	}
	return s.store.SendMessage(s.selectedID, content)
}

func (s *Session) selectTo(groupID int) {
	changed := s.selectedID != groupID
	s.selectedID = groupID
	if changed && s.OnSelect != nil {
		s.OnSelect(groupID)
	}
}

func groupExists(groups []models.ChatGroup, id int) bool {
	for _, g := range groups {
		if g.ID == id {
			return true
		}
	}
	return false
}

// SearchGroups filters groups by a case-insensitive name substring, in
// input order. An empty term matches everything.
func SearchGroups(groups []models.ChatGroup, term string) []models.ChatGroup {
	term = strings.ToLower(term)
	results := make([]models.ChatGroup, 0, len(groups))
	for _, g := range groups {
		if strings.Contains(strings.ToLower(g.Name), term) {
			results = append(results, g)
		}
	}
	return results
}
