package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/founderhub/founderhub/internal/chat"
)

type sendMessageRequest struct {
	Content string `json:"content"`
}

// OpenChats is the chat screen entry point. An optional group_id deep link
// selects that group when it exists; otherwise the session falls back per
// its resolution rules. The group list can be narrowed with a query param.
func (h *Handlers) OpenChats(c *gin.Context) {
	groupID := 0
	if raw := c.Query("group_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
			return
		}
		groupID = id
	}

	h.chatMu.Lock()
	h.session.Open(groupID)
	selected, hasSelected := h.session.Selected()
	h.chatMu.Unlock()

	groups := chat.SearchGroups(h.store.ChatGroups(), c.Query("query"))

	resp := gin.H{"groups": summarizeGroups(groups), "selected": nil}
	if hasSelected {
		resp["selected"] = selected
	}
	c.JSON(http.StatusOK, resp)
}

// SelectChat switches the session to the given group. An unknown id is not
// an error; the session keeps or falls back to a valid selection and the
// response reports where it landed.
func (h *Handlers) SelectChat(c *gin.Context) {
	groupID, err := strconv.Atoi(c.Param("group_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}

	h.chatMu.Lock()
	h.session.Open(groupID)
	selected, hasSelected := h.session.Selected()
	h.chatMu.Unlock()

	if !hasSelected {
		c.JSON(http.StatusOK, gin.H{"selected": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": selected})
}

func (h *Handlers) SendChatMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	h.chatMu.Lock()
	message, ok := h.session.Send(content)
	groupID := h.session.SelectedID()
	h.chatMu.Unlock()

	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "no chat selected"})
		return
	}

	h.broadcastMessage(groupID, message)
	c.JSON(http.StatusCreated, message)
}
