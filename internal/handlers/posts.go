package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type createPostRequest struct {
	Content string `json:"content"`
}

func (h *Handlers) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": h.store.Posts()})
}

func (h *Handlers) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	post := h.store.AddPost(content)
	c.JSON(http.StatusCreated, post)
}

// LikePost increments the like counter. Liking an unknown post is not an
// error, it just changes nothing.
func (h *Handlers) LikePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, ok := h.store.LikePost(postID)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, post)
}
