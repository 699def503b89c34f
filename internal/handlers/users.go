package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/founderhub/founderhub/internal/models"
)

func (h *Handlers) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": h.store.Users()})
}

func (h *Handlers) GetUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, ok := h.store.UserByID(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handlers) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.CurrentUser())
}

// UpdateProfile merges the provided fields over the current user. Omitted
// fields keep their values; a provided name must not be blank.
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	trimField(update.Name)
	trimField(update.Role)
	trimField(update.Company)
	trimField(update.Location)
	trimField(update.Website)
	trimField(update.Bio)

	if update.Name != nil && *update.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
		return
	}

	c.JSON(http.StatusOK, h.store.UpdateProfile(update))
}

func trimField(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
