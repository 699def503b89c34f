package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/founderhub/founderhub/internal/feed"
	"github.com/founderhub/founderhub/internal/models"
)

type chatGroupSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Members      int    `json:"members"`
	Image        string `json:"image"`
	MessageCount int    `json:"message_count"`
}

type feedResponse struct {
	TrendingTopics   []string           `json:"trending_topics"`
	LatestPosts      []models.Post      `json:"latest_posts"`
	RecommendedUsers []models.User      `json:"recommended_users"`
	PopularGroups    []chatGroupSummary `json:"popular_groups"`
	UpcomingEvents   []models.Event     `json:"upcoming_events"`
}

func (h *Handlers) GetFeed(c *gin.Context) {
	posts := h.store.Posts()
	users := h.store.Users()
	groups := h.store.ChatGroups()
	current := h.store.CurrentUser()

	h.rngMu.Lock()
	recommended := feed.RecommendedUsers(users, current, 3, h.rng)
	h.rngMu.Unlock()

	c.JSON(http.StatusOK, feedResponse{
		TrendingTopics:   feed.TrendingTags(posts, 5),
		LatestPosts:      feed.LatestPosts(posts, 3),
		RecommendedUsers: recommended,
		PopularGroups:    summarizeGroups(feed.PopularGroups(groups, 3)),
		UpcomingEvents:   feed.UpcomingEvents(),
	})
}

func summarizeGroups(groups []models.ChatGroup) []chatGroupSummary {
	summaries := make([]chatGroupSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, chatGroupSummary{
			ID:           g.ID,
			Name:         g.Name,
			Description:  g.Description,
			Members:      g.Members,
			Image:        g.Image,
			MessageCount: len(g.Messages),
		})
	}
	return summaries
}
