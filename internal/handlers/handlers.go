// Package handlers exposes the store, directory views and chat session over
// gin routes shaped after the SPA screens they back.
package handlers

import (
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/founderhub/founderhub/internal/chat"
	"github.com/founderhub/founderhub/internal/directory"
	"github.com/founderhub/founderhub/internal/models"
	"github.com/founderhub/founderhub/internal/store"
)

type Handlers struct {
	store      *store.Store
	founders   *directory.View[models.User, directory.FounderCriteria]
	businesses *directory.View[models.Business, directory.BusinessCriteria]

	chatMu  sync.Mutex
	session *chat.Session

	hub        *Hub
	wsUpgrader websocket.Upgrader

	rngMu sync.Mutex
	rng   *rand.Rand
}

func New(st *store.Store, pageSize int) *Handlers {
	h := &Handlers{
		store:      st,
		founders:   directory.NewFoundersView(st.Users, pageSize),
		businesses: directory.NewBusinessesView(st.Users, pageSize),
		session:    chat.NewSession(st),
		hub:        NewHub(),
		wsUpgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	h.session.OnSelect = func(groupID int) {
		slog.Default().Debug("chat selected", "group_id", groupID)
	}
	return h
}

func (h *Handlers) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")

	api.GET("/feed", h.GetFeed)

	api.GET("/posts", h.ListPosts)
	api.POST("/posts", h.CreatePost)
	api.POST("/posts/:post_id/like", h.LikePost)

	api.GET("/founders", h.ListFounders)
	api.GET("/businesses", h.ListBusinesses)
	api.GET("/directory/options", h.DirectoryOptions)

	api.GET("/users", h.ListUsers)
	api.GET("/users/:user_id", h.GetUser)
	api.GET("/me", h.GetProfile)
	api.PUT("/me", h.UpdateProfile)

	api.GET("/chats", h.OpenChats)
	api.POST("/chats/:group_id/select", h.SelectChat)
	api.POST("/chats/messages", h.SendChatMessage)

	api.GET("/ws", h.HandleWebSocket)
}
