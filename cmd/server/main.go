package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/founderhub/founderhub/internal/config"
	"github.com/founderhub/founderhub/internal/handlers"
	"github.com/founderhub/founderhub/internal/mockdata"
	"github.com/founderhub/founderhub/internal/store"
)

func main() {
	cfg := config.MustLoad()

	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	dataset := mockdata.Generate(mockdata.Options{
		Seed:      cfg.Mock.Seed,
		UserCount: cfg.Mock.UserCount,
		PostCount: cfg.Mock.PostCount,
	})
	st := store.New(dataset.Users, dataset.Posts, dataset.ChatGroups, dataset.CurrentUser)
	logger.Info("dataset generated",
		"users", len(dataset.Users),
		"posts", len(dataset.Posts),
		"chat_groups", len(dataset.ChatGroups),
	)

	router := setupRouter(logger, handlers.New(st, cfg.Mock.PageSize))

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     log.New(newServerErrorWriter(logger), "", 0),
	}

	go func() {
		logger.Info("server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func setupRouter(logger *slog.Logger, h *handlers.Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(slogGinLogger(logger))
	router.Use(corsMiddleware())

	h.RegisterRoutes(router)
	return router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
