// Package server wires the HTTP router.
package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lumawisp/handlers"
)

type RouterConfig struct {
	Handler *handlers.Handler
	Log     *zap.SugaredLogger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(cfg.Log))

	// The widget and the Twine macros call this API from arbitrary origins.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Requested-With"},
	}))

	h := cfg.Handler
	router.GET("/", h.Banner)

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)

		api.POST("/luma/chat", h.Chat)
		api.POST("/luma/transform", h.Transform)
		api.GET("/luma/thought/:realm", h.Thought)
		api.GET("/luma/conversation/:id/transcript", h.Transcript)

		api.POST("/user", h.CreateUser)
		api.GET("/user/:userId/progress", h.Progress)
		api.POST("/challenges/complete", h.CompleteChallenge)

		api.GET("/twine/luma-state/:realm", h.TwineState)
		api.GET("/twine/story-code/:realm", h.TwineStoryCode)
		api.GET("/lms/embed-code/:realm", h.LMSEmbedCode)
	}

	return router
}

// RequestLogger logs every request with method, path, status and duration.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}

		switch {
		case status >= 500:
			log.Errorw("HTTP request", fields...)
		case status >= 400:
			log.Warnw("HTTP request", fields...)
		default:
			log.Infow("HTTP request", fields...)
		}
	}
}
