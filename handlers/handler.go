// Package handlers implements the Luma Wisp HTTP API.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lumawisp/store"
	"lumawisp/wisp"
)

type Handler struct {
	Store  store.Store
	Engine *wisp.Engine
	Log    *zap.SugaredLogger
	// BaseURL, when set, overrides the request host in generated snippets.
	BaseURL string
	Env     string
}

func New(st store.Store, engine *wisp.Engine, log *zap.SugaredLogger, baseURL, env string) *Handler {
	return &Handler{Store: st, Engine: engine, Log: log, BaseURL: baseURL, Env: env}
}

// Banner answers the root path with a service identity payload.
func (h *Handler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "LumaWisp Backend API",
		"status":  "running",
		"version": "1.0.0",
	})
}

// Health is the deployment monitoring endpoint.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   timestamp(),
		"environment": h.Env,
	})
}

func (h *Handler) baseURL(c *gin.Context) string {
	if h.BaseURL != "" {
		return h.BaseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
