package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"lumawisp/luma"
	"lumawisp/store"
)

// demoPassword is the placeholder credential for the demo sign-in flow.
const demoPassword = "demo"

var errUserNotFound = errors.New("user not found")

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// CreateUser gets or creates a user by username.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ctx := c.Request.Context()

	user, err := h.Store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "storage_error", err)
		return
	}
	if user == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "internal_error", err)
			return
		}
		user, err = h.Store.CreateUser(ctx, req.Username, string(hash))
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "storage_error", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Progress reports a user's counters plus challenge and conversation totals.
func (h *Handler) Progress(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	user, err := h.Store.GetUser(ctx, userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "storage_error", err)
		return
	}
	if user == nil {
		RespondError(c, http.StatusNotFound, "user_not_found", errUserNotFound)
		return
	}

	challenges, err := h.Store.GetUserChallenges(ctx, userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "storage_error", err)
		return
	}
	conversations, err := h.Store.GetConversationsByUser(ctx, userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "storage_error", err)
		return
	}

	completed := 0
	for _, ch := range challenges {
		if ch.Completed != nil {
			completed++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"wispstars":     user.Wispstars,
			"crystalCrumbs": user.CrystalCrumbs,
			"currentRealm":  user.CurrentRealm,
		},
		"challengesCompleted": completed,
		"totalConversations":  len(conversations),
	})
}

type completeChallengeRequest struct {
	UserID        string `json:"userId" binding:"required"`
	ChallengeType string `json:"challengeType" binding:"required"`
	Realm         string `json:"realm"`
}

// CompleteChallenge records an already-completed challenge and awards one
// wispstar and one crystal crumb. There is no pending-challenge state.
func (h *Handler) CompleteChallenge(c *gin.Context) {
	var req completeChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var realm luma.Realm
	if req.Realm != "" {
		var err error
		realm, err = luma.ParseRealm(req.Realm)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_realm", err)
			return
		}
	}
	ctx := c.Request.Context()

	now := time.Now().UTC()
	challenge, err := h.Store.CreateChallenge(ctx, req.UserID, req.ChallengeType, realm, &now)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "storage_error", err)
		return
	}

	user, err := h.Store.GetUser(ctx, req.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "storage_error", err)
		return
	}
	if user != nil {
		stars := user.Wispstars + 1
		crumbs := user.CrystalCrumbs + 1
		if _, err := h.Store.UpdateUser(ctx, user.ID, store.UserUpdate{
			Wispstars:     &stars,
			CrystalCrumbs: &crumbs,
		}); err != nil {
			RespondError(c, http.StatusInternalServerError, "storage_error", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"challenge": challenge,
		"pointsAwarded": gin.H{
			"wispstars":     1,
			"crystalCrumbs": 1,
		},
	})
}

func userRealmUpdate(realm luma.Realm) store.UserUpdate {
	return store.UserUpdate{CurrentRealm: &realm}
}
