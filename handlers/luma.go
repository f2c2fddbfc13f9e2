package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lumawisp/luma"
)

type chatRequest struct {
	Message        string `json:"message" binding:"required"`
	Realm          string `json:"realm" binding:"required"`
	UserID         string `json:"userId"`
	ConversationID string `json:"conversationId"`
}

type chatResponse struct {
	Response       string         `json:"response"`
	ConversationID string         `json:"conversationId,omitempty"`
	Messages       []luma.Message `json:"messages"`
}

// Chat runs one chat turn: load prior messages, append the user message,
// generate a reply (fallback on failure, never an error), append the reply,
// persist. A conversation is created only when none exists and a userId was
// supplied.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	realm, err := luma.ParseRealm(req.Realm)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_realm", err)
		return
	}
	ctx := c.Request.Context()

	var conv *luma.Conversation
	var messages []luma.Message
	if req.ConversationID != "" {
		conv, err = h.Store.GetConversation(ctx, req.ConversationID)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "storage_error", err)
			return
		}
		if conv != nil {
			messages = conv.Messages
		}
	}

	messages = append(messages, luma.Message{
		ID:        uuid.NewString(),
		Role:      luma.RoleUser,
		Content:   req.Message,
		Timestamp: timestamp(),
		Realm:     realm,
	})

	reply := h.Engine.ChatResponse(ctx, req.Message, realm, messages)

	messages = append(messages, luma.Message{
		ID:        uuid.NewString(),
		Role:      luma.RoleLuma,
		Content:   reply,
		Timestamp: timestamp(),
		Realm:     realm,
	})

	switch {
	case conv != nil:
		conv, err = h.Store.UpdateConversation(ctx, conv.ID, messages)
	case req.UserID != "":
		conv, err = h.Store.CreateConversation(ctx, req.UserID, messages, realm)
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "storage_error", err)
		return
	}

	resp := chatResponse{Response: reply, Messages: lastMessages(messages, 10)}
	if conv != nil {
		resp.ConversationID = conv.ID
	}
	c.JSON(http.StatusOK, resp)
}

type transformRequest struct {
	Realm  string `json:"realm" binding:"required"`
	UserID string `json:"userId"`
}

// Transform switches Luma to another realm, updating the user's current
// realm when a userId is supplied.
func (h *Handler) Transform(c *gin.Context) {
	var req transformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	realm, err := luma.ParseRealm(req.Realm)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_realm", err)
		return
	}

	if req.UserID != "" {
		if _, err := h.Store.UpdateUser(c.Request.Context(), req.UserID, userRealmUpdate(realm)); err != nil {
			RespondError(c, http.StatusInternalServerError, "storage_error", err)
			return
		}
	}

	p := h.Engine.Personality(realm)
	c.JSON(http.StatusOK, gin.H{
		"realm":       realm,
		"personality": p,
		"greeting":    p.Greeting,
	})
}

// Thought returns the Wisp thought of the day for a realm.
func (h *Handler) Thought(c *gin.Context) {
	realm, err := luma.ParseRealm(c.Param("realm"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_realm", err)
		return
	}
	thought := h.Engine.WispThought(c.Request.Context(), realm)
	c.JSON(http.StatusOK, gin.H{
		"thought": thought,
		"realm":   realm,
	})
}

func lastMessages(messages []luma.Message, n int) []luma.Message {
	if len(messages) > n {
		return messages[len(messages)-n:]
	}
	return messages
}
