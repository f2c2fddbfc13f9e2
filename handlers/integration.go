package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumawisp/integrations"
	"lumawisp/luma"
)

// TwineState returns the personality plus the literal macro strings a Twine
// story pastes into its JavaScript section.
func (h *Handler) TwineState(c *gin.Context) {
	realm, err := luma.ParseRealm(c.Param("realm"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_realm", err)
		return
	}
	p := h.Engine.Personality(realm)
	c.JSON(http.StatusOK, gin.H{
		"realm":       realm,
		"personality": p,
		"macros": gin.H{
			"lumaGreet":     fmt.Sprintf(`<<set $lumaGreeting to "%s">>`, p.Greeting),
			"lumaSpeak":     `<<widget "lumaSpeak">><<print $args[0]>><</widget>>`,
			"lumaTransform": fmt.Sprintf(`<<set $lumaRealm to "%s">>`, realm),
		},
	})
}

// LMSEmbedCode generates the LMS integration snippet for a realm.
func (h *Handler) LMSEmbedCode(c *gin.Context) {
	realm, err := luma.ParseRealm(c.Param("realm"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_realm", err)
		return
	}
	kind := c.DefaultQuery("type", integrations.LMSWidget)
	code, err := integrations.LMSCode(kind, realm, h.baseURL(c))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_type", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"realm": realm,
		"type":  kind,
		"code":  code,
	})
}

// TwineStoryCode generates the Twine integration snippet for a realm.
func (h *Handler) TwineStoryCode(c *gin.Context) {
	realm, err := luma.ParseRealm(c.Param("realm"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_realm", err)
		return
	}
	kind := c.DefaultQuery("type", integrations.TwineMacros)
	code, err := integrations.TwineCode(kind, realm, h.baseURL(c))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_type", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"realm": realm,
		"type":  kind,
		"code":  code,
	})
}
