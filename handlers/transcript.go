package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"lumawisp/luma"
)

var errConversationNotFound = errors.New("conversation not found")

// Transcript renders a conversation as a downloadable PDF.
func (h *Handler) Transcript(c *gin.Context) {
	conv, err := h.Store.GetConversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "storage_error", err)
		return
	}
	if conv == nil {
		RespondError(c, http.StatusNotFound, "conversation_not_found", errConversationNotFound)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Luma Wisp - %s realm", conv.Realm)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, m := range conv.Messages {
		name := "You"
		if m.Role == luma.RoleLuma {
			name = "Luma"
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(name), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(m.Content), "", "L", false)
		pdf.Ln(2)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="luma-transcript.pdf"`)
	if err := pdf.Output(c.Writer); err != nil {
		h.Log.Errorw("transcript render failed", "conversation_id", conv.ID, "error", err)
	}
}
