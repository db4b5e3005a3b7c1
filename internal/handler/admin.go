package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/showroom/internal/models"
)

// ListContacts handles GET /api/admin/contacts. Store reads never fail, so
// the only error response is the 500 produced by panic recovery.
func (h *Handler) ListContacts(c *gin.Context) {
	submissions := h.store.GetAllContactSubmissions(c.Request.Context())
	if submissions == nil {
		submissions = []models.ContactSubmission{}
	}
	ok(c, http.StatusOK, "", submissions)
}
