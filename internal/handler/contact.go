package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/showroom/internal/middleware"
	"github.com/mmynk/showroom/internal/models"
)

type contactRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email,max=254"`
	Phone       string  `json:"phone" validate:"required,max=50"`
	KitchenSize *string `json:"kitchenSize" validate:"omitempty,max=100"`
	Message     *string `json:"message" validate:"omitempty,max=5000"`
}

func (r *contactRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.KitchenSize = models.Optional(r.KitchenSize)
	r.Message = models.Optional(r.Message)
}

// CreateContact handles POST /api/contact.
func (h *Handler) CreateContact(c *gin.Context) {
	var req contactRequest
	if msg, valid := h.bind(c, &req); !valid {
		slog.Debug("Contact submission rejected", "reason", msg)
		fail(c, http.StatusBadRequest, msg)
		return
	}

	ctx := c.Request.Context()
	submission, err := h.store.CreateContactSubmission(ctx, models.NewContactSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		KitchenSize: req.KitchenSize,
		Message:     req.Message,
	})
	if err != nil {
		slog.Error("CreateContactSubmission failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		internalError(c, err)
		return
	}

	slog.Info("Contact submission created", "id", submission.ID, "backend", h.store.Name())
	ok(c, http.StatusCreated, "Thank you! We'll be in touch soon.", submission)
}
