package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/showroom/internal/middleware"
	"github.com/mmynk/showroom/internal/models"
	"github.com/mmynk/showroom/internal/storage"
)

const msgAlreadySubscribed = "Email is already subscribed"

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

func (r *subscribeRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Subscribe handles POST /api/subscribe.
//
// The existence check and the insert are separate store calls. Two concurrent
// requests for the same email can both pass the check; a backend with a
// unique constraint then rejects the second insert with storage.ErrDuplicate,
// which is answered like any other repeat subscription.
func (h *Handler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if msg, valid := h.bind(c, &req); !valid {
		slog.Debug("Subscription rejected", "reason", msg)
		fail(c, http.StatusBadRequest, msg)
		return
	}

	ctx := c.Request.Context()
	if h.store.IsEmailSubscribed(ctx, req.Email) {
		ok(c, http.StatusOK, msgAlreadySubscribed, nil)
		return
	}

	sub, err := h.store.SubscribeToNewsletter(ctx, models.NewNewsletterSubscription{Email: req.Email})
	if errors.Is(err, storage.ErrDuplicate) {
		slog.Info("Concurrent subscription for same email", "request_id", middleware.GetRequestID(ctx))
		ok(c, http.StatusOK, msgAlreadySubscribed, nil)
		return
	}
	if err != nil {
		slog.Error("SubscribeToNewsletter failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		internalError(c, err)
		return
	}

	slog.Info("Newsletter subscription created", "id", sub.ID, "backend", h.store.Name())
	ok(c, http.StatusCreated, "Successfully subscribed to the newsletter", sub)
}
