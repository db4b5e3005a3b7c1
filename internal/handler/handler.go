// Package handler implements the JSON API of the showroom site. Handlers are
// written against storage.Store only and never look at which backend is
// behind it.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/showroom/internal/storage"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

const msgInternal = "Something went wrong. Please try again later."

// Handler serves the /api routes.
type Handler struct {
	store    storage.Store
	validate *validator.Validate
}

// New creates a Handler backed by store.
func New(store storage.Store) *Handler {
	return &Handler{
		store:    store,
		validate: newValidator(),
	}
}

// Register mounts the API routes on r.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.POST("/contact", h.CreateContact)
	api.POST("/subscribe", h.Subscribe)
	api.GET("/admin/contacts", h.ListContacts)
}

func ok(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Success: false, Message: message})
}

// internalError records err on the gin context for the request logger and
// answers with a generic 500.
func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	fail(c, http.StatusInternalServerError, msgInternal)
}
