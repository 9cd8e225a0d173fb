package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"pizza-api/internal/models"
	"pizza-api/internal/validation"
)

// MenuHandler serves the menu endpoints.
type MenuHandler struct {
	store DocumentStore
	log   *slog.Logger
}

// NewMenuHandler creates a menu handler backed by the given store.
func NewMenuHandler(store DocumentStore, log *slog.Logger) *MenuHandler {
	return &MenuHandler{store: store, log: log}
}

// List handles GET /api/menu.
func (h *MenuHandler) List(c *gin.Context) {
	items := []models.MenuItem{}
	if err := h.store.ListAll(c.Request.Context(), models.MenuCollection, &items); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(200, items)
}

// Create handles POST /api/menu.
func (h *MenuHandler) Create(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.log, validation.Describe(err))
		return
	}

	id, err := h.store.Insert(c.Request.Context(), models.MenuCollection, req.MenuItem())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("menu item added", "id", id, "name", req.Name)
	c.JSON(201, gin.H{"id": id})
}
