package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"pizza-api/internal/models"
	"pizza-api/internal/pricing"
	"pizza-api/internal/validation"
)

// OrderHandler serves the order endpoints.
type OrderHandler struct {
	store DocumentStore
	log   *slog.Logger
}

// NewOrderHandler creates an order handler backed by the given store.
func NewOrderHandler(store DocumentStore, log *slog.Logger) *OrderHandler {
	return &OrderHandler{store: store, log: log}
}

// Create handles POST /api/order. Totals are always computed server-side
// and the status starts at pending; neither can be client-supplied.
func (h *OrderHandler) Create(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.log, validation.Describe(err))
		return
	}

	items := req.LineItems()
	totals := pricing.Price(items)

	order := models.Order{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Items:        items,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
		Status:       models.StatusPending,
	}

	id, err := h.store.Insert(c.Request.Context(), models.OrderCollection, order)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("order placed", "id", id, "items", len(items), "total", totals.Total)
	c.JSON(201, gin.H{"id": id, "total": totals.Total})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders := []models.Order{}
	if err := h.store.ListAll(c.Request.Context(), models.OrderCollection, &orders); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(200, orders)
}
