package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderCollection is the collection holding placed orders.
const OrderCollection = "order"

// Order status values. Only StatusPending is assigned by this service;
// the remaining transitions happen outside its scope.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// OrderLineItem is one ordered pizza configuration within an order.
// PizzaID is a text reference to a menu item and is not checked for
// existence.
type OrderLineItem struct {
	PizzaID   string   `bson:"pizzaId" json:"pizzaId"`
	Name      string   `bson:"name" json:"name"`
	Size      string   `bson:"size" json:"size"`
	Quantity  int      `bson:"quantity" json:"quantity"`
	UnitPrice float64  `bson:"unitPrice" json:"unitPrice"`
	Toppings  []string `bson:"toppings" json:"toppings"`
}

// Order is a customer's placed purchase request. Subtotal, tax and total
// are derived server-side and never client-supplied.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      string             `bson:"address" json:"address"`
	Items        []OrderLineItem    `bson:"items" json:"items"`
	Subtotal     float64            `bson:"subtotal" json:"subtotal"`
	Tax          float64            `bson:"tax" json:"tax"`
	Total        float64            `bson:"total" json:"total"`
	Status       string             `bson:"status" json:"status"`
}

// OrderItemRequest is one line item in a create-order body. Quantity is a
// pointer so an omitted field defaults to 1 while an explicit 0 is
// rejected by the gte=1 bound.
type OrderItemRequest struct {
	PizzaID   string   `json:"pizzaId"`
	Name      string   `json:"name"`
	Size      string   `json:"size"`
	Quantity  *int     `json:"quantity" binding:"omitempty,gte=1"`
	UnitPrice *float64 `json:"unitPrice" binding:"required,gte=0"`
	Toppings  []string `json:"toppings"`
}

// CreateOrderRequest is the POST /api/order body. An empty items list is
// permitted and prices to zero totals.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName" binding:"required"`
	Phone        string             `json:"phone" binding:"required"`
	Address      string             `json:"address" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"dive"`
}

// LineItems converts the validated request items, applying defaults
// (quantity 1 when omitted, toppings empty when omitted).
func (r *CreateOrderRequest) LineItems() []OrderLineItem {
	items := make([]OrderLineItem, 0, len(r.Items))
	for _, it := range r.Items {
		quantity := 1
		if it.Quantity != nil {
			quantity = *it.Quantity
		}
		toppings := it.Toppings
		if toppings == nil {
			toppings = []string{}
		}
		items = append(items, OrderLineItem{
			PizzaID:   it.PizzaID,
			Name:      it.Name,
			Size:      it.Size,
			Quantity:  quantity,
			UnitPrice: *it.UnitPrice,
			Toppings:  toppings,
		})
	}
	return items
}
