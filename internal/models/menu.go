package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuCollection is the collection holding menu items.
const MenuCollection = "pizza"

// DefaultSizes is applied when a new menu item omits its sizes list.
var DefaultSizes = []string{"Small", "Medium", "Large"}

// MenuItem is a purchasable pizza definition. The ObjectID marshals to a
// hex string in JSON, so API responses carry a text "id" and never a
// raw "_id" field.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Vegetarian  bool               `bson:"vegetarian" json:"vegetarian"`
	Spicy       bool               `bson:"spicy" json:"spicy"`
	Sizes       []string           `bson:"sizes" json:"sizes"`
}

// CreateMenuItemRequest is the POST /api/menu body. Price is a pointer so
// a missing field is distinguishable from an explicit 0 (0 is a valid
// price, a missing one is not).
type CreateMenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string   `json:"imageUrl"`
	Vegetarian  bool     `json:"vegetarian"`
	Spicy       bool     `json:"spicy"`
	Sizes       []string `json:"sizes"`
}

// MenuItem converts the validated request into a storable menu item,
// applying defaults. A nil sizes list (field omitted) becomes the default
// trio; an explicitly empty list stays empty.
func (r *CreateMenuItemRequest) MenuItem() MenuItem {
	item := MenuItem{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		ImageURL:    r.ImageURL,
		Vegetarian:  r.Vegetarian,
		Spicy:       r.Spicy,
		Sizes:       r.Sizes,
	}
	if item.Sizes == nil {
		item.Sizes = append([]string(nil), DefaultSizes...)
	}
	return item
}
