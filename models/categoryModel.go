package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nombre       string             `bson:"nombre" json:"nombre"`
	RestaurantID primitive.ObjectID `bson:"restaurantId" json:"restaurantId"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CategoryInput struct {
	Nombre       string `json:"nombre" validate:"required,max=100"`
	RestaurantID string `json:"restaurantId" validate:"required"`
}

type CategoryPatch struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1,max=100"`
}

type CategoryPage struct {
	Total       int64      `json:"total"`
	Categories  []Category `json:"categories"`
	CurrentPage int64      `json:"currentPage"`
	TotalPages  int64      `json:"totalPages"`
}
