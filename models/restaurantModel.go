package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Restaurant struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Nombre        string               `bson:"nombre" json:"nombre"`
	Correo        string               `bson:"correo" json:"correo"`
	Telefono      string               `bson:"telefono" json:"telefono"`
	Direccion     string               `bson:"direccion" json:"direccion"`
	City          string               `bson:"city" json:"city"`
	UserID        primitive.ObjectID   `bson:"userId" json:"userId"`
	Categorias    []primitive.ObjectID `bson:"categorias" json:"categorias"`
	FechaRegistro time.Time            `bson:"fechaRegistro" json:"fechaRegistro"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type RestaurantInput struct {
	Nombre    string `json:"nombre" validate:"required,max=100"`
	Correo    string `json:"correo" validate:"required,email"`
	Telefono  string `json:"telefono" validate:"required"`
	Direccion string `json:"direccion" validate:"required"`
	City      string `json:"city" validate:"required"`
}

type RestaurantPatch struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Correo    *string `json:"correo" validate:"omitempty,email"`
	Telefono  *string `json:"telefono" validate:"omitempty,min=1"`
	Direccion *string `json:"direccion" validate:"omitempty,min=1"`
	City      *string `json:"city" validate:"omitempty,min=1"`
}

type RestaurantPage struct {
	Total       int64        `json:"total"`
	Restaurants []Restaurant `json:"restaurants"`
	CurrentPage int64        `json:"currentPage"`
	TotalPages  int64        `json:"totalPages"`
}
