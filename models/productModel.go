package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product carries NombreCategoria as a snapshot of the category name taken
// when the product was last written. Renaming the category does not touch it.
type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nombre          string             `bson:"nombre" json:"nombre"`
	Precio          float64            `bson:"precio" json:"precio"`
	CategoriaID     primitive.ObjectID `bson:"categoriaId" json:"categoriaId"`
	NombreCategoria string             `bson:"nombreCategoria" json:"nombreCategoria"`
	Descripcion     string             `bson:"descripcion,omitempty" json:"descripcion,omitempty"`
	Disponibilidad  bool               `bson:"disponibilidad" json:"disponibilidad"`
	Imagenes        []string           `bson:"imagenes" json:"imagenes"`
	RestauranteID   primitive.ObjectID `bson:"restauranteId" json:"restauranteId"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ProductInput struct {
	Nombre         string   `json:"nombre" validate:"required,max=100"`
	Precio         *float64 `json:"precio" validate:"required,gte=0"`
	CategoriaID    string   `json:"categoriaId" validate:"required"`
	Descripcion    string   `json:"descripcion" validate:"max=500"`
	Disponibilidad *bool    `json:"disponibilidad"`
	Imagenes       []string `json:"imagenes" validate:"max=5,dive,required"`
	RestauranteID  string   `json:"restauranteId" validate:"required"`
}

type ProductPatch struct {
	Nombre         *string  `json:"nombre" validate:"omitempty,min=1,max=100"`
	Precio         *float64 `json:"precio" validate:"omitempty,gte=0"`
	CategoriaID    *string  `json:"categoriaId" validate:"omitempty,min=1"`
	Descripcion    *string  `json:"descripcion" validate:"omitempty,max=500"`
	Disponibilidad *bool    `json:"disponibilidad"`
	Imagenes       []string `json:"imagenes" validate:"omitempty,max=5,dive,required"`
}

type ProductPage struct {
	Total       int64     `json:"total"`
	Products    []Product `json:"products"`
	CurrentPage int64     `json:"currentPage"`
	TotalPages  int64     `json:"totalPages"`
}
