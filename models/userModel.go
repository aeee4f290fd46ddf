package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username     string               `bson:"username" json:"username"`
	Password     string               `bson:"password" json:"-"`
	Correo       string               `bson:"correo" json:"correo"`
	Telefono     string               `bson:"telefono" json:"telefono"`
	Restaurantes []primitive.ObjectID `bson:"restaurantes" json:"restaurantes"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Correo   string `json:"correo" validate:"required,email"`
	Telefono string `json:"telefono" validate:"required,phone"`
}

type LoginInput struct {
	Correo   string `json:"correo" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserPatch struct {
	Username *string `json:"username" validate:"omitempty,min=2,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Correo   *string `json:"correo" validate:"omitempty,email"`
	Telefono *string `json:"telefono" validate:"omitempty,phone"`
}

// Registered is the public view returned after sign up.
type Registered struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
}

type UserPage struct {
	Total       int64  `json:"total"`
	Users       []User `json:"users"`
	CurrentPage int64  `json:"currentPage"`
	TotalPages  int64  `json:"totalPages"`
}
