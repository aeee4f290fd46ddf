package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderCompleted, OrderCancelled},
}

// IsTerminal reports whether an order in this state rejects every mutation.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
// Staying in the same non-terminal state is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order embeds full product snapshots; Total is fixed at creation time.
type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID          string             `bson:"orderId" json:"orderId"`
	ClienteID        primitive.ObjectID `bson:"clienteId" json:"clienteId"`
	Cliente          string             `bson:"cliente" json:"cliente"`
	RestauranteID    primitive.ObjectID `bson:"restauranteId" json:"restauranteId"`
	Productos        []Product          `bson:"productos" json:"productos"`
	Total            float64            `bson:"total" json:"total"`
	Estado           OrderStatus        `bson:"estado" json:"estado"`
	Notas            string             `bson:"notas,omitempty" json:"notas,omitempty"`
	FechaHoraEntrega *time.Time         `bson:"fechaHoraEntrega,omitempty" json:"fechaHoraEntrega,omitempty"`
	FechaOrden       time.Time          `bson:"fechaOrden" json:"fechaOrden"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type OrderInput struct {
	RestauranteID    string      `json:"restauranteId" validate:"required"`
	ProductsIDs      []string    `json:"productsIds" validate:"required,min=1,dive,required"`
	Estado           OrderStatus `json:"estado" validate:"omitempty,oneof=Pending Processing"`
	FechaHoraEntrega *time.Time  `json:"fechaHoraEntrega"`
	Notas            string      `json:"notas" validate:"max=500"`
}

type OrderPatch struct {
	Estado           *OrderStatus `json:"estado" validate:"omitempty,oneof=Pending Processing Completed Cancelled"`
	FechaHoraEntrega *time.Time   `json:"fechaHoraEntrega"`
	Notas            *string      `json:"notas" validate:"omitempty,max=500"`
}

// OrderScope selects the orders a user may read: the ones they placed and
// the ones placed at restaurants they own.
type OrderScope struct {
	ClienteID      primitive.ObjectID
	RestauranteIDs []primitive.ObjectID
}

type OrderPage struct {
	Total       int64   `json:"total"`
	Orders      []Order `json:"orders"`
	CurrentPage int64   `json:"currentPage"`
	TotalPages  int64   `json:"totalPages"`
}
