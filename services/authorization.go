package services

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

func requireAuthenticated(p models.Principal) error {
	if p.ID.IsZero() {
		return helpers.Unauthorized("usuario no autenticado")
	}
	return nil
}

func canManageRestaurant(p models.Principal, restaurant *models.Restaurant) error {
	if err := requireAuthenticated(p); err != nil {
		return err
	}
	if restaurant.UserID != p.ID {
		return helpers.Forbidden("no tienes permiso para modificar este restaurante")
	}
	return nil
}

func canManageUser(p models.Principal, userID primitive.ObjectID) error {
	if err := requireAuthenticated(p); err != nil {
		return err
	}
	if p.ID != userID {
		return helpers.Forbidden("no tienes permiso sobre este usuario")
	}
	return nil
}

// canManageOrder allows the client who placed the order and the owner of the
// restaurant it was placed against.
func canManageOrder(p models.Principal, order *models.Order, restaurant *models.Restaurant) error {
	if err := requireAuthenticated(p); err != nil {
		return err
	}
	if order.ClienteID == p.ID {
		return nil
	}
	if restaurant != nil && restaurant.UserID == p.ID {
		return nil
	}
	return helpers.Forbidden("no tienes permiso sobre esta orden")
}
