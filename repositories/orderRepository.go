package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-food-ordering/models"
)

const orderNotFound = "Orden no encontrada"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(coll *mongo.Collection) *OrderRepository {
	return &OrderRepository{coll: coll}
}

// Create stores the order as given; callers fill OrderID and the snapshots.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	now := time.Now().UTC()
	order.ID = primitive.NewObjectID()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.FechaOrden.IsZero() {
		order.FechaOrden = now
	}
	_, err := r.coll.InsertOne(ctx, order)
	return translate(err, orderNotFound, "insert order")
}

func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, translate(err, orderNotFound, "find order")
	}
	return &order, nil
}

func (r *OrderRepository) FindAll(ctx context.Context, scope models.OrderScope) ([]models.Order, error) {
	orders, err := findMany[models.Order](ctx, r.coll, scopeFilter(scope), newestFirst())
	return orders, translate(err, orderNotFound, "list orders")
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	orders, err := findMany[models.Order](ctx, r.coll, bson.M{"clienteId": userID}, newestFirst())
	return orders, translate(err, orderNotFound, "list orders by user")
}

func (r *OrderRepository) FindByUserAndStatus(ctx context.Context, userID primitive.ObjectID, status models.OrderStatus) ([]models.Order, error) {
	filter := bson.M{"clienteId": userID, "estado": status}
	orders, err := findMany[models.Order](ctx, r.coll, filter, newestFirst())
	return orders, translate(err, orderNotFound, "list orders by user and status")
}

func (r *OrderRepository) FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Order, error) {
	orders, err := findMany[models.Order](ctx, r.coll, bson.M{"restauranteId": restaurantID}, newestFirst())
	return orders, translate(err, orderNotFound, "list orders by restaurant")
}

func (r *OrderRepository) List(ctx context.Context, scope models.OrderScope, skip, limit int64) ([]models.Order, error) {
	orders, err := findMany[models.Order](ctx, r.coll, scopeFilter(scope), pageOptions(skip, limit))
	return orders, translate(err, orderNotFound, "page orders")
}

func (r *OrderRepository) Count(ctx context.Context, scope models.OrderScope) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, scopeFilter(scope))
	return n, translate(err, orderNotFound, "count orders")
}

// Update persists the mutable fields only; products and total never change.
func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	order.UpdatedAt = time.Now().UTC()
	var updateObj primitive.D
	updateObj = append(updateObj, bson.E{Key: "estado", Value: order.Estado})
	updateObj = append(updateObj, bson.E{Key: "notas", Value: order.Notas})
	updateObj = append(updateObj, bson.E{Key: "fechaHoraEntrega", Value: order.FechaHoraEntrega})
	updateObj = append(updateObj, bson.E{Key: "updatedAt", Value: order.UpdatedAt})

	return updateByID(ctx, r.coll, order.ID, bson.D{{Key: "$set", Value: updateObj}}, orderNotFound, "update order")
}

func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, orderNotFound, "delete order")
}

func scopeFilter(scope models.OrderScope) bson.M {
	or := bson.A{bson.M{"clienteId": scope.ClienteID}}
	if len(scope.RestauranteIDs) > 0 {
		or = append(or, bson.M{"restauranteId": bson.M{"$in": scope.RestauranteIDs}})
	}
	return bson.M{"$or": or}
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "fechaOrden", Value: -1}})
}
