package repositories

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

const restaurantNotFound = "Restaurante no encontrado"

type RestaurantRepository struct {
	coll *mongo.Collection
}

func NewRestaurantRepository(coll *mongo.Collection) *RestaurantRepository {
	return &RestaurantRepository{coll: coll}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	now := time.Now().UTC()
	restaurant.ID = primitive.NewObjectID()
	restaurant.FechaRegistro = now
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now
	if restaurant.Categorias == nil {
		restaurant.Categorias = []primitive.ObjectID{}
	}
	if _, err := r.coll.InsertOne(ctx, restaurant); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return helpers.Conflict("ya existe un restaurante con el correo %s", restaurant.Correo)
		}
		return translate(err, restaurantNotFound, "insert restaurant")
	}
	return nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant); err != nil {
		return nil, translate(err, restaurantNotFound, "find restaurant")
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := findMany[models.Restaurant](ctx, r.coll, bson.M{})
	return restaurants, translate(err, restaurantNotFound, "list restaurants")
}

func (r *RestaurantRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Restaurant, error) {
	restaurants, err := findMany[models.Restaurant](ctx, r.coll, bson.M{"userId": userID})
	return restaurants, translate(err, restaurantNotFound, "list restaurants by user")
}

// FindByName returns restaurants whose name contains name, ignoring case.
func (r *RestaurantRepository) FindByName(ctx context.Context, name string) ([]models.Restaurant, error) {
	filter := bson.M{"nombre": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}}
	restaurants, err := findMany[models.Restaurant](ctx, r.coll, filter)
	return restaurants, translate(err, restaurantNotFound, "search restaurants")
}

func (r *RestaurantRepository) List(ctx context.Context, skip, limit int64) ([]models.Restaurant, error) {
	restaurants, err := findMany[models.Restaurant](ctx, r.coll, bson.M{}, pageOptions(skip, limit))
	return restaurants, translate(err, restaurantNotFound, "page restaurants")
}

func (r *RestaurantRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return n, translate(err, restaurantNotFound, "count restaurants")
}

func (r *RestaurantRepository) Update(ctx context.Context, restaurant *models.Restaurant) error {
	restaurant.UpdatedAt = time.Now().UTC()
	var updateObj primitive.D
	updateObj = append(updateObj, bson.E{Key: "nombre", Value: restaurant.Nombre})
	updateObj = append(updateObj, bson.E{Key: "correo", Value: restaurant.Correo})
	updateObj = append(updateObj, bson.E{Key: "telefono", Value: restaurant.Telefono})
	updateObj = append(updateObj, bson.E{Key: "direccion", Value: restaurant.Direccion})
	updateObj = append(updateObj, bson.E{Key: "city", Value: restaurant.City})
	updateObj = append(updateObj, bson.E{Key: "updatedAt", Value: restaurant.UpdatedAt})

	err := updateByID(ctx, r.coll, restaurant.ID, bson.D{{Key: "$set", Value: updateObj}}, restaurantNotFound, "update restaurant")
	if helpers.IsConflict(err) {
		return helpers.Conflict("ya existe un restaurante con el correo %s", restaurant.Correo)
	}
	return err
}

func (r *RestaurantRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, restaurantNotFound, "delete restaurant")
}

func (r *RestaurantRepository) AddCategory(ctx context.Context, restaurantID, categoryID primitive.ObjectID) error {
	update := bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "categorias", Value: categoryID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}
	return updateByID(ctx, r.coll, restaurantID, update, restaurantNotFound, "link category to restaurant")
}

func (r *RestaurantRepository) RemoveCategory(ctx context.Context, restaurantID, categoryID primitive.ObjectID) error {
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "categorias", Value: categoryID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}
	return updateByID(ctx, r.coll, restaurantID, update, restaurantNotFound, "unlink category from restaurant")
}
