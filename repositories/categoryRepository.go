package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

const categoryNotFound = "Categoría no encontrada"

type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(coll *mongo.Collection) *CategoryRepository {
	return &CategoryRepository{coll: coll}
}

// Create inserts the category. The (restaurantId, nombre) unique index turns
// a concurrent duplicate into a Conflict.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	now := time.Now().UTC()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = now
	category.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return helpers.Conflict("La categoría %s ya existe en el restaurante", category.Nombre)
		}
		return translate(err, categoryNotFound, "insert category")
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		return nil, translate(err, categoryNotFound, "find category")
	}
	return &category, nil
}

// FindByRestaurantAndName returns nil, nil when the restaurant has no
// category with that name.
func (r *CategoryRepository) FindByRestaurantAndName(ctx context.Context, restaurantID primitive.ObjectID, name string) (*models.Category, error) {
	var category models.Category
	err := r.coll.FindOne(ctx, bson.M{"restaurantId": restaurantID, "nombre": name}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, categoryNotFound, "find category by name")
	}
	return &category, nil
}

func (r *CategoryRepository) FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Category, error) {
	categories, err := findMany[models.Category](ctx, r.coll, bson.M{"restaurantId": restaurantID})
	return categories, translate(err, categoryNotFound, "list categories by restaurant")
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	categories, err := findMany[models.Category](ctx, r.coll, bson.M{})
	return categories, translate(err, categoryNotFound, "list categories")
}

func (r *CategoryRepository) List(ctx context.Context, skip, limit int64) ([]models.Category, error) {
	categories, err := findMany[models.Category](ctx, r.coll, bson.M{}, pageOptions(skip, limit))
	return categories, translate(err, categoryNotFound, "page categories")
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return n, translate(err, categoryNotFound, "count categories")
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	category.UpdatedAt = time.Now().UTC()
	var updateObj primitive.D
	updateObj = append(updateObj, bson.E{Key: "nombre", Value: category.Nombre})
	updateObj = append(updateObj, bson.E{Key: "updatedAt", Value: category.UpdatedAt})

	err := updateByID(ctx, r.coll, category.ID, bson.D{{Key: "$set", Value: updateObj}}, categoryNotFound, "update category")
	if helpers.IsConflict(err) {
		return helpers.Conflict("La categoría %s ya existe en el restaurante", category.Nombre)
	}
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, categoryNotFound, "delete category")
}
