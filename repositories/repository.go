package repositories

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-food-ordering/database"
	"go-food-ordering/helpers"
)

// Repositories bundles one repository per entity over a shared registry.
type Repositories struct {
	Users       *UserRepository
	Restaurants *RestaurantRepository
	Categories  *CategoryRepository
	Products    *ProductRepository
	Orders      *OrderRepository
}

func New(reg *database.Registry) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(reg.Users),
		Restaurants: NewRestaurantRepository(reg.Restaurants),
		Categories:  NewCategoryRepository(reg.Categories),
		Products:    NewProductRepository(reg.Products),
		Orders:      NewOrderRepository(reg.Orders),
	}
}

// translate maps driver errors onto the application taxonomy.
func translate(err error, notFound string, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return helpers.NotFound("%s", notFound)
	case mongo.IsDuplicateKeyError(err):
		return helpers.Conflict("registro duplicado")
	}
	return errors.Wrap(err, action)
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func pageOptions(skip, limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)
}

func updateByID(ctx context.Context, coll *mongo.Collection, id interface{}, update bson.D, notFound, action string) error {
	result, err := coll.UpdateByID(ctx, id, update)
	if err != nil {
		return translate(err, notFound, action)
	}
	if result.MatchedCount == 0 {
		return helpers.NotFound("%s", notFound)
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id interface{}, notFound, action string) error {
	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err, notFound, action)
	}
	if result.DeletedCount == 0 {
		return helpers.NotFound("%s", notFound)
	}
	return nil
}
