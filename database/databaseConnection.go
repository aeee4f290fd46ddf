package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	UsersCollection       = "users"
	RestaurantsCollection = "restaurants"
	CategoriesCollection  = "categories"
	ProductsCollection    = "products"
	OrdersCollection      = "orders"
)

// Connect opens a client against url and pings the primary.
func Connect(ctx context.Context, url string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "ping mongodb")
	}
	zap.S().Info("Connected to MongoDB")
	return client, nil
}

// Registry holds the collections used by the repositories. It is built once
// at startup and handed to each repository constructor.
type Registry struct {
	Users       *mongo.Collection
	Restaurants *mongo.Collection
	Categories  *mongo.Collection
	Products    *mongo.Collection
	Orders      *mongo.Collection
}

func NewRegistry(db *mongo.Database) *Registry {
	return &Registry{
		Users:       db.Collection(UsersCollection),
		Restaurants: db.Collection(RestaurantsCollection),
		Categories:  db.Collection(CategoriesCollection),
		Products:    db.Collection(ProductsCollection),
		Orders:      db.Collection(OrdersCollection),
	}
}

// EnsureIndexes creates the uniqueness constraints and lookup indexes.
func (r *Registry) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	plan := []struct {
		coll   *mongo.Collection
		models []mongo.IndexModel
	}{
		{r.Users, []mongo.IndexModel{
			{Keys: bson.D{{Key: "correo", Value: 1}}, Options: unique},
		}},
		{r.Restaurants, []mongo.IndexModel{
			{Keys: bson.D{{Key: "correo", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		}},
		{r.Categories, []mongo.IndexModel{
			{Keys: bson.D{{Key: "restaurantId", Value: 1}, {Key: "nombre", Value: 1}}, Options: unique},
		}},
		{r.Products, []mongo.IndexModel{
			{Keys: bson.D{{Key: "restauranteId", Value: 1}, {Key: "categoriaId", Value: 1}}},
		}},
		{r.Orders, []mongo.IndexModel{
			{Keys: bson.D{{Key: "orderId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "clienteId", Value: 1}, {Key: "estado", Value: 1}}},
			{Keys: bson.D{{Key: "restauranteId", Value: 1}}},
		}},
	}
	for _, step := range plan {
		if _, err := step.coll.Indexes().CreateMany(ctx, step.models); err != nil {
			return errors.Wrapf(err, "create indexes on %s", step.coll.Name())
		}
	}
	return nil
}
