package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-food-ordering/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	List(ctx context.Context, skip, limit int64) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddRestaurant(ctx context.Context, userID, restaurantID primitive.ObjectID) error
	RemoveRestaurant(ctx context.Context, userID, restaurantID primitive.ObjectID) error
}

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *models.Restaurant) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error)
	FindAll(ctx context.Context) ([]models.Restaurant, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Restaurant, error)
	FindByName(ctx context.Context, name string) ([]models.Restaurant, error)
	List(ctx context.Context, skip, limit int64) ([]models.Restaurant, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, restaurant *models.Restaurant) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddCategory(ctx context.Context, restaurantID, categoryID primitive.ObjectID) error
	RemoveCategory(ctx context.Context, restaurantID, categoryID primitive.ObjectID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindByRestaurantAndName(ctx context.Context, restaurantID primitive.ObjectID, name string) (*models.Category, error)
	FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	List(ctx context.Context, skip, limit int64) ([]models.Category, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	FindByCategory(ctx context.Context, categoryID, restaurantID primitive.ObjectID) ([]models.Product, error)
	FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Product, error)
	List(ctx context.Context, skip, limit int64) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindAll(ctx context.Context, scope models.OrderScope) ([]models.Order, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	FindByUserAndStatus(ctx context.Context, userID primitive.ObjectID, status models.OrderStatus) ([]models.Order, error)
	FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Order, error)
	List(ctx context.Context, scope models.OrderScope, skip, limit int64) ([]models.Order, error)
	Count(ctx context.Context, scope models.OrderScope) (int64, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TokenIssuer signs and verifies bearer credentials.
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (models.Principal, error)
}
