package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-food-ordering/models"
)

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, skip, limit int64) ([]models.User, error) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepository) AddRestaurant(ctx context.Context, userID, restaurantID primitive.ObjectID) error {
	return m.Called(ctx, userID, restaurantID).Error(0)
}

func (m *mockUserRepository) RemoveRestaurant(ctx context.Context, userID, restaurantID primitive.ObjectID) error {
	return m.Called(ctx, userID, restaurantID).Error(0)
}

type mockRestaurantRepository struct{ mock.Mock }

func (m *mockRestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	args := m.Called(ctx, restaurant)
	if restaurant.ID.IsZero() {
		restaurant.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *mockRestaurantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*models.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRestaurantRepository) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Restaurant, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) FindByName(ctx context.Context, name string) ([]models.Restaurant, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) List(ctx context.Context, skip, limit int64) ([]models.Restaurant, error) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRestaurantRepository) Update(ctx context.Context, restaurant *models.Restaurant) error {
	return m.Called(ctx, restaurant).Error(0)
}

func (m *mockRestaurantRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRestaurantRepository) AddCategory(ctx context.Context, restaurantID, categoryID primitive.ObjectID) error {
	return m.Called(ctx, restaurantID, categoryID).Error(0)
}

func (m *mockRestaurantRepository) RemoveCategory(ctx context.Context, restaurantID, categoryID primitive.ObjectID) error {
	return m.Called(ctx, restaurantID, categoryID).Error(0)
}

type mockCategoryRepository struct{ mock.Mock }

func (m *mockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepository) FindByRestaurantAndName(ctx context.Context, restaurantID primitive.ObjectID, name string) (*models.Category, error) {
	args := m.Called(ctx, restaurantID, name)
	if c := args.Get(0); c != nil {
		return c.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepository) FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Category, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockCategoryRepository) List(ctx context.Context, skip, limit int64) ([]models.Category, error) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockCategoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}
